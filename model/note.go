package model

// NoteEvent is a single performed note as produced by a loader.
type NoteEvent struct {
	Track    int     `json:"track"`
	Pitch    string  `json:"pitch"`
	Onset    float64 `json:"onset"`
	Duration float64 `json:"duration"`
}

// PlaybackEvent is what a replayed token stream turns back into.
type PlaybackEvent struct {
	Pitch    string  `json:"pitch"`
	Onset    float64 `json:"onset"`
	Duration float64 `json:"duration"`
}

type Track = []NoteEvent

type TrainingPair struct {
	Window []float64
	Target []float64
}
