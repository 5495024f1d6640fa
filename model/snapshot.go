package model

import "time"

// Snapshot records what a dataset build produced.
type Snapshot struct {
	ID           string    `dynamodbav:"PK" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	NumFiles     int       `json:"numFiles"`
	NumTracks    int       `json:"numTracks"`
	NumTokens    int       `json:"numTokens"`
	VocabSize    int       `json:"vocabSize"`
	WindowLength int       `json:"windowLength"`
	NumPairs     int       `json:"numPairs"`
	NumChunks    int       `json:"numChunks"`
	Seed         int64     `json:"seed"`
}
