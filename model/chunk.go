package model

// ChunkOverview describes one chunk file holding training pairs
// [Start, End) of a dataset.
type ChunkOverview struct {
	Start    int
	End      int
	Filename string
}

type ChunkData struct {
	Inputs  [][]float64
	Outputs [][]float64
}

type ChunkNum = uint32
type FileNumToMidiPath = map[uint32]string

// TrackSource says where a global track index came from.
type TrackSource struct {
	FileNum     uint32
	TrackInFile int
}
