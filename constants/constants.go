package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetDynamoTable() string {
	table := os.Getenv("DYNAMO_TABLE")
	if table != "" {
		return table
	}
	return "notetoken-snapshots"
}

// onsets and offsets are rounded to this many decimal places
const QuantizeDecimals = 5

// 1e-5, also the tolerance of a round trip
const QuantizeEpsilon = 1e-5

const DefaultWindowLength = 50

// pairs per chunk file
const PreferredChunkSize = 64 * 1024

const (
	TokensFilename       = "tokens.json"
	VocabularyFilename   = "vocabulary.json"
	AllChunksFilename    = "chunks.dat"
	FileNumMapFilename   = "files.dat"
	TrackSourcesFilename = "sources.dat"
	SnapshotFilename     = "snapshot.json"
)
