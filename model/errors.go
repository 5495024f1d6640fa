package model

import "fmt"

// ValidationError rejects a malformed input record.
type ValidationError struct {
	Track  int
	Field  string
	Value  any
	Reason string
}

// Track is -1 when the value does not belong to a track.
func (e *ValidationError) Error() string {
	if e.Track < 0 {
		return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v on track %d: %s", e.Field, e.Value, e.Track, e.Reason)
}

// IndexError means a token was looked up in a vocabulary that was not built
// from the same corpus.
type IndexError struct {
	Token string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("token %q is not in the vocabulary", e.Token)
}

// ReplayError aborts a replay at Position.
type ReplayError struct {
	Position int
	Pitch    string
	Reason   string
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay failed at token %d (%s): %s", e.Position, e.Pitch, e.Reason)
}
