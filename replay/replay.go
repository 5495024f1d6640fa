package replay

import (
	"fmt"

	"github.com/jsphweid/notetoken/model"
	log "github.com/sirupsen/logrus"
)

// Policy decides what a start does to a pitch that is already sounding.
type Policy int

const (
	// Queue keeps every open instance; stops close the oldest first.
	Queue Policy = iota
	// Overwrite forgets the earlier onset.
	Overwrite
	// Reject fails the replay.
	Reject
)

func (p Policy) String() string {
	switch p {
	case Queue:
		return "queue"
	case Overwrite:
		return "overwrite"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "queue":
		return Queue, nil
	case "overwrite":
		return Overwrite, nil
	case "reject":
		return Reject, nil
	}
	return Queue, &model.ValidationError{Track: -1, Field: "policy", Value: s, Reason: "expected queue, overwrite or reject"}
}

type options struct {
	policy Policy
}

type Option func(*options)

func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// openNotes tracks the onsets of sounding pitches.
type openNotes struct {
	policy Policy
	onsets map[string][]float64
}

func (o *openNotes) open(pitch string, at float64) error {
	current := o.onsets[pitch]
	if len(current) > 0 {
		switch o.policy {
		case Overwrite:
			o.onsets[pitch] = []float64{at}
			return nil
		case Reject:
			return fmt.Errorf("%s is already sounding since %v", pitch, current[0])
		}
	}
	o.onsets[pitch] = append(current, at)
	return nil
}

func (o *openNotes) close(pitch string) (float64, bool) {
	current := o.onsets[pitch]
	if len(current) == 0 {
		return 0, false
	}
	onset := current[0]
	if len(current) == 1 {
		delete(o.onsets, pitch)
	} else {
		o.onsets[pitch] = current[1:]
	}
	return onset, true
}

func (o *openNotes) len() int {
	var n int
	for _, onsets := range o.onsets {
		n += len(onsets)
	}
	return n
}

// Replay runs tokens against a clock starting at clockStart and returns one
// PlaybackEvent per closed note, in the order the stops arrive. A stop with
// nothing open aborts with a ReplayError.
func Replay(tokens []model.Token, clockStart float64, opts ...Option) ([]model.PlaybackEvent, error) {
	o := options{policy: Queue}
	for _, opt := range opts {
		opt(&o)
	}

	clock := clockStart
	open := openNotes{policy: o.policy, onsets: make(map[string][]float64)}
	res := make([]model.PlaybackEvent, 0, len(tokens)/2)

	for i, tok := range tokens {
		switch tok.Kind {
		case model.Start:
			if err := open.open(tok.Pitch, clock); err != nil {
				return nil, &model.ReplayError{Position: i, Pitch: tok.Pitch, Reason: err.Error()}
			}
		case model.Advance:
			clock += tok.Delta
		case model.Stop:
			onset, ok := open.close(tok.Pitch)
			if !ok {
				return nil, &model.ReplayError{Position: i, Pitch: tok.Pitch, Reason: "stop without a matching start"}
			}
			res = append(res, model.PlaybackEvent{Pitch: tok.Pitch, Onset: onset, Duration: clock - onset})
		}
	}

	if n := open.len(); n > 0 {
		log.WithFields(log.Fields{
			"function": "replay.Replay",
		}).Warnf("%d notes were still open at the end of the stream", n)
	}
	return res, nil
}

// ReplayStrings parses text tokens before replaying them.
func ReplayStrings(strs []string, clockStart float64, opts ...Option) ([]model.PlaybackEvent, error) {
	tokens, err := model.ParseTokens(strs)
	if err != nil {
		return nil, err
	}
	return Replay(tokens, clockStart, opts...)
}
