package replay

import (
	"errors"
	"testing"

	"github.com/jsphweid/notetoken/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var example = []string{"sC4", "sE4", "t0.5", "eE4", "t0.5", "eC4", "t1", "sC4", "t1", "eC4"}

func TestReplaysExample(t *testing.T) {
	events, err := ReplayStrings(example, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.PlaybackEvent{
		{Pitch: "E4", Onset: 0, Duration: 0.5},
		{Pitch: "C4", Onset: 0, Duration: 1},
		{Pitch: "C4", Onset: 2, Duration: 1},
	}, events)
}

func TestClockStartShiftsOnsets(t *testing.T) {
	events, err := ReplayStrings(example, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 10.0, events[0].Onset)
	assert.Equal(t, 12.0, events[2].Onset)
	assert.Equal(t, 1.0, events[2].Duration)
}

func TestUnmatchedStopAborts(t *testing.T) {
	events, err := ReplayStrings([]string{"sC4", "t1", "eC4", "eD4"}, 0)
	assert.Nil(t, events)

	var rerr *model.ReplayError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 3, rerr.Position)
	assert.Equal(t, "D4", rerr.Pitch)
}

func TestMalformedTextIsAValidationError(t *testing.T) {
	_, err := ReplayStrings([]string{"sC4", "q"}, 0)
	var verr *model.ValidationError
	assert.True(t, errors.As(err, &verr))
}

// C4 from 0 to 2 and another C4 from 1 to 3
var overlapping = []string{"sC4", "t1", "sC4", "t1", "eC4", "t1", "eC4"}

func TestQueuePolicyRoundTripsOverlappingNotes(t *testing.T) {
	events, err := ReplayStrings(overlapping, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.PlaybackEvent{
		{Pitch: "C4", Onset: 0, Duration: 2},
		{Pitch: "C4", Onset: 1, Duration: 2},
	}, events)
}

func TestOverwritePolicyKeepsOnlyTheLatestOnset(t *testing.T) {
	events, err := ReplayStrings(overlapping, 0, WithPolicy(Overwrite))
	var rerr *model.ReplayError
	// the second stop no longer has anything to close
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 6, rerr.Position)
	assert.Nil(t, events)

	events, err = ReplayStrings([]string{"sC4", "t1", "sC4", "t1", "eC4"}, 0, WithPolicy(Overwrite))
	require.NoError(t, err)
	assert.Equal(t, []model.PlaybackEvent{{Pitch: "C4", Onset: 1, Duration: 1}}, events)
}

func TestRejectPolicyFailsOnSecondOpen(t *testing.T) {
	_, err := ReplayStrings(overlapping, 0, WithPolicy(Reject))
	var rerr *model.ReplayError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 2, rerr.Position)
}

func TestOpenNotesAtEndAreDropped(t *testing.T) {
	events, err := ReplayStrings([]string{"sC4", "sD4", "t1", "eD4"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.PlaybackEvent{{Pitch: "D4", Onset: 0, Duration: 1}}, events)
}

func TestEmptyStream(t *testing.T) {
	events, err := Replay(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParsePolicy(t *testing.T) {
	for s, want := range map[string]Policy{"": Queue, "queue": Queue, "overwrite": Overwrite, "reject": Reject} {
		got, err := ParsePolicy(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		if s != "" {
			assert.Equal(t, s, got.String())
		}
	}
	_, err := ParsePolicy("stack")
	assert.Error(t, err)
}
