package sample

import (
	"math"
	"os"
	"sort"

	"github.com/jsphweid/notetoken/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	Resolution = smf.MetricTicks(960)
	channel    = 0
	velocity   = 100
)

type timedMessage struct {
	tick  uint32
	isOff bool
	msg   smf.Message
}

func toTicks(seconds, bpm float64) uint32 {
	return uint32(math.Round(seconds * bpm / 60 * float64(Resolution)))
}

// Create renders playback events into a single-track SMF at a fixed tempo.
func Create(events []model.PlaybackEvent, bpm float64) (*smf.SMF, error) {
	var msgs []timedMessage
	for _, e := range events {
		key, err := model.PitchKey(e.Pitch)
		if err != nil {
			return nil, err
		}
		if e.Onset < 0 {
			return nil, &model.ValidationError{Track: -1, Field: "onset", Value: e.Onset, Reason: "a MIDI file starts at 0"}
		}
		on := toTicks(e.Onset, bpm)
		off := toTicks(e.Onset+e.Duration, bpm)
		msgs = append(msgs,
			timedMessage{tick: on, msg: smf.Message(midi.NoteOn(channel, key, velocity))},
			timedMessage{tick: off, isOff: true, msg: smf.Message(midi.NoteOff(channel, key))},
		)
	}

	// note offs before note ons at the same tick so repeated keys retrigger
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	track := smf.Track{
		{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName("notetoken"))},
		{Delta: 0, Message: smf.Message(smf.MetaTempo(bpm))},
	}
	var lastTick uint32
	for _, m := range msgs {
		track = append(track, smf.Event{Delta: m.tick - lastTick, Message: m.msg})
		lastTick = m.tick
	}
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})

	res := smf.NewSMF1()
	res.TimeFormat = Resolution
	res.Add(track)
	return res, nil
}

func WriteFile(path string, events []model.PlaybackEvent, bpm float64) error {
	s, err := Create(events, bpm)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", path)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}
