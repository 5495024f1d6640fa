package midi

import (
	"bytes"
	"os"
	"sort"

	"github.com/jsphweid/notetoken/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
)

var readSMF = smf.ReadFrom

// ReadMidiFile parses one SMF file. Panics from the smf reader come back as
// errors.
func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("could not parse midi file %v: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read midi file")
	}
	res, err := readSMF(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse midi file %v", filepath)
	}
	return res, nil
}

type voice struct {
	channel uint8
	key     uint8
}

type opened struct {
	onset float64
	seq   int
}

// trackNotes pairs note starts with note ends on one track. Same-key notes
// on a channel are closed oldest first.
func trackNotes(s *smf.SMF, track smf.Track) []model.NoteEvent {
	var res []model.NoteEvent
	var order []int
	open := make(map[voice][]opened)

	var absTicks int64
	var started int
	for _, event := range track {
		absTicks += int64(event.Delta)
		var channel, key, velocity uint8
		switch {
		case event.Message.GetNoteStart(&channel, &key, &velocity):
			v := voice{channel, key}
			open[v] = append(open[v], opened{onset: secondsAt(s, absTicks), seq: started})
			started++
		case event.Message.GetNoteEnd(&channel, &key):
			v := voice{channel, key}
			onsets := open[v]
			if len(onsets) == 0 {
				continue
			}
			open[v] = onsets[1:]
			res = append(res, model.NoteEvent{
				Pitch:    model.PitchName(key),
				Onset:    onsets[0].onset,
				Duration: secondsAt(s, absTicks) - onsets[0].onset,
			})
			order = append(order, onsets[0].seq)
		}
	}

	var dangling int
	for _, onsets := range open {
		dangling += len(onsets)
	}
	if dangling > 0 {
		log.WithFields(log.Fields{"function": "midi.trackNotes"}).Debugf("ignoring %d notes that never end", dangling)
	}

	// notes come out in the order they started
	sort.Sort(byStart{res, order})
	return res
}

type byStart struct {
	notes []model.NoteEvent
	seq   []int
}

func (b byStart) Len() int           { return len(b.notes) }
func (b byStart) Less(i, j int) bool { return b.seq[i] < b.seq[j] }
func (b byStart) Swap(i, j int) {
	b.notes[i], b.notes[j] = b.notes[j], b.notes[i]
	b.seq[i], b.seq[j] = b.seq[j], b.seq[i]
}

func secondsAt(s *smf.SMF, absTicks int64) float64 {
	return float64(s.TimeAt(absTicks)) / 1e6
}

// GetTracks returns the notes of every track that has any, in track order.
func GetTracks(s *smf.SMF) [][]model.NoteEvent {
	var res [][]model.NoteEvent
	for _, track := range s.Tracks {
		notes := trackNotes(s, track)
		if len(notes) == 0 {
			continue
		}
		res = append(res, notes)
	}
	return res
}

// LoadTracks reads every file and concatenates their note tracks, numbering
// tracks globally. Unreadable files are skipped.
func LoadTracks(paths []string) ([][]model.NoteEvent, []model.TrackSource) {
	logger := log.WithFields(log.Fields{
		"function": "midi.LoadTracks",
	})

	var res [][]model.NoteEvent
	var sources []model.TrackSource
	for i, path := range paths {
		logger.Debugf("Processing %v of %v midi files", i+1, len(paths))
		parsed, err := ReadMidiFile(path)
		if err != nil {
			logger.Warnf("Skipping %v because: %v", path, err)
			continue
		}
		for k, notes := range GetTracks(parsed) {
			for j := range notes {
				notes[j].Track = len(res)
			}
			res = append(res, notes)
			sources = append(sources, model.TrackSource{FileNum: uint32(i), TrackInFile: k})
		}
	}
	return res, sources
}
