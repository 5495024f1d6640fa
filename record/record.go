package record

import (
	"sort"
	"sync"
	"time"

	"github.com/jsphweid/notetoken/dataset"
	"github.com/jsphweid/notetoken/model"
)

// Recorder turns live note on/off callbacks into phrases of NoteEvents.
// Times are seconds since the first note of the current phrase.
type Recorder struct {
	mu     sync.Mutex
	now    func() time.Time
	origin time.Time
	open   map[uint8][]started
	notes  []finished
	seq    int
}

type started struct {
	onset float64
	seq   int
}

type finished struct {
	note model.NoteEvent
	seq  int
}

func New(now func() time.Time) *Recorder {
	return &Recorder{now: now, open: make(map[uint8][]started)}
}

func (r *Recorder) elapsed() float64 {
	now := r.now()
	if r.origin.IsZero() {
		r.origin = now
	}
	return now.Sub(r.origin).Seconds()
}

func (r *Recorder) NoteOn(key uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open[key] = append(r.open[key], started{onset: r.elapsed(), seq: r.seq})
	r.seq++
}

func (r *Recorder) NoteOff(key uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	onsets := r.open[key]
	if len(onsets) == 0 {
		return
	}
	r.open[key] = onsets[1:]
	if len(r.open[key]) == 0 {
		delete(r.open, key)
	}
	r.notes = append(r.notes, finished{
		note: model.NoteEvent{
			Pitch:    model.PitchName(key),
			Onset:    onsets[0].onset,
			Duration: r.elapsed() - onsets[0].onset,
		},
		seq: onsets[0].seq,
	})
}

// Flush tokenizes the notes finished so far. Once nothing is sounding the
// next note starts a new phrase at time zero.
func (r *Recorder) Flush() ([]model.Token, error) {
	r.mu.Lock()
	done := r.notes
	r.notes = nil
	if len(r.open) == 0 {
		r.origin = time.Time{}
	}
	r.mu.Unlock()

	if len(done) == 0 {
		return []model.Token{}, nil
	}
	// in the order the notes were struck
	sort.Slice(done, func(i, j int) bool {
		return done[i].seq < done[j].seq
	})
	notes := make([]model.NoteEvent, len(done))
	for i, f := range done {
		notes[i] = f.note
	}
	tokens, err := dataset.Tokenize([][]model.NoteEvent{notes})
	if err != nil {
		return nil, err
	}
	return tokens[0], nil
}
