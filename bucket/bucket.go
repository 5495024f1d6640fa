package bucket

import (
	"sort"

	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/util"
)

// Quantize rounds a time to the bucket grid.
func Quantize(t float64) float64 {
	return util.Round(t, constants.QuantizeDecimals)
}

func validate(track int, n model.NoteEvent) error {
	if n.Pitch == "" {
		return &model.ValidationError{Track: track, Field: "pitch", Value: `""`, Reason: "empty"}
	}
	if !util.IsFiniteNonNegative(n.Onset) {
		return &model.ValidationError{Track: track, Field: "onset", Value: n.Onset, Reason: "must be a finite non-negative number"}
	}
	if !util.IsFiniteNonNegative(n.Duration) {
		return &model.ValidationError{Track: track, Field: "duration", Value: n.Duration, Reason: "must be a finite non-negative number"}
	}
	return nil
}

// pending collects a bucket's tokens before they are merged; stops and starts
// are kept apart so a bucket always closes notes before opening new ones.
type pending struct {
	time   float64
	stops  []model.Token
	starts []model.Token
}

type builder struct {
	buckets []*pending
	byTime  map[float64]*pending
}

func (b *builder) at(t float64) *pending {
	if p, ok := b.byTime[t]; ok {
		return p
	}
	p := &pending{time: t}
	b.byTime[t] = p
	b.buckets = append(b.buckets, p)
	return p
}

// BuildTrack buckets one track's notes by quantized onset and offset.
func BuildTrack(track int, notes []model.NoteEvent) (model.Timeline, error) {
	b := builder{byTime: make(map[float64]*pending)}
	for _, n := range notes {
		if err := validate(track, n); err != nil {
			return model.Timeline{}, err
		}
		onset := Quantize(n.Onset)
		offset := Quantize(n.Onset + n.Duration)

		start := b.at(onset)
		start.starts = append(start.starts, model.StartToken(n.Pitch))
		if offset == onset {
			// a zero-length note has to open before it closes
			start.starts = append(start.starts, model.StopToken(n.Pitch))
			continue
		}
		stop := b.at(offset)
		stop.stops = append(stop.stops, model.StopToken(n.Pitch))
	}

	// buckets are in first-use order here; keep it for equal times
	sort.SliceStable(b.buckets, func(i, j int) bool {
		return b.buckets[i].time < b.buckets[j].time
	})

	tl := model.Timeline{Track: track, Buckets: make([]model.Bucket, 0, len(b.buckets))}
	for _, p := range b.buckets {
		tokens := make([]model.Token, 0, len(p.stops)+len(p.starts))
		tokens = append(tokens, p.stops...)
		tokens = append(tokens, p.starts...)
		tl.Buckets = append(tl.Buckets, model.Bucket{Time: p.time, Tokens: tokens})
	}
	return tl, nil
}

// Build returns one timeline per track, in input order. The first invalid
// note fails the whole call.
func Build(tracks [][]model.NoteEvent) ([]model.Timeline, error) {
	res := make([]model.Timeline, 0, len(tracks))
	for i, notes := range tracks {
		tl, err := BuildTrack(i, notes)
		if err != nil {
			return nil, err
		}
		res = append(res, tl)
	}
	return res, nil
}
