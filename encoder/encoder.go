package encoder

import (
	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/util"
)

// Flatten walks a timeline's buckets in order and emits their tokens,
// preceded by an advance token whenever the clock moves. The first bucket
// never gets an advance.
func Flatten(tl model.Timeline) []model.Token {
	if len(tl.Buckets) == 0 {
		return []model.Token{}
	}

	res := make([]model.Token, 0, tl.NumTokens()+len(tl.Buckets))
	lastTime := tl.Buckets[0].Time
	for _, b := range tl.Buckets {
		// bucket times are already on the grid, rounding only removes
		// subtraction noise so equal gaps print the same
		delta := util.Round(b.Time-lastTime, constants.QuantizeDecimals)
		if delta != 0 {
			res = append(res, model.AdvanceToken(delta))
		}
		res = append(res, b.Tokens...)
		lastTime = b.Time
	}
	return res
}

func FlattenAll(tls []model.Timeline) [][]model.Token {
	res := make([][]model.Token, len(tls))
	for i, tl := range tls {
		res[i] = Flatten(tl)
	}
	return res
}

// CountGaps is the number of advance tokens Flatten emits for tl.
func CountGaps(tl model.Timeline) int {
	var n int
	for i := 1; i < len(tl.Buckets); i++ {
		if util.Round(tl.Buckets[i].Time-tl.Buckets[i-1].Time, constants.QuantizeDecimals) != 0 {
			n++
		}
	}
	return n
}
