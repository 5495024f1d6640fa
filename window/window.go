package window

import (
	"math/rand"

	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/util"
	"github.com/jsphweid/notetoken/vocab"
)

// Normalize maps each token to index/size, the scalar the model reads.
func Normalize(seq []model.Token, table *vocab.Table) ([]float64, error) {
	indices, err := table.Indices(seq)
	if err != nil {
		return nil, err
	}
	size := float64(table.Size())
	res := make([]float64, len(indices))
	for i, idx := range indices {
		res[i] = float64(idx) / size
	}
	return res, nil
}

func OneHot(index, length int) []float64 {
	res := make([]float64, length)
	res[index] = 1
	return res
}

// PairCount is how many pairs a track of the given length contributes.
func PairCount(length, windowLength int) int {
	return util.Max(0, length-windowLength)
}

// Generate slides a window of windowLength over every sequence and pairs
// each window with the one-hot of the token right after it. The pairs of all
// tracks are then shuffled together with one permutation drawn from rng.
func Generate(seqs [][]model.Token, table *vocab.Table, windowLength int, rng *rand.Rand) ([][]float64, [][]float64, error) {
	if windowLength < 1 {
		return nil, nil, &model.ValidationError{Track: -1, Field: "window length", Value: windowLength, Reason: "must be at least 1"}
	}

	var total int
	for _, seq := range seqs {
		total += PairCount(len(seq), windowLength)
	}
	inputs := make([][]float64, 0, total)
	outputs := make([][]float64, 0, total)

	for _, seq := range seqs {
		normalized, err := Normalize(seq, table)
		if err != nil {
			return nil, nil, err
		}
		for i := 0; i < len(seq)-windowLength; i++ {
			next, err := table.Index(seq[i+windowLength])
			if err != nil {
				return nil, nil, err
			}
			input := make([]float64, windowLength)
			copy(input, normalized[i:i+windowLength])
			inputs = append(inputs, input)
			outputs = append(outputs, OneHot(next, table.Size()))
		}
	}

	Shuffle(inputs, outputs, rng)
	return inputs, outputs, nil
}

// Shuffle applies one Fisher-Yates permutation to both slices.
func Shuffle[A any, B any](a []A, b []B, rng *rand.Rand) {
	if len(a) != len(b) {
		panic("Shuffle needs slices of equal length")
	}
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
		b[i], b[j] = b[j], b[i]
	}
}

func Pairs(inputs, outputs [][]float64) []model.TrainingPair {
	res := make([]model.TrainingPair, len(inputs))
	for i := range inputs {
		res[i] = model.TrainingPair{Window: inputs[i], Target: outputs[i]}
	}
	return res
}
