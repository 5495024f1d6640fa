package dataset

import (
	"math/rand"

	"github.com/jsphweid/notetoken/bucket"
	"github.com/jsphweid/notetoken/encoder"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/vocab"
	"github.com/jsphweid/notetoken/window"
	log "github.com/sirupsen/logrus"
)

// Dataset is everything the encode path produces for one corpus snapshot.
type Dataset struct {
	Tokens  [][]model.Token
	Table   *vocab.Table
	Inputs  [][]float64
	Outputs [][]float64
}

// Tokenize runs the timeline builder and the encoder over every track.
func Tokenize(tracks [][]model.NoteEvent) ([][]model.Token, error) {
	timelines, err := bucket.Build(tracks)
	if err != nil {
		return nil, err
	}
	return encoder.FlattenAll(timelines), nil
}

// Build runs the whole encode path. The vocabulary is complete before any
// window is generated.
func Build(tracks [][]model.NoteEvent, windowLength int, rng *rand.Rand) (*Dataset, error) {
	logger := log.WithFields(log.Fields{
		"function": "dataset.Build",
	})

	tokens, err := Tokenize(tracks)
	if err != nil {
		return nil, err
	}
	logger.Debugf("tokenized %d tracks into %d tokens", len(tracks), CountTokens(tokens))

	table := vocab.Build(tokens)
	logger.Debugf("vocabulary has %d tokens", table.Size())

	inputs, outputs, err := window.Generate(tokens, table, windowLength, rng)
	if err != nil {
		return nil, err
	}
	logger.Infof("generated %d training pairs with window %d", len(inputs), windowLength)

	return &Dataset{Tokens: tokens, Table: table, Inputs: inputs, Outputs: outputs}, nil
}

// TokenStrings is the persisted form: one array of token strings per track.
func (d *Dataset) TokenStrings() [][]string {
	return TokensToStrings(d.Tokens)
}

func TokensToStrings(tokens [][]model.Token) [][]string {
	res := make([][]string, len(tokens))
	for i, seq := range tokens {
		res[i] = model.TokenStrings(seq)
	}
	return res
}

func CountTokens(tokens [][]model.Token) int {
	var n int
	for _, seq := range tokens {
		n += len(seq)
	}
	return n
}
