package vocab

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jsphweid/notetoken/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, strs ...string) []model.Token {
	tokens, err := model.ParseTokens(strs)
	require.NoError(t, err)
	return tokens
}

func TestAssignsIndicesInFirstEncounterOrder(t *testing.T) {
	table := Build([][]model.Token{
		parse(t, "sC4", "sE4", "t0.5", "eE4", "t0.5", "eC4"),
		parse(t, "sG4", "t0.5", "eG4", "sC4"),
	})

	assert := assert.New(t)
	assert.Equal(7, table.Size())
	assert.Equal(map[string]int{
		"sC4": 0, "sE4": 1, "t0.5": 2, "eE4": 3, "eC4": 4, "sG4": 5, "eG4": 6,
	}, table.Map())

	tok, ok := table.Token(5)
	assert.True(ok)
	assert.Equal(model.StartToken("G4"), tok)
	_, ok = table.Token(7)
	assert.False(ok)
}

func TestBuildIsDeterministic(t *testing.T) {
	seqs := [][]model.Token{
		parse(t, "sA3", "t1", "eA3"),
		parse(t, "sB3", "t0.25", "eB3", "t1", "sA3"),
	}
	first := Build(seqs)
	second := Build(seqs)
	assert.Equal(t, first.Map(), second.Map())
	assert.Equal(t, first.Tokens(), second.Tokens())
}

func TestUnseenTokenIsAnIndexError(t *testing.T) {
	table := Build([][]model.Token{parse(t, "sC4", "eC4")})

	_, err := table.Index(model.StartToken("D4"))
	var ierr *model.IndexError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, "sD4", ierr.Token)

	_, err = table.Indices(parse(t, "sC4", "t2"))
	assert.True(t, errors.As(err, &ierr))
}

func TestEmptyCorpus(t *testing.T) {
	table := Build([][]model.Token{{}, {}})
	assert.Equal(t, 0, table.Size())
}

func TestJSONRoundTrip(t *testing.T) {
	table := Build([][]model.Token{parse(t, "sC4", "t0.5", "eC4", "t0.5")})
	path := filepath.Join(t.TempDir(), "vocabulary.json")
	require.NoError(t, table.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, table.Map(), loaded.Map())
	assert.Equal(t, table.Tokens(), loaded.Tokens())
}

func TestUnmarshalRejectsSparseIndices(t *testing.T) {
	cases := map[string]string{
		"gap":           `{"sC4": 0, "eC4": 2}`,
		"duplicate":     `{"sC4": 0, "eC4": 0}`,
		"negative":      `{"sC4": -1}`,
		"bad token":     `{"x": 0}`,
		"non-canonical": `{"t0.50": 0}`,
		"hex float":     `{"t0x1p-1": 0}`,
		"same token":    `{"t0.5": 0, "t0.50": 1}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			var table Table
			assert.Error(t, json.Unmarshal([]byte(data), &table))
		})
	}
}
