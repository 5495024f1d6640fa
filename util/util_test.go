package util

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToFiveDecimals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.5, Round(0.500001, 5))
	assert.Equal(1.00001, Round(1.000006, 5))
	assert.Equal(0.0, Round(0.000004, 5))
	assert.Equal(2.0, Round(1.999999, 5))
}

func TestRoundKeepsHugeValuesFinite(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1e304, Round(1e304, 5))
	assert.Equal(-1e304, Round(-1e304, 5))
	assert.Equal(math.MaxFloat64, Round(math.MaxFloat64, 5))
}

func TestIsFiniteNonNegative(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsFiniteNonNegative(0))
	assert.True(IsFiniteNonNegative(3.5))
	assert.False(IsFiniteNonNegative(-0.1))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []int{1, 2, 3}, GetKeysSorted(m))
}

func TestMinMaxSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 5))
	assert.Equal(5, Max(2, 5))
	assert.Equal(uint64(10), Sum([]int{1, 2, 3, 4}))
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mid", "b.midi", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0666))
	}

	paths, err := GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.mid"), filepath.Join(dir, "b.midi")}, paths)

	limited, err := GatherAllMidiPaths(dir, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestJSONAndBinaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data := map[string]int{"sC4": 0, "eC4": 1}

	jsonPath := filepath.Join(dir, "v.json")
	require.NoError(t, WriteJSON(jsonPath, data))
	fromJSON, err := ReadJSON[map[string]int](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, data, fromJSON)

	binPath := filepath.Join(dir, "v.dat")
	require.NoError(t, CreateBinary(binPath, data))
	fromBin, err := ReadBinary[map[string]int](binPath)
	require.NoError(t, err)
	assert.Equal(t, data, fromBin)
}
