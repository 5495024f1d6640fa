package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEncode(t *testing.T) {
	body := model.EncodeRequestBody{Tracks: [][]model.NoteEvent{{
		{Pitch: "C4", Onset: 0, Duration: 1},
		{Pitch: "E4", Onset: 0, Duration: 0.5},
		{Pitch: "C4", Onset: 2, Duration: 1},
	}}}
	w := post(t, New(nil).Router(), "/encode", body)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.EncodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, [][]string{{"sC4", "sE4", "t0.5", "eE4", "t0.5", "eC4", "t1", "sC4", "t1", "eC4"}}, res.Tokens)
	assert.Equal(t, map[string]int{"sC4": 0, "sE4": 1, "t0.5": 2, "eE4": 3, "eC4": 4, "t1": 5}, res.Vocabulary)
}

func TestEncodeRejectsInvalidNotes(t *testing.T) {
	body := model.EncodeRequestBody{Tracks: [][]model.NoteEvent{{{Pitch: "C4", Onset: -1, Duration: 1}}}}
	w := post(t, New(nil).Router(), "/encode", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "onset")
}

func TestDecode(t *testing.T) {
	body := model.DecodeRequestBody{
		Tokens:     []string{"sC4", "sE4", "t0.5", "eE4", "t0.5", "eC4", "t1", "sC4", "t1", "eC4"},
		ClockStart: 1,
	}
	w := post(t, New(nil).Router(), "/decode", body)
	require.Equal(t, http.StatusOK, w.Code)

	var events []model.PlaybackEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Equal(t, []model.PlaybackEvent{
		{Pitch: "E4", Onset: 1, Duration: 0.5},
		{Pitch: "C4", Onset: 1, Duration: 1},
		{Pitch: "C4", Onset: 3, Duration: 1},
	}, events)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]model.DecodeRequestBody{
		"unmatched stop": {Tokens: []string{"eC4"}},
		"bad token":      {Tokens: []string{"zz"}},
		"bad policy":     {Tokens: []string{"sC4"}, Policy: "stack"},
		"rejected open":  {Tokens: []string{"sC4", "sC4"}, Policy: "reject"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := post(t, New(nil).Router(), "/decode", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/decode", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	New(nil).Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVocabulary(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/vocabulary", nil)
	w := httptest.NewRecorder()
	New(nil).Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	tokens, err := model.ParseTokens([]string{"sC4", "t1", "eC4"})
	require.NoError(t, err)
	table := vocab.Build([][]model.Token{tokens})

	w = httptest.NewRecorder()
	New(table).Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var m map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, map[string]int{"sC4": 0, "t1": 1, "eC4": 2}, m)
}
