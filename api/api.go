package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/notetoken/dataset"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/replay"
	"github.com/jsphweid/notetoken/vocab"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Server answers encode/decode requests. The vocabulary, if any, is loaded
// once and only read afterwards.
type Server struct {
	table *vocab.Table
}

func New(table *vocab.Table) *Server {
	return &Server{table: table}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/encode", s.HandleEncode).Methods("POST")
	router.HandleFunc("/decode", s.HandleDecode).Methods("POST")
	router.HandleFunc("/vocabulary", s.HandleVocabulary).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{"function": "api.writeJSON"}).Warnf("Could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var verr *model.ValidationError
	var rerr *model.ReplayError
	var ierr *model.IndexError
	switch {
	case errors.As(err, &verr), errors.As(err, &rerr), errors.As(err, &ierr):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (s *Server) HandleEncode(w http.ResponseWriter, r *http.Request) {
	var input model.EncodeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}

	tokens, err := dataset.Tokenize(input.Tracks)
	if err != nil {
		writeError(w, err)
		return
	}
	table := vocab.Build(tokens)
	writeJSON(w, http.StatusOK, model.EncodeResponse{
		Tokens:     dataset.TokensToStrings(tokens),
		Vocabulary: table.Map(),
	})
}

func (s *Server) HandleDecode(w http.ResponseWriter, r *http.Request) {
	var input model.DecodeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}

	policy, err := replay.ParsePolicy(input.Policy)
	if err != nil {
		writeError(w, err)
		return
	}
	events, err := replay.ReplayStrings(input.Tokens, input.ClockStart, replay.WithPolicy(policy))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) HandleVocabulary(w http.ResponseWriter, r *http.Request) {
	if s.table == nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no vocabulary loaded"})
		return
	}
	writeJSON(w, http.StatusOK, s.table)
}
