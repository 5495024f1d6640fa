package model

type EncodeRequestBody struct {
	Tracks [][]NoteEvent `json:"tracks"`
}

type EncodeResponse struct {
	Tokens     [][]string     `json:"tokens"`
	Vocabulary map[string]int `json:"vocabulary"`
}

type DecodeRequestBody struct {
	Tokens     []string `json:"tokens"`
	ClockStart float64  `json:"clockStart"`
	Policy     string   `json:"policy"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
