package model

import (
	"encoding/json"
	"math"
	"strconv"
)

type TokenKind uint8

const (
	Start TokenKind = iota
	Stop
	Advance
)

const (
	startPrefix   = 's'
	stopPrefix    = 'e'
	advancePrefix = 't'
)

// Token is one symbol of the flattened event alphabet. Pitch is set for
// Start and Stop, Delta for Advance.
type Token struct {
	Kind  TokenKind
	Pitch string
	Delta float64
}

func StartToken(pitch string) Token { return Token{Kind: Start, Pitch: pitch} }

func StopToken(pitch string) Token { return Token{Kind: Stop, Pitch: pitch} }

func AdvanceToken(delta float64) Token { return Token{Kind: Advance, Delta: delta} }

func FormatDelta(delta float64) string {
	return strconv.FormatFloat(delta, 'f', -1, 64)
}

func (t Token) String() string {
	switch t.Kind {
	case Start:
		return string(startPrefix) + t.Pitch
	case Stop:
		return string(stopPrefix) + t.Pitch
	default:
		return string(advancePrefix) + FormatDelta(t.Delta)
	}
}

// ParseToken is the inverse of Token.String.
func ParseToken(s string) (Token, error) {
	if len(s) < 2 {
		return Token{}, &ValidationError{Track: -1, Field: "token", Value: s, Reason: "too short"}
	}
	rest := s[1:]
	switch s[0] {
	case startPrefix:
		return StartToken(rest), nil
	case stopPrefix:
		return StopToken(rest), nil
	case advancePrefix:
		delta, err := strconv.ParseFloat(rest, 64)
		if err != nil || math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
			return Token{}, &ValidationError{Track: -1, Field: "token", Value: s, Reason: "advance needs a positive decimal"}
		}
		return AdvanceToken(delta), nil
	}
	return Token{}, &ValidationError{Track: -1, Field: "token", Value: s, Reason: "unknown prefix"}
}

func ParseTokens(strs []string) ([]Token, error) {
	res := make([]Token, 0, len(strs))
	for _, s := range strs {
		t, err := ParseToken(s)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func TokenStrings(tokens []Token) []string {
	res := make([]string, len(tokens))
	for i, t := range tokens {
		res[i] = t.String()
	}
	return res
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseToken(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
