package vocab

import (
	"encoding/json"
	"fmt"

	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/util"
)

// Table maps each distinct token to a dense index. It is never modified
// after Build; a changed corpus needs a new table.
type Table struct {
	index  map[string]int
	tokens []model.Token
}

// Build assigns indices in first-encounter order: sequences in the given
// order, tokens within a sequence in order.
func Build(seqs [][]model.Token) *Table {
	t := &Table{index: make(map[string]int)}
	for _, seq := range seqs {
		for _, tok := range seq {
			key := tok.String()
			if _, ok := t.index[key]; ok {
				continue
			}
			t.index[key] = len(t.tokens)
			t.tokens = append(t.tokens, tok)
		}
	}
	return t
}

func (t *Table) Size() int {
	return len(t.tokens)
}

func (t *Table) Index(tok model.Token) (int, error) {
	i, ok := t.index[tok.String()]
	if !ok {
		return 0, &model.IndexError{Token: tok.String()}
	}
	return i, nil
}

func (t *Table) Token(i int) (model.Token, bool) {
	if i < 0 || i >= len(t.tokens) {
		return model.Token{}, false
	}
	return t.tokens[i], true
}

// Tokens returns a copy of the vocabulary in index order.
func (t *Table) Tokens() []model.Token {
	res := make([]model.Token, len(t.tokens))
	copy(res, t.tokens)
	return res
}

// Indices encodes a sequence as token indices.
func (t *Table) Indices(seq []model.Token) ([]int, error) {
	res := make([]int, len(seq))
	for i, tok := range seq {
		idx, err := t.Index(tok)
		if err != nil {
			return nil, err
		}
		res[i] = idx
	}
	return res, nil
}

func (t *Table) Map() map[string]int {
	res := make(map[string]int, len(t.index))
	for k, v := range t.index {
		res[k] = v
	}
	return res
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.index)
}

// UnmarshalJSON accepts only a dense 0..n-1 assignment of tokens written in
// their canonical form, so no token can appear under two keys.
func (t *Table) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	tokens := make([]model.Token, len(m))
	seen := make([]bool, len(m))
	for _, key := range util.GetKeysSorted(m) {
		i := m[key]
		if i < 0 || i >= len(m) || seen[i] {
			return fmt.Errorf("vocabulary index %d for %q is not part of a dense assignment", i, key)
		}
		tok, err := model.ParseToken(key)
		if err != nil {
			return err
		}
		if tok.String() != key {
			return fmt.Errorf("vocabulary key %q is not written as %q", key, tok.String())
		}
		seen[i] = true
		tokens[i] = tok
	}
	t.index = m
	t.tokens = tokens
	return nil
}

func (t *Table) Save(path string) error {
	return util.WriteJSON(path, t)
}

func Load(path string) (*Table, error) {
	return util.ReadJSON[*Table](path)
}
