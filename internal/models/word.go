package models

import (
	"encoding/json"
	"fmt"
)

// Word is a contiguous span of the sentence presented as one display unit.
type Word struct {
	Surface string  `json:"surface"`
	Tokens  []Token `json:"tokens"`
	Entries []Entry `json:"entries"` // optional aggregate; nil when entries live on tokens only
}

// NewWord builds a word whose surface is the concatenation of its tokens.
func NewWord(tokens []Token) Word {
	w := Word{Tokens: tokens}
	for _, t := range tokens {
		w.Surface += t.Surface
	}
	return w
}

// IsPunctuation returns true if the word starts with a punctuation token.
func (w Word) IsPunctuation() bool {
	return len(w.Tokens) > 0 && w.Tokens[0].IsPunctuation()
}

// Validate checks that the word has tokens and that each token is well formed.
func (w Word) Validate() error {
	if len(w.Tokens) == 0 {
		return ErrWordWithoutTokens
	}
	for i, t := range w.Tokens {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	for _, e := range w.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Sentence is the ordered sequence of words returned for one lookup.
type Sentence []Word

// Len returns the number of words.
func (s Sentence) Len() int {
	return len(s)
}

// Word returns the word at index i, or false when i is out of range.
func (s Sentence) Word(i int) (Word, bool) {
	if i < 0 || i >= len(s) {
		return Word{}, false
	}
	return s[i], true
}

// Validate checks that the sentence is non-empty, every word is well formed
// and no two tokens share an id.
func (s Sentence) Validate() error {
	if len(s) == 0 {
		return ErrEmptySentence
	}
	ids := make(map[int]string)
	for i, w := range s {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
		for _, t := range w.Tokens {
			if prev, ok := ids[t.ID]; ok {
				return fmt.Errorf("word %d: %w %d (%q and %q)", i, ErrDuplicateTokenID, t.ID, prev, t.Surface)
			}
			ids[t.ID] = t.Surface
		}
	}
	return nil
}

// DecodeSentence parses a lookup response body into a validated Sentence.
func DecodeSentence(data []byte) (Sentence, error) {
	var s Sentence
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeSentence serializes a Sentence to the lookup response format.
func EncodeSentence(s Sentence) ([]byte, error) {
	if s == nil {
		s = Sentence{}
	}
	return json.Marshal(s)
}
