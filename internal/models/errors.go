package models

import "errors"

// Shape errors reported while decoding a lookup response.
var (
	ErrEmptySentence        = errors.New("sentence has no words")
	ErrWordWithoutTokens    = errors.New("word has no tokens")
	ErrInvalidTokenClass    = errors.New("invalid token class")
	ErrPOSTooDeep           = errors.New("part-of-speech path deeper than 5")
	ErrEntryWithoutReadings = errors.New("entry has no readings")
	ErrDuplicateTokenID     = errors.New("duplicate token id")

	// ErrLegacyEntry is returned for the older response shape where meanings
	// were plain strings and partofspeech was a single entry-level field.
	ErrLegacyEntry = errors.New("legacy entry shape is not supported")
)
