package models

import (
	"encoding/json"
	"slices"
)

// Meaning is a single sense of a dictionary entry.
type Meaning struct {
	Gloss        string   `json:"gloss"`
	PartOfSpeech []string `json:"partofspeech"` // JMdict codes, e.g. "&adj-i;"
	Misc         []string `json:"misc"`         // usage notes, e.g. "&arch;"
}

// HasPartOfSpeech reports whether the meaning carries the given code.
func (m Meaning) HasPartOfSpeech(code string) bool {
	return slices.Contains(m.PartOfSpeech, code)
}

// Entry is a dictionary headword.
type Entry struct {
	Sequence int       `json:"sequence"`
	Kanji    []string  `json:"kanji"`
	Readings []string  `json:"readings"`
	Meanings []Meaning `json:"meanings"`
}

// DeclaresPartOfSpeech reports whether any meaning of the entry carries the code.
func (e Entry) DeclaresPartOfSpeech(code string) bool {
	for _, m := range e.Meanings {
		if m.HasPartOfSpeech(code) {
			return true
		}
	}
	return false
}

// Headword returns the first kanji spelling, or the first reading for kana-only entries.
func (e Entry) Headword() string {
	if len(e.Kanji) > 0 {
		return e.Kanji[0]
	}
	if len(e.Readings) > 0 {
		return e.Readings[0]
	}
	return ""
}

// Validate checks the invariants of a well-formed entry.
func (e Entry) Validate() error {
	if len(e.Readings) == 0 {
		return ErrEntryWithoutReadings
	}
	return nil
}

// UnmarshalJSON decodes an entry and rejects the legacy shape, which carried
// partofspeech on the entry and a flat string array of meanings.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sequence     int             `json:"sequence"`
		Kanji        []string        `json:"kanji"`
		Readings     []string        `json:"readings"`
		Meanings     json.RawMessage `json:"meanings"`
		PartOfSpeech json.RawMessage `json:"partofspeech"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.PartOfSpeech) > 0 && string(raw.PartOfSpeech) != "null" {
		return ErrLegacyEntry
	}

	var meanings []Meaning
	if len(raw.Meanings) > 0 {
		if err := json.Unmarshal(raw.Meanings, &meanings); err != nil {
			var flat []string
			if json.Unmarshal(raw.Meanings, &flat) == nil {
				return ErrLegacyEntry
			}
			return err
		}
	}

	*e = Entry{
		Sequence: raw.Sequence,
		Kanji:    raw.Kanji,
		Readings: raw.Readings,
		Meanings: meanings,
	}
	return nil
}
