package models

import "strings"

// TokenClass is the provenance of a token as reported by the analyzer.
type TokenClass string

// Token class constants
const (
	ClassDummy   TokenClass = "DUMMY"
	ClassKnown   TokenClass = "KNOWN"
	ClassUnknown TokenClass = "UNKNOWN"
	ClassUser    TokenClass = "USER"
)

// Valid returns true if the class is one of the known analyzer classes.
func (c TokenClass) Valid() bool {
	switch c {
	case ClassDummy, ClassKnown, ClassUnknown, ClassUser:
		return true
	}
	return false
}

// MaxPOSDepth is the fixed depth of a part-of-speech path.
const MaxPOSDepth = 5

// POSNotApplicable marks a part-of-speech level that does not apply.
const POSNotApplicable = "*"

// POSPunctuation is the primary category the analyzer assigns to symbols and punctuation.
const POSPunctuation = "記号"

// Token is one morphological unit produced by analysis.
type Token struct {
	ID      int        `json:"id"`
	Class   TokenClass `json:"class"`
	Surface string     `json:"surface"`
	POS     []string   `json:"pos"`
	Base    string     `json:"base"`
	Reading string     `json:"reading"`
	Pron    string     `json:"pron"`
	Entries []Entry    `json:"entries"`
}

// PrimaryPOS returns the first component of the part-of-speech path, or "" when
// the path is empty or not applicable at depth 1.
func (t Token) PrimaryPOS() string {
	if len(t.POS) == 0 || t.POS[0] == POSNotApplicable {
		return ""
	}
	return t.POS[0]
}

// POSLabel joins the applicable part-of-speech components for display.
func (t Token) POSLabel() string {
	parts := make([]string, 0, len(t.POS))
	for _, p := range t.POS {
		if p != POSNotApplicable && p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// IsPunctuation returns true if the token is a punctuation mark or symbol.
func (t Token) IsPunctuation() bool {
	return t.PrimaryPOS() == POSPunctuation
}

// HasEntries returns true if at least one candidate entry is attached.
func (t Token) HasEntries() bool {
	return len(t.Entries) > 0
}

// Validate checks the structural invariants of a token and its entries.
func (t Token) Validate() error {
	if !t.Class.Valid() {
		return ErrInvalidTokenClass
	}
	if len(t.POS) > MaxPOSDepth {
		return ErrPOSTooDeep
	}
	for _, e := range t.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
