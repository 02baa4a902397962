// Package disambig picks the dictionary entries that best match a token's
// grammatical category.
//
// The analyzer assigns each token an IPA/ChaSen part-of-speech path whose
// first component is a broad category such as 助動詞 (auxiliary verb). JMdict
// entries declare their part of speech with codes such as "&aux-v;". A Table
// maps the former to the latter.
package disambig

import "maps"

// Table maps a primary analyzer category to the JMdict code it corresponds to.
type Table map[string]string

// DefaultTable is the category table used when no overrides are configured.
var DefaultTable = Table{
	"助動詞": "&aux-v;",  // auxiliary verb
	"形容詞": "&adj-i;",  // i-adjective
	"副詞":  "&adv;",    // adverb
	"連体詞": "&adj-pn;", // pre-noun adjectival
	"感動詞": "&int;",    // interjection
	"接続詞": "&conj;",   // conjunction
	"助詞":  "&prt;",    // particle
}

// Target returns the JMdict code for a category, or "" if the category is unmapped.
func (t Table) Target(category string) string {
	if category == "" {
		return ""
	}
	return t[category]
}

// With returns a copy of the table with the overrides applied.
// An override with an empty code removes the category.
func (t Table) With(overrides map[string]string) Table {
	out := maps.Clone(t)
	if out == nil {
		out = Table{}
	}
	for category, code := range overrides {
		if code == "" {
			delete(out, category)
			continue
		}
		out[category] = code
	}
	return out
}
