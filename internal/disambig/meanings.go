package disambig

import (
	"slices"

	"yomu/internal/models"
)

// CategoryCodes lists, per primary analyzer category, every JMdict code a
// meaning may carry and still be relevant to a token of that category.
// It is broader than Table: Table picks one preferred code, CategoryCodes
// decides what can be pruned at all.
var CategoryCodes = map[string][]string{
	"名詞": {
		"&n;", "&pn;", "&n-adv;", "&vs;", "&adj-na;", "&num;", "&aux;",
		"&n-suf;", "&suf;", "&conj;", "&exp;", "&n-pr;", "&ctr;",
	},
	"接頭詞": {"&pref;", "&n-pref;"},
	"動詞": {
		"&v1;", "&v1-s;", "&v2b-k;", "&v2h-k;", "&v2h-s;", "&v2m-s;", "&v2r-s;",
		"&v2t-k;", "&v5aru;", "&v5b;", "&v5g;", "&v5k;", "&v5k-s;", "&v5m;",
		"&v5n;", "&v5r;", "&v5r-i;", "&v5s;", "&v5t;", "&v5u;", "&v5u-s;",
		"&vk;", "&vs-c;", "&vs-i;", "&vs-s;", "&vz;", "&vi;", "&vt;", "&cop-da;",
	},
	"形容詞": {
		"&adj-f;", "&adj-i;", "&adj-ix;", "&adj-ku;", "&adj-na;", "&adj-nari;",
		"&adj-no;", "&adj-pn;", "&adj-shiku;", "&adj-t;",
	},
	"副詞":  {"&adv;", "&adv-to;", "&n-adv;"},
	"連体詞": {"&n;", "&adj-pn;", "&adj-f;"},
	"接続詞": {"&conj;"},
	"助詞":  {"&prt;", "&conj;"},
	"助動詞": {"&aux;", "&aux-v;", "&aux-adj;"},
	"感動詞": {"&int;"},
}

// MatchesCategory reports whether a meaning is plausible for the part-of-speech path.
// An empty path matches everything; an unknown primary category matches nothing.
func MatchesCategory(pos []string, m models.Meaning) bool {
	if len(pos) == 0 {
		return true
	}
	codes, ok := CategoryCodes[pos[0]]
	if !ok {
		return false
	}
	for _, p := range m.PartOfSpeech {
		if slices.Contains(codes, p) {
			return true
		}
	}
	return false
}

// FilterMeanings returns the meanings that match the part-of-speech path, in order.
func FilterMeanings(pos []string, meanings []models.Meaning) []models.Meaning {
	out := make([]models.Meaning, 0, len(meanings))
	for _, m := range meanings {
		if MatchesCategory(pos, m) {
			out = append(out, m)
		}
	}
	return out
}

// PruneEntries narrows each entry to the meanings that match the path and
// drops entries left with none. The input slice is not modified.
func PruneEntries(pos []string, entries []models.Entry) []models.Entry {
	if len(entries) == 0 {
		return entries
	}
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		meanings := FilterMeanings(pos, e.Meanings)
		if len(meanings) == 0 {
			continue
		}
		e.Meanings = meanings
		out = append(out, e)
	}
	return out
}
