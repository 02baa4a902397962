package handlers

import (
	"strings"

	"yomu/internal/disambig"
	"yomu/internal/models"
	"yomu/internal/selection"
)

// WordView is one word of the rendered sentence.
type WordView struct {
	Index       int
	Surface     string
	Punctuation bool
	Selected    bool
}

// MeaningView is a single gloss with its tags.
type MeaningView struct {
	Gloss string
	Tags  string
}

// EntryView is a dictionary entry prepared for display.
type EntryView struct {
	Sequence int
	Headword string
	Readings string
	Meanings []MeaningView
}

// TokenView is one token of the selected word with its resolved entries.
type TokenView struct {
	Surface  string
	Base     string
	Reading  string
	POSLabel string
	Narrowed bool
	Entries  []EntryView
}

// WordDetail is the detail panel for the selected word.
type WordDetail struct {
	Index   int
	Surface string
	Tokens  []TokenView
}

// BuildSentenceView lists the words of a sentence, marking the selected index.
func BuildSentenceView(s models.Sentence, selected int) []WordView {
	views := make([]WordView, len(s))
	for i, w := range s {
		views[i] = WordView{
			Index:       i,
			Surface:     w.Surface,
			Punctuation: w.IsPunctuation(),
			Selected:    i == selected && selected != selection.Unselected,
		}
	}
	return views
}

// BuildWordDetail resolves the entries of every token in a word.
func BuildWordDetail(r *disambig.Resolver, index int, w models.Word) WordDetail {
	d := WordDetail{
		Index:   index,
		Surface: w.Surface,
		Tokens:  make([]TokenView, 0, len(w.Tokens)),
	}
	for _, t := range w.Tokens {
		res := r.Resolve(t)
		tv := TokenView{
			Surface:  t.Surface,
			Base:     t.Base,
			Reading:  t.Reading,
			POSLabel: res.POSLabel,
			Narrowed: res.Narrowed,
			Entries:  make([]EntryView, 0, len(res.Entries)),
		}
		for _, e := range res.Entries {
			tv.Entries = append(tv.Entries, buildEntryView(e))
		}
		d.Tokens = append(d.Tokens, tv)
	}
	return d
}

func buildEntryView(e models.Entry) EntryView {
	ev := EntryView{
		Sequence: e.Sequence,
		Headword: e.Headword(),
		Readings: strings.Join(e.Readings, "、"),
		Meanings: make([]MeaningView, 0, len(e.Meanings)),
	}
	for _, m := range e.Meanings {
		tags := make([]string, 0, len(m.PartOfSpeech)+len(m.Misc))
		for _, tag := range append(append([]string{}, m.PartOfSpeech...), m.Misc...) {
			tags = append(tags, strings.Trim(tag, "&;"))
		}
		ev.Meanings = append(ev.Meanings, MeaningView{
			Gloss: m.Gloss,
			Tags:  strings.Join(tags, ", "),
		})
	}
	return ev
}
