package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yomu/internal/analyzer"
	"yomu/internal/disambig"
	"yomu/internal/models"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAnalyzer struct {
	tokens []models.Token
	got    string
}

func (f *fakeAnalyzer) Analyze(text string) models.Sentence {
	f.got = text
	return analyzer.Segment(f.tokens)
}

type fakeFinder struct {
	mu      sync.Mutex
	entries map[string][]models.Entry
	calls   map[string]int
	err     error
}

func (f *fakeFinder) Lookup(ctx context.Context, term string) ([]models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[term]++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[term], nil
}

func tok(surface, base string, pos ...string) models.Token {
	for len(pos) < models.MaxPOSDepth {
		pos = append(pos, models.POSNotApplicable)
	}
	return models.Token{Class: models.ClassKnown, Surface: surface, Base: base, POS: pos}
}

func meaning(gloss string, pos ...string) models.Meaning {
	return models.Meaning{Gloss: gloss, PartOfSpeech: pos}
}

var (
	yoi    = models.Entry{Sequence: 1605820, Kanji: []string{"良い"}, Readings: []string{"よい"}, Meanings: []models.Meaning{meaning("good", "&adj-i;")}}
	taAux  = models.Entry{Sequence: 2654250, Readings: []string{"た"}, Meanings: []models.Meaning{meaning("did / (have) done", "&aux-v;")}}
	taNoun = models.Entry{Sequence: 1442730, Kanji: []string{"田"}, Readings: []string{"た"}, Meanings: []models.Meaning{meaning("rice field", "&n;")}}
)

func sentenceTokens() []models.Token {
	return []models.Token{
		tok("とても", "とても", "副詞", "助詞類接続"),
		tok("良かっ", "良い", "形容詞", "自立", "*", "*", "形容詞・アウオ段"),
		tok("た", "た", "助動詞", "*", "*", "*", "特殊・タ"),
		tok("です", "です", "助動詞", "*", "*", "*", "特殊・デス"),
		tok("。", "。", "記号", "句点"),
	}
}

func TestLookupService_AttachesEntries(t *testing.T) {
	an := &fakeAnalyzer{tokens: sentenceTokens()}
	finder := &fakeFinder{entries: map[string][]models.Entry{
		"良い": {yoi},
		"た":  {taNoun, taAux},
	}}
	svc := NewLookupService(an, finder, Options{}, newTestLogger())

	s, err := svc.Lookup(context.Background(), "とても良かったです。")
	require.NoError(t, err)
	require.Len(t, s, 4)

	assert.Nil(t, s[0].Tokens[0].Entries, "no match leaves entries nil")
	assert.Equal(t, []models.Entry{yoi}, s[1].Tokens[0].Entries)
	assert.Equal(t, []models.Entry{taNoun, taAux}, s[1].Tokens[1].Entries, "candidates are not narrowed")
	assert.Nil(t, s[3].Tokens[0].Entries)
	assert.Zero(t, finder.calls["。"], "punctuation is never looked up")

	// Display-time disambiguation picks the auxiliary.
	assert.Equal(t, []models.Entry{taAux}, disambig.ResolveEntries(s[1].Tokens[1]))
}

func TestLookupService_LooksUpEachBaseOnce(t *testing.T) {
	tokens := []models.Token{
		tok("寒かっ", "寒い", "形容詞"),
		tok("た", "た", "助動詞"),
		tok("し", "する", "動詞"),
		tok("た", "た", "助動詞"),
	}
	finder := &fakeFinder{entries: map[string][]models.Entry{"た": {taAux}}}
	svc := NewLookupService(&fakeAnalyzer{tokens: tokens}, finder, Options{}, newTestLogger())

	_, err := svc.Lookup(context.Background(), "寒かったした")
	require.NoError(t, err)
	assert.Equal(t, 1, finder.calls["た"])
}

func TestLookupService_PruneMeanings(t *testing.T) {
	an := &fakeAnalyzer{tokens: sentenceTokens()}
	finder := &fakeFinder{entries: map[string][]models.Entry{"た": {taNoun, taAux}}}
	svc := NewLookupService(an, finder, Options{PruneMeanings: true}, newTestLogger())

	s, err := svc.Lookup(context.Background(), "とても良かったです。")
	require.NoError(t, err)
	assert.Equal(t, []models.Entry{taAux}, s[1].Tokens[1].Entries)
}

func TestLookupService_NormalizesQuery(t *testing.T) {
	an := &fakeAnalyzer{tokens: sentenceTokens()}
	svc := NewLookupService(an, &fakeFinder{}, Options{}, newTestLogger())

	_, err := svc.Lookup(context.Background(), "　とても良かったです。\n")
	require.NoError(t, err)
	assert.Equal(t, "とても良かったです。", an.got)
}

func TestLookupService_Errors(t *testing.T) {
	boom := errors.New("db down")

	tests := []struct {
		name   string
		query  string
		tokens []models.Token
		finder *fakeFinder
		want   error
	}{
		{"empty query", "  ", sentenceTokens(), &fakeFinder{}, ErrInvalidQuery},
		{"no words", "…", nil, &fakeFinder{}, ErrEmptyAnalysis},
		{"finder failure", "良い", []models.Token{tok("良い", "良い", "形容詞")}, &fakeFinder{err: boom}, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLookupService(&fakeAnalyzer{tokens: tt.tokens}, tt.finder, Options{}, newTestLogger())
			s, err := svc.Lookup(context.Background(), tt.query)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLookupService_Kagome(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping dictionary load in short mode")
	}
	k, err := analyzer.NewKagome()
	require.NoError(t, err)

	finder := &fakeFinder{entries: map[string][]models.Entry{"良い": {yoi}, "た": {taNoun, taAux}}}
	svc := NewLookupService(k, finder, Options{}, newTestLogger())

	s, err := svc.Lookup(context.Background(), "とても良かったです。")
	require.NoError(t, err)
	require.Len(t, s, 4)
	require.NoError(t, s.Validate())
	assert.Equal(t, []models.Entry{taAux}, disambig.ResolveEntries(s[1].Tokens[1]))
}
