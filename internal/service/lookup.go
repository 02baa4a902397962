// Package service turns a query into an annotated sentence: the analyzer
// splits it into words and every non-punctuation token receives the
// dictionary entries listed under its base form.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"yomu/internal/analyzer"
	"yomu/internal/disambig"
	"yomu/internal/models"
	"yomu/internal/validation"
)

// maxConcurrentLookups bounds the dictionary lookups in flight per query.
const maxConcurrentLookups = 4

var (
	// ErrInvalidQuery wraps validation failures; the message is user-facing.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyAnalysis is returned when the analyzer produced no words.
	ErrEmptyAnalysis = errors.New("query produced no words")
)

// EntryFinder returns the candidate entries for a base form.
type EntryFinder interface {
	Lookup(ctx context.Context, term string) ([]models.Entry, error)
}

// Options tune a LookupService.
type Options struct {
	// PruneMeanings drops meanings that cannot match a token's category
	// before entries are attached.
	PruneMeanings bool
}

// LookupService analyzes queries and attaches candidate entries.
type LookupService struct {
	analyzer analyzer.Analyzer
	finder   EntryFinder
	opts     Options
	log      *slog.Logger
}

// NewLookupService creates a LookupService.
func NewLookupService(a analyzer.Analyzer, finder EntryFinder, opts Options, logger *slog.Logger) *LookupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupService{
		analyzer: a,
		finder:   finder,
		opts:     opts,
		log:      logger.With("component", "lookup"),
	}
}

// Lookup normalizes and validates query, analyzes it and attaches entries.
func (s *LookupService) Lookup(ctx context.Context, query string) (models.Sentence, error) {
	query = validation.NormalizeQuery(query)
	if ok, msg := validation.ValidateQuery(query); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, msg)
	}

	sentence := s.analyzer.Analyze(query)
	if len(sentence) == 0 {
		return nil, ErrEmptyAnalysis
	}

	found, err := s.findAll(ctx, sentence)
	if err != nil {
		return nil, err
	}

	for wi := range sentence {
		if sentence[wi].IsPunctuation() {
			continue
		}
		for ti := range sentence[wi].Tokens {
			tok := &sentence[wi].Tokens[ti]
			if tok.IsPunctuation() {
				continue
			}
			entries := found[tok.Base]
			if s.opts.PruneMeanings {
				entries = disambig.PruneEntries(tok.POS, entries)
			}
			if len(entries) > 0 {
				tok.Entries = entries
			}
		}
	}

	s.log.DebugContext(ctx, "analyzed query",
		slog.Int("words", len(sentence)),
		slog.Int("terms", len(found)),
	)
	return sentence, nil
}

// findAll looks up every distinct base form of the sentence's non-punctuation
// tokens. A base form often repeats within a sentence (です, た) and is looked
// up once.
func (s *LookupService) findAll(ctx context.Context, sentence models.Sentence) (map[string][]models.Entry, error) {
	var terms []string
	seen := make(map[string]bool)
	for _, w := range sentence {
		if w.IsPunctuation() {
			continue
		}
		for _, tok := range w.Tokens {
			if tok.IsPunctuation() || tok.Base == "" || seen[tok.Base] {
				continue
			}
			seen[tok.Base] = true
			terms = append(terms, tok.Base)
		}
	}

	var (
		mu    sync.Mutex
		found = make(map[string][]models.Entry, len(terms))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for _, term := range terms {
		g.Go(func() error {
			entries, err := s.finder.Lookup(gctx, term)
			if err != nil {
				return fmt.Errorf("lookup %q: %w", term, err)
			}
			mu.Lock()
			found[term] = entries
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return found, nil
}
