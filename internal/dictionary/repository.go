// Package dictionary finds candidate entries for a base form, reading through
// the Redis cache before falling back to PostgreSQL.
package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"yomu/internal/models"
)

// Source is the authoritative entry store.
type Source interface {
	LookupEntries(ctx context.Context, term string) ([]models.Entry, error)
}

// Cache holds lookups keyed by term.
type Cache interface {
	Get(term string) ([]models.Entry, bool, error)
	Set(term string, entries []models.Entry) error
	Invalidate(term string) error
}

// RecordFunc receives the outcome of every successful lookup.
type RecordFunc func(term, outcome string)

// Repository is a cache-aside view over a Source.
type Repository struct {
	source Source
	cache  Cache
	record RecordFunc
	log    *slog.Logger
	fills  sync.WaitGroup
}

// NewRepository creates a Repository. cache and record may be nil.
func NewRepository(source Source, cache Cache, record RecordFunc, logger *slog.Logger) *Repository {
	if record == nil {
		record = func(string, string) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		source: source,
		cache:  cache,
		record: record,
		log:    logger.With("component", "dictionary"),
	}
}

// Lookup returns the entries for term. Cache failures are logged and
// bypassed; only a failing Source is an error.
func (r *Repository) Lookup(ctx context.Context, term string) ([]models.Entry, error) {
	if r.cache != nil {
		entries, ok, err := r.cache.Get(term)
		if err != nil {
			r.log.WarnContext(ctx, "cache read failed", slog.String("term", term), slog.String("error", err.Error()))
		} else if ok {
			r.record(term, models.OutcomeCache)
			return entries, nil
		}
	}

	entries, err := r.source.LookupEntries(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", term, err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	if len(entries) == 0 {
		r.record(term, models.OutcomeMiss)
	} else {
		r.record(term, models.OutcomeDB)
	}

	if r.cache != nil {
		r.fill(term, entries)
	}
	return entries, nil
}

// fill writes entries to the cache in the background.
func (r *Repository) fill(term string, entries []models.Entry) {
	r.fills.Add(1)
	go func() {
		defer r.fills.Done()
		if err := r.cache.Set(term, entries); err != nil {
			r.log.Warn("cache fill failed", slog.String("term", term), slog.String("error", err.Error()))
		}
	}()
}

// Wait blocks until background cache fills have finished.
func (r *Repository) Wait() {
	r.fills.Wait()
}
