package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"yomu/internal/db"
	"yomu/internal/models"
)

// EntryStore is the writable side of the dictionary.
type EntryStore interface {
	GetEntry(ctx context.Context, sequence int) (*models.Entry, error)
	UpsertEntry(ctx context.Context, e models.Entry) error
	DeleteEntry(ctx context.Context, sequence int) error
}

// Editor changes stored entries and drops the cached lookups they affect.
type Editor struct {
	store EntryStore
	cache Cache
	log   *slog.Logger
}

// NewEditor creates an Editor. cache may be nil.
func NewEditor(store EntryStore, cache Cache, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		store: store,
		cache: cache,
		log:   logger.With("component", "dictionary-editor"),
	}
}

// Get returns the entry with the given sequence number.
func (e *Editor) Get(ctx context.Context, sequence int) (*models.Entry, error) {
	return e.store.GetEntry(ctx, sequence)
}

// Upsert stores entry. Lookups cached under its old and new spellings are dropped.
func (e *Editor) Upsert(ctx context.Context, entry models.Entry) error {
	old, err := e.store.GetEntry(ctx, entry.Sequence)
	if err != nil && !errors.Is(err, db.ErrEntryNotFound) {
		return fmt.Errorf("entry %d: %w", entry.Sequence, err)
	}
	if err := e.store.UpsertEntry(ctx, entry); err != nil {
		return fmt.Errorf("entry %d: %w", entry.Sequence, err)
	}

	terms := Terms(entry)
	if old != nil {
		terms = append(terms, Terms(*old)...)
	}
	e.invalidate(ctx, terms)
	return nil
}

// Delete removes the entry with the given sequence number and drops the
// lookups cached under its spellings.
func (e *Editor) Delete(ctx context.Context, sequence int) error {
	old, err := e.store.GetEntry(ctx, sequence)
	if err != nil {
		return fmt.Errorf("entry %d: %w", sequence, err)
	}
	if err := e.store.DeleteEntry(ctx, sequence); err != nil {
		return fmt.Errorf("entry %d: %w", sequence, err)
	}
	e.invalidate(ctx, Terms(*old))
	return nil
}

// Seed upserts every entry in order.
func (e *Editor) Seed(ctx context.Context, entries []models.Entry) error {
	for _, entry := range entries {
		if err := e.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
	}
	return nil
}

// invalidate drops cached lookups. Failures are logged; the cache TTL bounds
// how long a stale lookup can survive.
func (e *Editor) invalidate(ctx context.Context, terms []string) {
	if e.cache == nil {
		return
	}
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true
		if err := e.cache.Invalidate(term); err != nil {
			e.log.WarnContext(ctx, "cache invalidate failed", slog.String("term", term), slog.String("error", err.Error()))
		}
	}
}

// Terms lists the spellings an entry is looked up by: readings, then kanji.
func Terms(e models.Entry) []string {
	terms := make([]string, 0, len(e.Readings)+len(e.Kanji))
	terms = append(terms, e.Readings...)
	return append(terms, e.Kanji...)
}
