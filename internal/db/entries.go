package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"yomu/internal/models"
)

// entryColumns is the standard column list for entry queries.
const entryColumns = `sequence, kanji, readings, meanings`

// scanEntry scans a row into an Entry. Meanings are stored as JSONB.
func scanEntry(row pgx.Row) (*models.Entry, error) {
	var (
		e        models.Entry
		meanings []byte
	)
	err := row.Scan(&e.Sequence, &e.Kanji, &e.Readings, &meanings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(meanings, &e.Meanings); err != nil {
		return nil, fmt.Errorf("entry %d: decode meanings: %w", e.Sequence, err)
	}
	return &e, nil
}

// scanEntries scans multiple rows into a slice of Entries.
func scanEntries(rows pgx.Rows) ([]models.Entry, error) {
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// LookupEntries returns the entries that list term as a reading or kanji
// spelling, ordered by sequence. No match returns an empty slice.
// Containment (@>) lets PostgreSQL use the GIN indexes on both columns.
func (d *DB) LookupEntries(ctx context.Context, term string) ([]models.Entry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE readings @> ARRAY[$1::text] OR kanji @> ARRAY[$1::text]
		ORDER BY sequence
	`, term)
	if err != nil {
		return nil, err
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

// GetEntry returns the entry with the given sequence number.
func (d *DB) GetEntry(ctx context.Context, sequence int) (*models.Entry, error) {
	return scanEntry(d.Pool.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE sequence = $1`, sequence))
}

// UpsertEntry inserts an entry or replaces the stored one with the same sequence.
func (d *DB) UpsertEntry(ctx context.Context, e models.Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	meanings := e.Meanings
	if meanings == nil {
		meanings = []models.Meaning{}
	}
	encoded, err := json.Marshal(meanings)
	if err != nil {
		return fmt.Errorf("entry %d: encode meanings: %w", e.Sequence, err)
	}

	_, err = d.Pool.Exec(ctx, `
		INSERT INTO entries (sequence, kanji, readings, meanings)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sequence) DO UPDATE
		SET kanji = EXCLUDED.kanji,
			readings = EXCLUDED.readings,
			meanings = EXCLUDED.meanings,
			updated_at = NOW()
	`, e.Sequence, e.Kanji, e.Readings, encoded)
	return err
}

// DeleteEntry removes an entry by sequence.
func (d *DB) DeleteEntry(ctx context.Context, sequence int) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM entries WHERE sequence = $1`, sequence)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// CountEntries returns the number of stored entries.
func (d *DB) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}
