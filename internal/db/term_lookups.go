package db

import (
	"context"

	"yomu/internal/models"
)

// IncrementTermLookup upserts a term lookup count by outcome.
func (d *DB) IncrementTermLookup(ctx context.Context, term, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO term_lookups (term, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (term, outcome) DO UPDATE
		SET count = term_lookups.count + 1, last_seen_at = NOW()
	`, term, outcome)
	return err
}

// GetAllTermLookups returns all term lookup rows for metrics export.
func (d *DB) GetAllTermLookups(ctx context.Context) ([]models.TermLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT term, outcome, count, last_seen_at FROM term_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.TermLookup
	for rows.Next() {
		var l models.TermLookup
		if err := rows.Scan(&l.Term, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
