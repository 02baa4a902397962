package disambig

import (
	"yomu/internal/models"
)

// Resolution is the outcome of disambiguating one token.
type Resolution struct {
	// POSLabel is the applicable part-of-speech path joined for display.
	POSLabel string
	// Target is the JMdict code the primary category mapped to, or "".
	Target string
	// Entries are the entries to display, in candidate order.
	Entries []models.Entry
	// Narrowed is true when Entries is a strict subset chosen by Target.
	Narrowed bool
}

// Resolver applies a category table to tokens.
type Resolver struct {
	table Table
}

// NewResolver creates a resolver for the given table. A nil table uses DefaultTable.
func NewResolver(table Table) *Resolver {
	if table == nil {
		table = DefaultTable
	}
	return &Resolver{table: table}
}

// Resolve disambiguates the candidate entries of a token.
//
// Entries whose meanings declare the target code are preferred. When no
// target code applies, or no candidate declares it, every candidate is
// returned unchanged so nothing the analyzer found is hidden.
func (r *Resolver) Resolve(token models.Token) Resolution {
	res := Resolution{
		POSLabel: token.POSLabel(),
		Target:   r.table.Target(token.PrimaryPOS()),
		Entries:  []models.Entry{},
	}
	if !token.HasEntries() {
		return res
	}

	res.Entries = token.Entries
	if res.Target == "" {
		return res
	}

	filtered := make([]models.Entry, 0, len(token.Entries))
	for _, e := range token.Entries {
		if e.DeclaresPartOfSpeech(res.Target) {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		return res
	}

	res.Entries = filtered
	res.Narrowed = len(filtered) < len(token.Entries)
	return res
}

// ResolveEntries returns the entries to display for a token.
func (r *Resolver) ResolveEntries(token models.Token) []models.Entry {
	return r.Resolve(token).Entries
}

var defaultResolver = NewResolver(DefaultTable)

// ResolveEntries resolves a token with DefaultTable.
func ResolveEntries(token models.Token) []models.Entry {
	return defaultResolver.ResolveEntries(token)
}
