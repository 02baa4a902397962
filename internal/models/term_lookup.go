package models

import "time"

// Term lookup outcome constants
const (
	OutcomeCache = "cache"
	OutcomeDB    = "db"
	OutcomeMiss  = "miss"
)

// TermLookup represents a per-term dictionary lookup count by outcome.
type TermLookup struct {
	Term       string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
