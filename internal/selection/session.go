// Package selection tracks which word of the current sentence a reader has
// focused. A Session owns exactly one Sentence at a time and is only mutated
// through Load, SelectWord and Lookup.
package selection

import (
	"context"
	"sync"
	"time"

	"yomu/internal/models"
)

// Unselected is the selected index when no word is focused.
const Unselected = -1

// Looker fetches an annotated sentence for a query.
type Looker interface {
	Lookup(ctx context.Context, query string) (models.Sentence, error)
}

// Session is the state of one reader: the current sentence and selection.
type Session struct {
	mu       sync.Mutex
	id       string
	sentence models.Sentence
	query    string
	selected int
	lastSeen time.Time

	// generation increments on every lookup and load; only the newest may
	// apply its result.
	generation uint64
	cancel     context.CancelFunc
}

// NewSession creates an empty, unselected session.
func NewSession(id string) *Session {
	return &Session{
		id:       id,
		selected: Unselected,
		lastSeen: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Load replaces the sentence and resets the selection. A lookup still in
// flight is cancelled and its result discarded.
func (s *Session) Load(query string, sentence models.Sentence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
	s.load(query, sentence)
}

func (s *Session) load(query string, sentence models.Sentence) {
	s.sentence = sentence
	s.query = query
	s.selected = Unselected
}

// SelectWord focuses the word at index i. Out-of-range indices are rejected
// with ErrSelectionRange and leave the state unchanged.
func (s *Session) SelectWord(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.sentence) {
		return &RangeError{Index: i, Len: len(s.sentence)}
	}
	s.selected = i
	return nil
}

// Clear returns to the unselected state without touching the sentence.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = Unselected
}

// SelectedWord returns the focused word, or false when nothing is selected.
func (s *Session) SelectedWord() (models.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == Unselected {
		return models.Word{}, false
	}
	return s.sentence.Word(s.selected)
}

// SelectedIndex returns the focused index or Unselected.
func (s *Session) SelectedIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Sentence returns the current sentence, which may be nil before the first lookup.
func (s *Session) Sentence() models.Sentence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sentence
}

// Query returns the query that produced the current sentence.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Lookup fetches a new sentence and, on success, loads it.
//
// Starting a lookup cancels any lookup still in flight for this session. A
// response that arrives after a newer lookup has started is discarded and
// ErrSuperseded is returned. Errors never modify the current state.
func (s *Session) Lookup(ctx context.Context, l Looker, query string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	s.cancel = cancel
	s.mu.Unlock()

	sentence, err := l.Lookup(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrSuperseded
	}
	s.cancel = nil
	if err != nil {
		return err
	}
	s.load(query, sentence)
	return nil
}

// Touch records activity for idle expiry.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

// LastSeen returns the time of the last recorded activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
