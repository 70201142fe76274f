package entities

import "errors"

var ErrExploreExhausted = errors.New("no words left to explore")

// ExploreSession walks the user through catalog words that are neither in
// the collection nor hidden. The candidate list is computed once when the
// session starts and only shrinks afterwards.
type ExploreSession struct {
	ID         string  // presentation-only id used to detect stale buttons
	candidates []Entry // remaining candidates in catalog order
	cursor     int     // index of the presented candidate
	exhausted  bool    // terminal state, nothing more to present
}

// NewExploreSession creates a session over the given candidates.
// A session without candidates starts exhausted.
func NewExploreSession(id string, candidates []Entry) *ExploreSession {
	return &ExploreSession{
		ID:         id,
		candidates: candidates,
		exhausted:  len(candidates) == 0,
	}
}

// Current returns the presented candidate.
func (s *ExploreSession) Current() (Entry, bool) {
	if s.exhausted {
		return Entry{}, false
	}
	return s.candidates[s.cursor], true
}

// Exhausted reports whether the session has nothing more to present.
func (s *ExploreSession) Exhausted() bool { return s.exhausted }

// Position returns the zero-based cursor and the number of remaining candidates.
func (s *ExploreSession) Position() (int, int) { return s.cursor, len(s.candidates) }

// Candidates returns a copy of the remaining candidates.
func (s *ExploreSession) Candidates() []Entry {
	return append([]Entry(nil), s.candidates...)
}

// Skip moves to the next candidate. Skipping the last one exhausts the
// session; the cursor never wraps around.
func (s *ExploreSession) Skip() {
	if s.exhausted {
		return
	}
	if s.cursor < len(s.candidates)-1 {
		s.cursor++
		return
	}
	s.exhausted = true
}

// Take removes the presented candidate and returns it. The cursor stays in
// place so the next candidate slides under it, clamped to the new last
// index. Taking the only remaining candidate exhausts the session.
func (s *ExploreSession) Take() (Entry, error) {
	e, ok := s.Current()
	if !ok {
		return Entry{}, ErrExploreExhausted
	}

	s.candidates = append(s.candidates[:s.cursor], s.candidates[s.cursor+1:]...)

	switch {
	case len(s.candidates) == 0:
		s.cursor = 0
		s.exhausted = true
	case s.cursor >= len(s.candidates):
		s.cursor = len(s.candidates) - 1
	}

	return e, nil
}
