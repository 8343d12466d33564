// Package answers holds the question-id to numeric-answer bindings of one
// assessment attempt.
package answers

import (
	"fmt"
	"maps"

	"github.com/abhisek/triage/internal/catalog"
)

// RangeError reports an answer value outside its question's valid domain.
// Values are never clamped.
type RangeError struct {
	QuestionID string
	Value      int
	Min, Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("answer %q: value %d outside %d..%d", e.QuestionID, e.Value, e.Min, e.Max)
}

// Invert maps a scale value onto the opposite end of the 1..10 scale.
func Invert(v int) int {
	return catalog.ScaleMin + catalog.ScaleMax - v
}

// Store maps question IDs to stored answers. A missing entry means the
// question is unanswered, never zero. The zero value is an empty Store ready
// to use. A Store is owned by a single caller and is not safe for concurrent
// use.
type Store struct {
	values map[string]int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]int)}
}

// SetScale stores a 1..10 answer, inverting it first when inverted is set.
func (s *Store) SetScale(id string, raw int, inverted bool) error {
	if raw < catalog.ScaleMin || raw > catalog.ScaleMax {
		return &RangeError{QuestionID: id, Value: raw, Min: catalog.ScaleMin, Max: catalog.ScaleMax}
	}
	if inverted {
		raw = Invert(raw)
	}
	s.put(id, raw)
	return nil
}

func (s *Store) put(id string, v int) {
	if s.values == nil {
		s.values = make(map[string]int)
	}
	s.values[id] = v
}

// SetBoolean stores 1 for true and 0 for false.
func (s *Store) SetBoolean(id string, v bool) {
	if v {
		s.put(id, 1)
		return
	}
	s.put(id, 0)
}

// Set stores raw for q according to its kind. Boolean questions accept only
// 0 and 1.
func (s *Store) Set(q catalog.Question, raw int) error {
	switch q.Kind {
	case catalog.KindBoolean:
		if raw != 0 && raw != 1 {
			return &RangeError{QuestionID: q.ID, Value: raw, Min: 0, Max: 1}
		}
		s.SetBoolean(q.ID, raw == 1)
		return nil
	case catalog.KindScale:
		return s.SetScale(q.ID, raw, q.Inverted)
	default:
		return fmt.Errorf("answer %q: unknown question kind %q", q.ID, q.Kind)
	}
}

// Get returns the stored value for id and whether it has been answered.
func (s *Store) Get(id string) (int, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Value returns the stored value for id, or 0 when unanswered.
func (s *Store) Value(id string) int {
	return s.values[id]
}

// IsComplete reports whether every question in qs has an entry.
// An empty list is trivially complete.
func (s *Store) IsComplete(qs []catalog.Question) bool {
	for _, q := range qs {
		if _, ok := s.values[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of answered questions.
func (s *Store) Len() int {
	return len(s.values)
}

// Snapshot returns a copy of the stored answers. It is never nil.
func (s *Store) Snapshot() map[string]int {
	if s.values == nil {
		return map[string]int{}
	}
	return maps.Clone(s.values)
}

// Reset removes every answer.
func (s *Store) Reset() {
	clear(s.values)
}
