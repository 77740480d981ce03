package cursor

import "sort"

// Set is an ordered collection of cursors. Order is insertion order; the
// most recently added cursor is the main cursor. The set is empty at buffer
// load and cleared whenever multi-cursor mode exits.
type Set struct {
	gen     *Generator
	cursors []Cursor
}

// NewSet creates an empty set drawing IDs from gen. A nil gen gets a fresh
// generator.
func NewSet(gen *Generator) *Set {
	if gen == nil {
		gen = NewGenerator()
	}
	return &Set{gen: gen}
}

// Add appends a cursor over [start, end) and returns it.
func (s *Set) Add(start, end int) Cursor {
	c := Cursor{ID: s.gen.Next(), Start: start, End: end}
	s.cursors = append(s.cursors, c)
	return c
}

// All returns a copy of the cursors in insertion order.
func (s *Set) All() []Cursor {
	out := make([]Cursor, len(s.cursors))
	copy(out, s.cursors)
	return out
}

// Count returns the number of cursors.
func (s *Set) Count() int {
	return len(s.cursors)
}

// Empty reports whether the set has no cursors.
func (s *Set) Empty() bool {
	return len(s.cursors) == 0
}

// Main returns the most recently added cursor.
func (s *Set) Main() (Cursor, bool) {
	if len(s.cursors) == 0 {
		return Cursor{}, false
	}
	return s.cursors[len(s.cursors)-1], true
}

// SetMain replaces the main cursor's range in place, keeping its ID.
func (s *Set) SetMain(start, end int) bool {
	if len(s.cursors) == 0 {
		return false
	}
	c := &s.cursors[len(s.cursors)-1]
	c.Start = start
	c.End = end
	return true
}

// Covers reports whether any cursor already spans exactly [start, end).
func (s *Set) Covers(start, end int) bool {
	probe := Cursor{Start: start, End: end}
	for _, c := range s.cursors {
		if c.SameRange(probe) {
			return true
		}
	}
	return false
}

// Replace swaps in a new cursor slice, preserving the given order. Used
// after an edit collapses every cursor to its new caret.
func (s *Set) Replace(cursors []Cursor) {
	s.cursors = make([]Cursor, len(cursors))
	copy(s.cursors, cursors)
}

// Clear removes every cursor. The set returns to the idle, empty state.
func (s *Set) Clear() {
	s.cursors = nil
}

// SortedByStart returns a copy of the cursors ordered by Start ascending.
// Insertion order breaks ties so the result is stable.
func (s *Set) SortedByStart() []Cursor {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
