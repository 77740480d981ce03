package buffer

import (
	"sort"
	"strings"
	"sync"
)

// Point is a zero-based line/column position. Column counts bytes from the
// start of the line.
type Point struct {
	Line   int
	Column int
}

// Snapshot is an immutable copy of buffer content at one point in time.
// The zero value is not usable; create snapshots with New.
type Snapshot struct {
	text string

	once       sync.Once
	lineStarts []int
}

// New creates a snapshot of the given content.
func New(text string) *Snapshot {
	return &Snapshot{text: text}
}

// Text returns the full content.
func (s *Snapshot) Text() string {
	return s.text
}

// Len returns the content length in bytes.
func (s *Snapshot) Len() int {
	return len(s.text)
}

// Equal reports whether two snapshots hold identical content.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if other == nil {
		return false
	}
	return s.text == other.text
}

// index returns the byte offsets at which each line starts. Line 0 starts
// at offset 0; every subsequent entry is the offset just after a newline.
func (s *Snapshot) index() []int {
	s.once.Do(func() {
		starts := make([]int, 1, strings.Count(s.text, "\n")+1)
		starts[0] = 0
		for i := 0; i < len(s.text); i++ {
			if s.text[i] == '\n' {
				starts = append(starts, i+1)
			}
		}
		s.lineStarts = starts
	})
	return s.lineStarts
}

// LineCount returns the number of lines. Empty content has one line.
func (s *Snapshot) LineCount() int {
	return len(s.index())
}

// LineStart returns the byte offset of the start of the given line.
// Out-of-range lines are clamped.
func (s *Snapshot) LineStart(line int) int {
	starts := s.index()
	if line < 0 {
		return 0
	}
	if line >= len(starts) {
		return len(s.text)
	}
	return starts[line]
}

// LineEnd returns the byte offset of the end of the given line, before its
// trailing newline if any.
func (s *Snapshot) LineEnd(line int) int {
	starts := s.index()
	if line < 0 {
		return 0
	}
	if line+1 < len(starts) {
		return starts[line+1] - 1
	}
	return len(s.text)
}

// LineText returns the text of the given line without its newline.
func (s *Snapshot) LineText(line int) string {
	return s.text[s.LineStart(line):s.LineEnd(line)]
}

// Lines returns the text of lines [from, to) without trailing newlines.
// The range is clamped to the snapshot.
func (s *Snapshot) Lines(from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > s.LineCount() {
		to = s.LineCount()
	}
	if to <= from {
		return nil
	}
	out := make([]string, 0, to-from)
	for line := from; line < to; line++ {
		out = append(out, s.LineText(line))
	}
	return out
}

// ClampOffset clamps an offset into [0, Len].
func (s *Snapshot) ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(s.text) {
		return len(s.text)
	}
	return offset
}

// OffsetToPoint converts a byte offset to a line/column point. The offset
// is clamped to the snapshot.
func (s *Snapshot) OffsetToPoint(offset int) Point {
	offset = s.ClampOffset(offset)
	starts := s.index()
	// First line start greater than offset; the line is the one before it.
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	return Point{Line: line, Column: offset - starts[line]}
}

// PointToOffset converts a line/column point to a byte offset. The line is
// clamped to the snapshot and the column to the line.
func (s *Snapshot) PointToOffset(p Point) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= s.LineCount() {
		return len(s.text)
	}
	start := s.LineStart(p.Line)
	end := s.LineEnd(p.Line)
	offset := start + p.Column
	if offset < start {
		return start
	}
	if offset > end {
		return end
	}
	return offset
}
