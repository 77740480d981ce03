package cursor

import (
	"fmt"
	"sync/atomic"
)

// ID identifies a cursor. IDs are opaque to callers.
type ID int64

// Cursor is a caret or selection over a half-open byte range.
// Cursor is an immutable value type.
type Cursor struct {
	ID    ID
	Start int
	End   int
}

// IsCaret reports whether the cursor has no extent.
func (c Cursor) IsCaret() bool {
	return c.Start == c.End
}

// SameRange reports whether two cursors cover an identical [Start, End).
func (c Cursor) SameRange(other Cursor) bool {
	return c.Start == other.Start && c.End == other.End
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.IsCaret() {
		return fmt.Sprintf("Caret#%d(%d)", c.ID, c.Start)
	}
	return fmt.Sprintf("Selection#%d(%d..%d)", c.ID, c.Start, c.End)
}

// Generator issues monotonically increasing cursor IDs.
type Generator struct {
	next atomic.Int64
}

// NewGenerator creates a generator whose first ID is 1.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the next ID.
func (g *Generator) Next() ID {
	return ID(g.next.Add(1))
}
