package history

import (
	"sync"
	"time"

	"github.com/inkpot-editor/inkpot/internal/engine/buffer"
)

const (
	// DefaultBatchWindow is the interval within which consecutive Set calls
	// collapse into a single undo step.
	DefaultBatchWindow = 1000 * time.Millisecond

	// DefaultMaxEntries bounds the past stack.
	DefaultMaxEntries = 100
)

// Option configures a History.
type Option func(*History)

// WithMaxEntries bounds the past stack to n entries. Values below 1 keep
// the default.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.maxEntries = n
		}
	}
}

// WithBatchWindow sets the batching interval.
func WithBatchWindow(d time.Duration) Option {
	return func(h *History) {
		h.batchWindow = d
	}
}

// WithClock injects the time source used for batching decisions.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		h.now = now
	}
}

// History holds the present snapshot and bounded past/future stacks.
// All methods are safe for concurrent use, though in practice every
// mutation happens on the editing thread.
type History struct {
	mu sync.Mutex

	past    []*buffer.Snapshot
	present *buffer.Snapshot
	future  []*buffer.Snapshot

	maxEntries  int
	batchWindow time.Duration
	now         func() time.Time
	lastSet     time.Time
}

// New creates a history whose present is the given snapshot.
func New(initial *buffer.Snapshot, opts ...Option) *History {
	if initial == nil {
		initial = buffer.New("")
	}
	h := &History{
		present:     initial,
		maxEntries:  DefaultMaxEntries,
		batchWindow: DefaultBatchWindow,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Present returns the snapshot the rest of the system observes.
func (h *History) Present() *buffer.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.present
}

// Set commits a new snapshot. Identical content is a no-op. When the call
// arrives within the batch window of the previous Set and the past stack is
// non-empty, the present is replaced in place so the two edits undo as one
// step; otherwise the old present is pushed onto the past. Either way the
// future stack is cleared.
func (h *History) Set(s *buffer.Snapshot) {
	if s == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if s.Equal(h.present) {
		return
	}

	now := h.now()
	batch := !h.lastSet.IsZero() &&
		now.Sub(h.lastSet) < h.batchWindow &&
		len(h.past) > 0
	h.lastSet = now

	if !batch {
		h.past = append(h.past, h.present)
		if len(h.past) > h.maxEntries {
			excess := len(h.past) - h.maxEntries
			h.past = h.past[excess:]
		}
	}
	h.present = s
	h.future = nil
}

// Undo moves the present back one step. Returns false if there is nothing
// to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return false
	}

	last := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]*buffer.Snapshot{h.present}, h.future...)
	h.present = last
	return true
}

// Redo moves the present forward one step. Returns false if there is
// nothing to redo.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return false
	}

	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
	return true
}

// Reset replaces the present and clears both stacks. Used when the editing
// target changes identity, not just content.
func (h *History) Reset(s *buffer.Snapshot) {
	if s == nil {
		s = buffer.New("")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = nil
	h.future = nil
	h.present = s
	h.lastSet = time.Time{}
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past) > 0
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future)
}
