// Package history manages the undo/redo state of a buffer as a bounded
// stack of content snapshots.
//
// The history holds the snapshot the rest of the system observes (the
// present) plus ordered past and future stacks. Edits committed within a
// short interval of each other collapse into a single undo step, so a burst
// of typing undoes as one unit instead of one keystroke at a time. The very
// first edit after a load is never batched, which guarantees it is always
// undoable back to the initial content.
//
// Undo and redo on empty stacks are defined no-ops, not errors.
package history
