// Package cursor provides the cursor model for multi-point editing.
//
// A Cursor is a caret or selection identified by an opaque ID and a
// half-open [Start, End) byte range into the buffer. Start == End denotes
// a caret. Reversed ranges (Start > End) are treated as undefined input
// and are neither validated nor normalized here.
//
// IDs come from a deterministic monotonic generator so that multi-cursor
// sequences are reproducible in tests.
package cursor
