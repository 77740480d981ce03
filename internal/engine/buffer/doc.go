// Package buffer provides the immutable content snapshot that the rest of
// the editing core operates on.
//
// A Snapshot is a full copy of buffer content at one point in time. Because
// snapshots never change after construction, they can be shared freely
// between the editing thread, the highlight worker, and any number of
// rendering layers without locking.
//
// Snapshots index line starts lazily: the first call that needs line
// geometry performs a single scan (the same offsets-of-line-starts scheme
// used for windowed reads of large files), and every later lookup is O(1)
// or a binary search over the index.
//
// Offsets are byte offsets into the content. Line and column coordinates
// are zero-based; columns count bytes, not visual cells (see the
// renderer/layout package for visual-column mapping).
package buffer
