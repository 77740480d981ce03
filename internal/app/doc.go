// Package app coordinates the editing core.
//
// A Document is one editing session: it owns the history, cursor set,
// match index, layout metrics, scroll mirror and highlight service for a
// single buffer, and routes every input through a single commit path so
// the derived state (matches, markup, scroll) can never drift from the
// content.
package app
