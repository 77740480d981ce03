// Package multicursor applies a single edit operation simultaneously at
// every cursor in a set.
//
// Edits are applied in one left-to-right pass over the source content:
// cursors are sorted by start offset, and the output is accumulated while a
// source index advances past each cursor. Each cursor's new caret is the
// length of the constructed output at the moment its edit lands, which is
// the only way to keep positions correct once earlier cursors have grown or
// shrunk the text. Every cursor collapses to a caret after an edit.
//
// The package also owns the Idle/Active input state machine: while the
// cursor set is non-empty, printable keys, Enter, Backspace and Delete are
// routed through ApplyEdit; navigation keys, Escape and pointer clicks
// collapse back to the idle single-caret path and clear the set.
package multicursor
