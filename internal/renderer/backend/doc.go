// Package backend renders the editing session to a terminal with tcell.
//
// The terminal is a stand-in for the editor's real rendering surfaces: it
// draws the buffer, the active cursors and the current match, and mirrors
// the published scroll offset like any other passive layer. Key events are
// classified into the input events the multi-cursor state machine consumes.
package backend
