// Package highlight generates syntax-highlight markup for buffer content.
//
// Requests carry a monotonically increasing identifier. Content above a
// size threshold is rendered on a worker goroutine; smaller content is
// rendered inline on the calling thread. Either way, a result is delivered
// only when its identifier still matches the most recently issued request;
// superseded results are silently discarded. That discard is the entire
// cancellation mechanism — in-flight work is never aborted, and no edit
// ever waits on a highlight result.
//
// A render failure degrades to displaying raw content; it is reported via
// the result's Err field and never blocks or reverts an edit.
package highlight
