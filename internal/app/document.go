package app

import (
	"sync"

	"github.com/inkpot-editor/inkpot/internal/config"
	"github.com/inkpot-editor/inkpot/internal/engine/buffer"
	"github.com/inkpot-editor/inkpot/internal/engine/cursor"
	"github.com/inkpot-editor/inkpot/internal/engine/history"
	"github.com/inkpot-editor/inkpot/internal/engine/multicursor"
	"github.com/inkpot-editor/inkpot/internal/engine/search"
	"github.com/inkpot-editor/inkpot/internal/event"
	"github.com/inkpot-editor/inkpot/internal/renderer/highlight"
	"github.com/inkpot-editor/inkpot/internal/renderer/layout"
	"github.com/inkpot-editor/inkpot/internal/renderer/rsync"
)

// Document is one editing session over a single buffer. All mutating
// methods are expected to run on the editing goroutine; highlight results
// arrive asynchronously and are the only cross-goroutine writes.
type Document struct {
	log *Logger
	bus *event.Bus

	name     string
	language string

	history *history.History
	cursors *cursor.Set
	mcState multicursor.State
	caret   int

	index   *search.Index
	metrics layout.Metrics
	mirror  *rsync.Mirror
	hl      *highlight.Service

	viewHeight float64

	markupMu sync.Mutex
	markup   string
}

// NewDocument creates an empty session configured by cfg. A nil logger
// discards all log output.
func NewDocument(cfg config.Config, log *Logger) *Document {
	d := &Document{
		log:     log,
		bus:     event.NewBus(),
		history: history.New(nil, history.WithMaxEntries(cfg.HistoryLimit), history.WithBatchWindow(cfg.BatchWindow())),
		cursors: cursor.NewSet(nil),
		index:   search.NewIndex(),
		metrics: layout.NewMetrics(cfg.FontSize, cfg.TabWidth),
		mirror:  rsync.NewMirror(),
	}
	d.hl = highlight.NewService(highlight.NewChromaRenderer(cfg.Theme), cfg.HighlightThreshold, d.onMarkup)
	return d
}

// Bus returns the session's event bus.
func (d *Document) Bus() *event.Bus { return d.bus }

// Metrics returns the shared layout constants.
func (d *Document) Metrics() layout.Metrics { return d.metrics }

// Mirror returns the scroll mirror passive surfaces attach to.
func (d *Document) Mirror() *rsync.Mirror { return d.mirror }

// Open loads content into the session. A new name is a new editing target:
// history and cursors reset and the content becomes the baseline with
// nothing to undo. Reopening the current name commits the content as an
// ordinary edit.
func (d *Document) Open(name, language, content string) {
	d.language = language
	if name != d.name {
		d.name = name
		d.history.Reset(buffer.New(content))
		d.cursors.Clear()
		d.mcState = multicursor.StateIdle
		d.caret = 0
		d.refresh()
		if d.log != nil {
			d.log.Infof("opened %s (%d bytes)", name, len(content))
		}
		return
	}
	d.commit(content)
}

// Name returns the session's file name.
func (d *Document) Name() string { return d.name }

// Content returns the present buffer content.
func (d *Document) Content() string {
	return d.history.Present().Text()
}

// Snapshot returns the present buffer snapshot.
func (d *Document) Snapshot() *buffer.Snapshot {
	return d.history.Present()
}

// commit records content as the new present and refreshes derived state.
func (d *Document) commit(content string) {
	d.history.Set(buffer.New(content))
	d.refresh()
	d.bus.Publish(event.TopicContentCommitted, content)
}

// refresh recomputes derived state against the present content.
func (d *Document) refresh() {
	content := d.Content()
	if d.index.Query() != "" {
		d.index.Update(content, d.index.Query())
		d.bus.Publish(event.TopicMatchesChanged, d.index.Count())
	}
	d.hl.Request(content, d.language)
}

// SetContent commits content as an edit, as when the native editing surface
// reports a change.
func (d *Document) SetContent(content string) {
	d.commit(content)
}

// HandleInput routes a classified input event. It returns true when the
// event was consumed by the multi-cursor layer; false means the native
// single-caret path should handle it.
func (d *Document) HandleInput(ev multicursor.InputEvent) bool {
	next, action := multicursor.Transition(d.mcState, ev)
	d.mcState = next

	switch action {
	case multicursor.ActionNone:
		return false

	case multicursor.ActionInsert:
		d.applyAtCursors(multicursor.OpInsert, ev.Text())
	case multicursor.ActionDelete:
		d.applyAtCursors(multicursor.OpDelete, "")
	case multicursor.ActionDeleteForward:
		d.applyAtCursors(multicursor.OpDeleteForward, "")

	case multicursor.ActionAddOccurrence:
		if d.cursors.Empty() {
			d.cursors.Add(d.caret, d.caret)
		}
		if !multicursor.AddNextOccurrence(d.Content(), d.cursors) && d.log != nil {
			d.log.Debugf("add occurrence: no new match")
		}

	case multicursor.ActionExit:
		if main, ok := d.cursors.Main(); ok {
			d.caret = main.Start
		}
		d.cursors.Clear()
	}
	return true
}

// applyAtCursors runs one edit operation at every cursor and commits.
func (d *Document) applyAtCursors(op multicursor.Op, text string) {
	content, updated := multicursor.ApplyEdit(d.Content(), d.cursors.All(), op, text)
	d.cursors.Replace(updated)
	if main, ok := d.cursors.Main(); ok {
		d.caret = main.Start
	}
	d.commit(content)
}

// State returns the multi-cursor routing state.
func (d *Document) State() multicursor.State { return d.mcState }

// Cursors returns the active cursors in insertion order.
func (d *Document) Cursors() []cursor.Cursor { return d.cursors.All() }

// Caret returns the native caret offset.
func (d *Document) Caret() int { return d.caret }

// SetCaret moves the native caret, clamped to the content.
func (d *Document) SetCaret(offset int) {
	d.caret = d.Snapshot().ClampOffset(offset)
}

// Undo steps the history back. Derived state refreshes against the
// restored content.
func (d *Document) Undo() bool {
	if !d.history.Undo() {
		return false
	}
	d.caret = d.Snapshot().ClampOffset(d.caret)
	d.refresh()
	d.bus.Publish(event.TopicContentCommitted, d.Content())
	return true
}

// Redo steps the history forward.
func (d *Document) Redo() bool {
	if !d.history.Redo() {
		return false
	}
	d.caret = d.Snapshot().ClampOffset(d.caret)
	d.refresh()
	d.bus.Publish(event.TopicContentCommitted, d.Content())
	return true
}

// Search recomputes the match index for query.
func (d *Document) Search(query string) {
	d.index.Update(d.Content(), query)
	d.bus.Publish(event.TopicMatchesChanged, d.index.Count())
}

// Matches returns the current match list.
func (d *Document) Matches() []search.Match { return d.index.Matches() }

// CurrentMatch returns the current match, if any.
func (d *Document) CurrentMatch() (search.Match, bool) { return d.index.CurrentMatch() }

// CurrentMatchIndex returns the current match's position in the match
// list, or -1 when there are no matches.
func (d *Document) CurrentMatchIndex() int { return d.index.Current() }

// NextMatch advances the current match and returns it.
func (d *Document) NextMatch() (search.Match, bool) {
	d.index.Next()
	return d.index.CurrentMatch()
}

// PrevMatch steps the current match back and returns it.
func (d *Document) PrevMatch() (search.Match, bool) {
	d.index.Prev()
	return d.index.CurrentMatch()
}

// ReplaceCurrent substitutes replacement over the current match, placing
// the caret after the inserted text. Returns false when there is no match.
func (d *Document) ReplaceCurrent(replacement string) bool {
	content, caret, ok := d.index.ReplaceCurrent(d.Content(), replacement)
	if !ok {
		return false
	}
	d.caret = caret
	d.commit(content)
	return true
}

// ReplaceAll substitutes every match and returns the replacement count.
func (d *Document) ReplaceAll(replacement string) int {
	content, n := d.index.ReplaceAll(d.Content(), replacement)
	if n == 0 {
		return 0
	}
	d.commit(content)
	return n
}

// SetViewHeight records the viewport height in pixels, used to center
// jump targets.
func (d *Document) SetViewHeight(h float64) {
	d.viewHeight = h
}

// ScrollTo publishes the authoritative scroll offset to every attached
// surface.
func (d *Document) ScrollTo(top, left float64) {
	off := rsync.Offset{Top: top, Left: left}
	d.mirror.Publish(off)
	d.bus.Publish(event.TopicScroll, off)
}

// JumpToLine moves the caret to the start of the 1-based line and scrolls
// so the line is vertically centered in the viewport. Out-of-range lines
// clamp to the buffer. Returns the caret offset.
func (d *Document) JumpToLine(line int) int {
	snap := d.Snapshot()
	if line < 1 {
		line = 1
	}
	if line > snap.LineCount() {
		line = snap.LineCount()
	}
	row := line - 1
	d.caret = snap.LineStart(row)

	top := float64(row*d.metrics.LineHeight) - (d.viewHeight-float64(d.metrics.LineHeight))/2
	if top < 0 {
		top = 0
	}
	d.ScrollTo(top, d.mirror.Current().Left)
	return d.caret
}

// Markup returns the most recent non-stale highlight markup.
func (d *Document) Markup() string {
	d.markupMu.Lock()
	defer d.markupMu.Unlock()
	return d.markup
}

// onMarkup receives highlight results; the service has already discarded
// stale ones.
func (d *Document) onMarkup(res highlight.Result) {
	if res.Err != nil {
		if d.log != nil {
			d.log.Errorf("highlight: %v", res.Err)
		}
		return
	}
	d.markupMu.Lock()
	d.markup = res.Markup
	d.markupMu.Unlock()
	d.bus.Publish(event.TopicMarkupReady, res.ID)
}
