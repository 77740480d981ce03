package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/inkpot-editor/inkpot/internal/engine/buffer"
	"github.com/inkpot-editor/inkpot/internal/engine/cursor"
	"github.com/inkpot-editor/inkpot/internal/engine/search"
)

// Terminal draws the session to a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	// scrollRow is the first visible buffer row, mirrored from the
	// authoritative scroll offset.
	scrollRow int
}

// NewTerminal creates an uninitialized terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// SetScrollPixels mirrors a published pixel offset onto the terminal,
// which scrolls by whole rows. lineHeight converts pixels to rows.
func (t *Terminal) SetScrollPixels(top float64, lineHeight int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if lineHeight <= 0 {
		return
	}
	t.scrollRow = int(top) / lineHeight
}

// ScrollSurface adapts a Terminal to the scroll mirror's surface
// interface, converting pixel offsets to rows.
type ScrollSurface struct {
	Term       *Terminal
	LineHeight int
}

// SetScroll receives the mirrored pixel offset. The terminal ignores the
// horizontal axis.
func (s ScrollSurface) SetScroll(top, left float64) {
	s.Term.SetScrollPixels(top, s.LineHeight)
}

// ScrollRow returns the first visible buffer row.
func (t *Terminal) ScrollRow() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrollRow
}

// Draw renders the visible slice of the snapshot with cursors and matches
// marked, then flushes the screen.
func (t *Terminal) Draw(snap *buffer.Snapshot, cursors []cursor.Cursor, matches []search.Match, current int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	width, height := t.screen.Size()

	base := tcell.StyleDefault
	cursorStyle := base.Reverse(true)
	matchStyle := base.Underline(true)
	currentStyle := base.Underline(true).Bold(true)

	for row := 0; row < height; row++ {
		line := t.scrollRow + row
		if line >= snap.LineCount() {
			break
		}
		lineStart := snap.LineStart(line)
		text := snap.LineText(line)

		x := 0
		for i, r := range text {
			if x >= width {
				break
			}
			offset := lineStart + i
			style := base
			switch {
			case offsetInCursors(offset, cursors):
				style = cursorStyle
			case matchAt(offset, matches) == current && current >= 0:
				style = currentStyle
			case matchAt(offset, matches) >= 0:
				style = matchStyle
			}
			t.screen.SetContent(x, row, r, nil, style)
			x += runewidth.RuneWidth(r)
		}

		// A caret at end of line renders on the cell past the text.
		if x < width && offsetInCursors(lineStart+len(text), cursors) {
			t.screen.SetContent(x, row, ' ', nil, cursorStyle)
		}
	}

	t.screen.Show()
}

// PollEvent blocks for the next terminal event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func offsetInCursors(offset int, cursors []cursor.Cursor) bool {
	for _, c := range cursors {
		if c.IsCaret() {
			if offset == c.Start {
				return true
			}
			continue
		}
		if offset >= c.Start && offset < c.End {
			return true
		}
	}
	return false
}

// matchAt returns the index of the match covering offset, or -1.
func matchAt(offset int, matches []search.Match) int {
	for i, m := range matches {
		if offset >= m.Start && offset < m.End {
			return i
		}
	}
	return -1
}
