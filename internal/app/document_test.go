package app

import (
	"strings"
	"testing"

	"github.com/inkpot-editor/inkpot/internal/config"
	"github.com/inkpot-editor/inkpot/internal/engine/multicursor"
	"github.com/inkpot-editor/inkpot/internal/event"
	"github.com/inkpot-editor/inkpot/internal/renderer/rsync"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	return NewDocument(config.Default(), nil)
}

func TestOpenNewNameResetsHistory(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "first")
	d.SetContent("first edited")

	d.Open("b.txt", "plaintext", "second")

	if d.Content() != "second" {
		t.Errorf("Content = %q, want second", d.Content())
	}
	if d.Undo() {
		t.Error("Undo succeeded right after opening a new file")
	}
}

func TestOpenSameNameCommitsAsEdit(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "first")
	d.Open("a.txt", "plaintext", "revised")

	if d.Content() != "revised" {
		t.Errorf("Content = %q, want revised", d.Content())
	}
	if !d.Undo() {
		t.Fatal("Undo failed after an in-place reopen")
	}
	if d.Content() != "first" {
		t.Errorf("after undo Content = %q, want first", d.Content())
	}
}

func TestMultiCursorTypingFlow(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "foo bar foo")
	d.SetCaret(0)

	// First Ctrl+D expands the caret to the word under it.
	d.HandleInput(multicursor.InputEvent{Kind: multicursor.EventAddCursor})
	if got := d.Cursors(); len(got) != 1 || got[0].Start != 0 || got[0].End != 3 {
		t.Fatalf("cursors after expand = %v, want [0,3)", got)
	}

	// Second Ctrl+D adds the next occurrence.
	d.HandleInput(multicursor.InputEvent{Kind: multicursor.EventAddCursor})
	if got := d.Cursors(); len(got) != 2 || got[1].Start != 8 || got[1].End != 11 {
		t.Fatalf("cursors after second add = %v, want second [8,11)", got)
	}

	// Typing replaces both selections.
	d.HandleInput(multicursor.InputEvent{Kind: multicursor.EventRune, Rune: 'x'})
	if d.Content() != "x bar x" {
		t.Errorf("Content = %q, want %q", d.Content(), "x bar x")
	}
	got := d.Cursors()
	if len(got) != 2 || got[0].Start != 1 || got[1].Start != 7 {
		t.Errorf("carets = %v, want 1 and 7", got)
	}
	if !got[0].IsCaret() || !got[1].IsCaret() {
		t.Errorf("cursors did not collapse to carets: %v", got)
	}
}

func TestEscapeExitsMultiCursor(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "foo bar foo")
	d.SetCaret(0)
	d.HandleInput(multicursor.InputEvent{Kind: multicursor.EventAddCursor})

	d.HandleInput(multicursor.InputEvent{Kind: multicursor.EventEscape})

	if d.State() != multicursor.StateIdle {
		t.Errorf("state = %v, want idle", d.State())
	}
	if len(d.Cursors()) != 0 {
		t.Errorf("cursors = %v, want empty", d.Cursors())
	}
	if d.Caret() != 0 {
		t.Errorf("caret = %d, want main cursor start 0", d.Caret())
	}
}

func TestIdleInputPassesThrough(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "hello")

	if d.HandleInput(multicursor.InputEvent{Kind: multicursor.EventRune, Rune: 'a'}) {
		t.Error("idle rune event was consumed")
	}
	if d.Content() != "hello" {
		t.Errorf("Content changed to %q", d.Content())
	}
}

func TestUndoRefreshesMatchIndex(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "cat dog cat")
	d.Search("cat")
	if n := len(d.Matches()); n != 2 {
		t.Fatalf("matches = %d, want 2", n)
	}

	d.SetContent("dog dog dog")
	if n := len(d.Matches()); n != 0 {
		t.Fatalf("matches after edit = %d, want 0", n)
	}

	if !d.Undo() {
		t.Fatal("Undo failed")
	}
	if d.Content() != "cat dog cat" {
		t.Fatalf("Content = %q", d.Content())
	}
	// Match state must track the restored content, never the undone one.
	if n := len(d.Matches()); n != 2 {
		t.Errorf("matches after undo = %d, want 2", n)
	}
}

func TestSearchNavigationWraps(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "ab AB ab")
	d.Search("ab")

	if n := len(d.Matches()); n != 3 {
		t.Fatalf("matches = %d, want 3 (case-insensitive)", n)
	}
	m, _ := d.CurrentMatch()
	if m.Start != 0 {
		t.Errorf("current = %v, want start 0", m)
	}

	d.NextMatch()
	d.NextMatch()
	m, ok := d.NextMatch()
	if !ok || m.Start != 0 {
		t.Errorf("after wrap current = %v, want start 0", m)
	}

	m, ok = d.PrevMatch()
	if !ok || m.Start != 6 {
		t.Errorf("Prev wrap = %v, want start 6", m)
	}
}

func TestReplaceCurrentMovesCaret(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "one two one")
	d.Search("one")

	if !d.ReplaceCurrent("three") {
		t.Fatal("ReplaceCurrent failed")
	}
	if d.Content() != "three two one" {
		t.Errorf("Content = %q", d.Content())
	}
	if d.Caret() != len("three") {
		t.Errorf("caret = %d, want %d", d.Caret(), len("three"))
	}
	// The index recomputed against the new content.
	if n := len(d.Matches()); n != 1 {
		t.Errorf("matches = %d, want 1", n)
	}
}

func TestReplaceAll(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "a A a")
	d.Search("a")

	if n := d.ReplaceAll("b"); n != 3 {
		t.Errorf("ReplaceAll = %d, want 3", n)
	}
	if d.Content() != "b b b" {
		t.Errorf("Content = %q", d.Content())
	}
	if d.ReplaceAll("c") != 0 {
		t.Error("ReplaceAll found matches after replacing them all")
	}
}

type recordingSurface struct {
	top, left float64
}

func (s *recordingSurface) SetScroll(top, left float64) {
	s.top, s.left = top, left
}

func TestScrollToMirrorsSurfaces(t *testing.T) {
	d := newTestDocument(t)
	overlay := &recordingSurface{}
	overview := &recordingSurface{}
	d.Mirror().Attach(overlay, rsync.MirrorBoth)
	d.Mirror().Attach(overview, rsync.MirrorVertical)

	d.ScrollTo(120, 35)

	if overlay.top != 120 || overlay.left != 35 {
		t.Errorf("overlay = (%v, %v), want (120, 35)", overlay.top, overlay.left)
	}
	if overview.top != 120 || overview.left != 0 {
		t.Errorf("overview = (%v, %v), want (120, 0)", overview.top, overview.left)
	}
}

func TestJumpToLineCentersViewport(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "line1\nline2\nline3")
	d.SetViewHeight(100)

	offset := d.JumpToLine(3)

	if offset != 12 {
		t.Errorf("offset = %d, want 12", offset)
	}
	lh := float64(d.Metrics().LineHeight)
	want := 2*lh - (100-lh)/2
	if got := d.Mirror().Current().Top; got != want {
		t.Errorf("scroll top = %v, want %v", got, want)
	}
}

func TestJumpToLineClamps(t *testing.T) {
	d := newTestDocument(t)
	d.Open("a.txt", "plaintext", "line1\nline2")
	d.SetViewHeight(400)

	if offset := d.JumpToLine(99); offset != 6 {
		t.Errorf("offset = %d, want start of last line 6", offset)
	}
	// A target above the document start clamps to zero.
	if got := d.Mirror().Current().Top; got != 0 {
		t.Errorf("scroll top = %v, want 0", got)
	}
	if offset := d.JumpToLine(-4); offset != 0 {
		t.Errorf("offset = %d, want 0", offset)
	}
}

func TestOpenRendersMarkupInline(t *testing.T) {
	d := newTestDocument(t)
	d.Open("main.go", "go", "package main\n")

	markup := d.Markup()
	if markup == "" {
		t.Fatal("no markup after inline render")
	}
	if !strings.Contains(markup, "package") {
		t.Errorf("markup missing source text: %q", markup)
	}
}

func TestCommitPublishesContent(t *testing.T) {
	d := newTestDocument(t)
	var got []string
	d.Bus().Subscribe(event.TopicContentCommitted, func(p any) {
		got = append(got, p.(string))
	})

	d.Open("a.txt", "plaintext", "seed")
	d.SetContent("edited")

	if len(got) != 1 || got[0] != "edited" {
		t.Errorf("committed payloads = %v, want [edited]", got)
	}
}
