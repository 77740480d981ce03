package search

import "testing"

func TestUpdateFindsAllMatches(t *testing.T) {
	ix := NewIndex()
	ix.Update("foo bar foo baz FOO", "foo")

	want := []Match{{0, 3}, {8, 11}, {16, 19}}
	got := ix.Matches()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if ix.Current() != 0 {
		t.Errorf("Current() = %d, want 0", ix.Current())
	}
}

func TestUpdateEscapesMetacharacters(t *testing.T) {
	ix := NewIndex()
	ix.Update("a.c abc a.c", "a.c")

	// The dot must match only a literal dot, never "any character".
	want := []Match{{0, 3}, {8, 11}}
	got := ix.Matches()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("matches = %v, want %v", got, want)
	}
}

func TestUpdateNonOverlapping(t *testing.T) {
	ix := NewIndex()
	ix.Update("aaaa", "aa")

	got := ix.Matches()
	if len(got) != 2 || got[0] != (Match{0, 2}) || got[1] != (Match{2, 4}) {
		t.Errorf("matches = %v, want [{0 2} {2 4}]", got)
	}
}

func TestUpdateEmptyQueryClears(t *testing.T) {
	ix := NewIndex()
	ix.Update("abc", "b")
	ix.Update("abc", "")

	if ix.Count() != 0 || ix.Current() != -1 {
		t.Errorf("empty query: count = %d current = %d, want 0 and -1", ix.Count(), ix.Current())
	}
}

func TestCurrentIndexClamping(t *testing.T) {
	ix := NewIndex()
	ix.Update("x x x", "x")
	ix.Next()
	ix.Next()
	if ix.Current() != 2 {
		t.Fatalf("Current() = %d, want 2", ix.Current())
	}

	// Recompute against content with fewer matches: out-of-bounds resets to 0.
	ix.Update("x x", "x")
	if ix.Current() != 0 {
		t.Errorf("Current() after shrink = %d, want 0", ix.Current())
	}

	// Still in bounds: kept.
	ix.Next()
	ix.Update("x x", "x")
	if ix.Current() != 1 {
		t.Errorf("Current() after stable recompute = %d, want 1", ix.Current())
	}

	// No matches at all: -1.
	ix.Update("y y", "x")
	if ix.Current() != -1 {
		t.Errorf("Current() with no matches = %d, want -1", ix.Current())
	}
}

func TestCurrentInvariantAfterMutations(t *testing.T) {
	// After any recomputation: current == -1 iff no matches, else within
	// [0, count).
	contents := []string{"foo foo foo", "foo", "", "bar", "FOO foo"}
	ix := NewIndex()
	for _, content := range contents {
		ix.Update(content, "foo")
		if ix.Count() == 0 {
			if ix.Current() != -1 {
				t.Errorf("content %q: current = %d, want -1", content, ix.Current())
			}
		} else if ix.Current() < 0 || ix.Current() >= ix.Count() {
			t.Errorf("content %q: current = %d out of [0,%d)", content, ix.Current(), ix.Count())
		}
	}
}

func TestNextPrevWrap(t *testing.T) {
	ix := NewIndex()
	ix.Update("a a a", "a")

	ix.Next()
	ix.Next()
	ix.Next() // wraps
	if ix.Current() != 0 {
		t.Errorf("Next wrap: current = %d, want 0", ix.Current())
	}

	ix.Prev() // wraps backward
	if ix.Current() != 2 {
		t.Errorf("Prev wrap: current = %d, want 2", ix.Current())
	}
}

func TestNextPrevNoMatches(t *testing.T) {
	ix := NewIndex()
	ix.Update("abc", "z")
	ix.Next()
	ix.Prev()
	if ix.Current() != -1 {
		t.Errorf("current = %d, want -1", ix.Current())
	}
}

func TestReplaceCurrent(t *testing.T) {
	ix := NewIndex()
	ix.Update("foo bar foo", "foo")
	ix.Next() // second match

	content, caret, ok := ix.ReplaceCurrent("foo bar foo", "quux")
	if !ok {
		t.Fatal("ReplaceCurrent() = false, want true")
	}
	if content != "foo bar quux" {
		t.Errorf("content = %q, want %q", content, "foo bar quux")
	}
	if caret != 12 {
		t.Errorf("caret = %d, want 12 (just after the replacement)", caret)
	}
}

func TestReplaceCurrentNoMatch(t *testing.T) {
	ix := NewIndex()
	ix.Update("abc", "z")
	content, _, ok := ix.ReplaceCurrent("abc", "y")
	if ok || content != "abc" {
		t.Errorf("ReplaceCurrent with no match should be a no-op, got %q %v", content, ok)
	}
}

func TestReplaceAll(t *testing.T) {
	ix := NewIndex()
	ix.Update("Foo bar foo", "foo")

	content, n := ix.ReplaceAll("Foo bar foo", "x.y")
	if content != "x.y bar x.y" {
		t.Errorf("content = %q, want %q", content, "x.y bar x.y")
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestReplaceAllLiteralReplacement(t *testing.T) {
	// $ in the replacement must be literal, not a capture reference.
	ix := NewIndex()
	ix.Update("cost", "cost")
	content, _ := ix.ReplaceAll("cost", "$1")
	if content != "$1" {
		t.Errorf("content = %q, want %q", content, "$1")
	}
}
