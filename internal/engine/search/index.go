package search

import "regexp"

// Match is a located occurrence of the query as a half-open byte range.
type Match struct {
	Start int
	End   int
}

// Index is the match set for one query over one content snapshot, plus the
// current-match pointer. The zero value is not usable; create with NewIndex.
type Index struct {
	query   string
	matches []Match
	current int
}

// NewIndex creates an empty index with no current match.
func NewIndex() *Index {
	return &Index{current: -1}
}

// compile turns a literal query into a case-insensitive matcher.
func compile(query string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(query))
}

// Update recomputes the match set for content and query. The current index
// is kept when it is still within bounds, otherwise it resets to 0 when
// matches exist and -1 when none do. An empty query clears all match state.
func (ix *Index) Update(content, query string) {
	ix.query = query

	if query == "" {
		ix.matches = nil
		ix.current = -1
		return
	}

	locs := compile(query).FindAllStringIndex(content, -1)
	ix.matches = make([]Match, len(locs))
	for i, loc := range locs {
		ix.matches[i] = Match{Start: loc[0], End: loc[1]}
	}

	switch {
	case len(ix.matches) == 0:
		ix.current = -1
	case ix.current < 0 || ix.current >= len(ix.matches):
		ix.current = 0
	}
}

// Query returns the active query string.
func (ix *Index) Query() string {
	return ix.query
}

// Matches returns a copy of the match list, ordered by start ascending.
func (ix *Index) Matches() []Match {
	out := make([]Match, len(ix.matches))
	copy(out, ix.matches)
	return out
}

// Count returns the number of matches.
func (ix *Index) Count() int {
	return len(ix.matches)
}

// Current returns the current match index, or -1 when there are no matches.
func (ix *Index) Current() int {
	return ix.current
}

// CurrentMatch returns the match at the current index.
func (ix *Index) CurrentMatch() (Match, bool) {
	if ix.current < 0 || ix.current >= len(ix.matches) {
		return Match{}, false
	}
	return ix.matches[ix.current], true
}

// Next advances the current match, wrapping past the end.
func (ix *Index) Next() {
	if len(ix.matches) == 0 {
		return
	}
	ix.current = (ix.current + 1) % len(ix.matches)
}

// Prev moves the current match back, wrapping past the start.
func (ix *Index) Prev() {
	if len(ix.matches) == 0 {
		return
	}
	ix.current = (ix.current - 1 + len(ix.matches)) % len(ix.matches)
}

// ReplaceCurrent splices replacement over the current match and returns the
// new content plus the caret offset immediately after the inserted text.
// The caller is expected to re-Update the index against the new content.
// Returns ok=false when there is no current match.
func (ix *Index) ReplaceCurrent(content, replacement string) (newContent string, caret int, ok bool) {
	m, ok := ix.CurrentMatch()
	if !ok {
		return content, 0, false
	}
	newContent = content[:m.Start] + replacement + content[m.End:]
	return newContent, m.Start + len(replacement), true
}

// ReplaceAll substitutes every match with replacement in a single pass,
// using the same escaped-literal, case-insensitive semantics as matching.
// Returns the new content and the number of replacements.
func (ix *Index) ReplaceAll(content, replacement string) (string, int) {
	if ix.query == "" {
		return content, 0
	}
	re := compile(ix.query)
	count := len(re.FindAllStringIndex(content, -1))
	if count == 0 {
		return content, 0
	}
	return re.ReplaceAllLiteralString(content, replacement), count
}
