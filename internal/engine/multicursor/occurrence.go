package multicursor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/inkpot-editor/inkpot/internal/engine/cursor"
)

// AddNextOccurrence operates on the set's main cursor. An empty main
// selection is expanded in place to the word run surrounding it. A
// non-empty selection becomes the search key: the next literal occurrence
// after the main cursor is appended as a new cursor, wrapping to the start
// of the buffer when the end is reached. A range already covered by an
// existing cursor is not added again, so repeated invocations stop cleanly
// once every occurrence carries a cursor.
//
// Returns true when the set changed.
func AddNextOccurrence(content string, set *cursor.Set) bool {
	main, ok := set.Main()
	if !ok {
		return false
	}

	if main.IsCaret() {
		start, end := wordRangeAt(content, main.Start)
		if start == end {
			return false
		}
		return set.SetMain(start, end)
	}

	if main.Start < 0 || main.End > len(content) {
		return false
	}
	key := content[main.Start:main.End]

	matchStart := -1
	if idx := strings.Index(content[main.End:], key); idx >= 0 {
		matchStart = main.End + idx
	} else if idx := strings.Index(content, key); idx >= 0 {
		matchStart = idx
	}
	if matchStart < 0 {
		return false
	}

	matchEnd := matchStart + len(key)
	if set.Covers(matchStart, matchEnd) {
		return false
	}
	set.Add(matchStart, matchEnd)
	return true
}

// wordRangeAt returns the contiguous run of word characters (letters,
// digits, underscore) surrounding offset. Returns an empty range at offset
// when no word character is adjacent.
func wordRangeAt(content string, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	start := offset
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(content[:start])
		if !isWordRune(r) {
			break
		}
		start -= size
	}

	end := offset
	for end < len(content) {
		r, size := utf8.DecodeRuneInString(content[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}

	return start, end
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
