package multicursor

import (
	"sort"
	"unicode/utf8"

	"github.com/inkpot-editor/inkpot/internal/engine/cursor"
)

// Op is the edit operation applied at every cursor.
type Op uint8

const (
	// OpInsert inserts text at each cursor, replacing any selected range.
	OpInsert Op = iota
	// OpDelete is a backspace: it removes the selection, or the character
	// before a caret.
	OpDelete
	// OpDeleteForward removes the selection, or the character after a caret.
	OpDeleteForward
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpDeleteForward:
		return "deleteForward"
	default:
		return "unknown"
	}
}

// ApplyEdit applies op at every cursor against content and returns the new
// content plus the collapsed caret for each cursor, ordered by position.
// text is used only by OpInsert. An empty cursor set returns the content
// unchanged.
func ApplyEdit(content string, cursors []cursor.Cursor, op Op, text string) (string, []cursor.Cursor) {
	if len(cursors) == 0 {
		return content, nil
	}

	sorted := make([]cursor.Cursor, len(cursors))
	copy(sorted, cursors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	out := make([]byte, 0, len(content)+len(text)*len(sorted))
	updated := make([]cursor.Cursor, 0, len(sorted))
	lastIndex := 0

	for _, c := range sorted {
		start := clamp(c.Start, lastIndex, len(content))
		end := clamp(c.End, start, len(content))
		out = append(out, content[lastIndex:start]...)

		var caret int
		switch op {
		case OpInsert:
			out = append(out, text...)
			caret = len(out)
			lastIndex = end

		case OpDelete:
			if start != end {
				caret = len(out)
				lastIndex = end
			} else {
				if len(out) > 0 {
					_, size := utf8.DecodeLastRune(out)
					out = out[:len(out)-size]
				}
				caret = len(out)
				lastIndex = start
			}

		case OpDeleteForward:
			if start != end {
				caret = len(out)
				lastIndex = end
			} else {
				caret = len(out)
				lastIndex = start
				if lastIndex < len(content) {
					_, size := utf8.DecodeRuneInString(content[lastIndex:])
					lastIndex += size
				}
			}
		}

		updated = append(updated, cursor.Cursor{ID: c.ID, Start: caret, End: caret})
	}

	out = append(out, content[lastIndex:]...)
	return string(out), updated
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
