package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/inkpot-editor/inkpot/internal/engine/multicursor"
)

// ClassifyKey maps a tcell key event to a multi-cursor input event.
// Returns ok=false for keys the editing core has no interest in.
func ClassifyKey(ev *tcell.EventKey) (multicursor.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return multicursor.InputEvent{Kind: multicursor.EventRune, Rune: ev.Rune()}, true
	case tcell.KeyEnter:
		return multicursor.InputEvent{Kind: multicursor.EventEnter}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return multicursor.InputEvent{Kind: multicursor.EventBackspace}, true
	case tcell.KeyDelete:
		return multicursor.InputEvent{Kind: multicursor.EventDelete}, true
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		return multicursor.InputEvent{Kind: multicursor.EventArrow}, true
	case tcell.KeyEscape:
		return multicursor.InputEvent{Kind: multicursor.EventEscape}, true
	case tcell.KeyCtrlD:
		return multicursor.InputEvent{Kind: multicursor.EventAddCursor}, true
	}
	return multicursor.InputEvent{}, false
}
