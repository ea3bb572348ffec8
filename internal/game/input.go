package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionWait
	ActionQuit
)

// keyToAction maps a tcell key event to a game action. Movement is
// four-directional; corridors are cardinal so diagonals buy nothing.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case '.':
		return ActionWait
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}
