package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Direction is a cursor movement through the card grid. Up and Down step a whole row.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
	Left
	Right
)

// DirectionOf reports which movement, if any, a key press is bound to in the default map.
func DirectionOf(msg tea.KeyMsg) (Direction, bool) {
	switch {
	case key.Matches(msg, Default.Up):
		return Up, true
	case key.Matches(msg, Default.Down):
		return Down, true
	case key.Matches(msg, Default.Left):
		return Left, true
	case key.Matches(msg, Default.Right):
		return Right, true
	default:
		return Up, false
	}
}
