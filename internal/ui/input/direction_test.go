package input_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/input"
	"github.com/stretchr/testify/require"
)

func TestDirectionOf(t *testing.T) {
	for _, testCase := range []struct {
		msg  tea.KeyMsg
		dir  input.Direction
		isOk bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, input.Up, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, input.Down, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, input.Left, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, input.Right, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, input.Up, false},
	} {
		dir, ok := input.DirectionOf(testCase.msg)
		require.Equal(t, testCase.isOk, ok)
		if ok {
			require.Equal(t, testCase.dir, dir)
		}
	}
}
