package component_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/command"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/component"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testPlayers() []model.Player {
	return []model.Player{
		{ID: 1, Name: "Rex", Breed: "Husky", ImageURL: "https://example.com/rex.png", TeamName: "Ruff", Assigned: true},
		{ID: 2, Name: "Fido", Breed: "Boxer", ImageURL: "https://example.com/fido.png"},
		{ID: 3, Name: "Biscuit", Breed: "Pug", ImageURL: "https://example.com/biscuit.png"},
	}
}

func TestRenderRosterEmpty(t *testing.T) {
	surface := model.DefaultSurface(model.PageRoster)

	for _, players := range [][]model.Player{nil, {}} {
		out := component.RenderRoster(surface, players, 0, "")
		require.Contains(t, out, component.EmptyRosterMessage)
		require.NotContains(t, out, "ID:")
		require.NotContains(t, out, "See details")
	}
}

func TestRenderRosterCards(t *testing.T) {
	out := component.RenderRoster(model.DefaultSurface(model.PageRoster), testPlayers(), 0, "")

	require.NotContains(t, out, component.EmptyRosterMessage)
	require.Equal(t, 3, strings.Count(out, "See details"))
	require.Equal(t, 3, strings.Count(out, "Remove from roster"))

	for _, player := range testPlayers() {
		require.Contains(t, out, player.Name)
		require.Contains(t, out, "[image: "+player.Name+"]")
	}

	require.Contains(t, out, "ID: 1")
	require.Contains(t, out, "ID: 2")
	require.Contains(t, out, "ID: 3")
}

func newRoster(t *testing.T, players []model.Player) *component.RosterModel {
	t.Helper()

	roster := component.NewRosterModel()
	roster, _ = roster.Update(model.DefaultSurface(model.PageRoster))
	roster, _ = roster.Update(command.RosterMsg{Players: players})

	return roster
}

func TestRosterReplace(t *testing.T) {
	roster := newRoster(t, testPlayers())
	require.Len(t, roster.Players(), 3)

	roster, _ = roster.Update(command.RosterMsg{Players: testPlayers()[2:]})
	require.Len(t, roster.Players(), 1)
	require.Equal(t, 3, roster.Players()[0].ID)
	require.Equal(t, 0, roster.Selected())

	// A failed fetch leaves nothing behind from the previous render.
	roster, _ = roster.Update(command.RosterMsg{Err: errors.New("boom")})
	require.Empty(t, roster.Players())
	require.Contains(t, roster.View(), component.EmptyRosterMessage)
}

func TestRosterRemove(t *testing.T) {
	players := testPlayers()
	roster := newRoster(t, players)

	cmd := roster.Remove(1)
	require.NotNil(t, cmd)

	msg, ok := cmd().(command.CardRemovedMsg)
	require.True(t, ok)
	require.Equal(t, 2, msg.PlayerID)
	require.Equal(t, 2, msg.Remaining)

	require.Len(t, roster.Players(), 2)
	require.Equal(t, 1, roster.Players()[0].ID)
	require.Equal(t, 3, roster.Players()[1].ID)
	// The delivered slice is left untouched.
	require.Equal(t, 2, players[1].ID)

	require.Nil(t, roster.Remove(5))
	require.Nil(t, roster.Remove(-1))
}

func TestRosterRemoveLast(t *testing.T) {
	roster := newRoster(t, testPlayers()[:1])
	roster, cmd := roster.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.NotNil(t, cmd)
	require.Empty(t, roster.Players())
	require.Contains(t, roster.View(), component.EmptyRosterMessage)
}

func TestRosterShowDetails(t *testing.T) {
	roster := newRoster(t, testPlayers())

	roster, _ = roster.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, roster.Selected())

	_, cmd := roster.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, command.ShowDetailsMsg{PlayerID: 2}, cmd())
}

func TestRosterIgnoresKeysOffPage(t *testing.T) {
	roster := newRoster(t, testPlayers())
	roster, _ = roster.Update(model.DefaultSurface(model.PageDetail))

	_, cmd := roster.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
}
