package component_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/command"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/component"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func TestRenderDetail(t *testing.T) {
	surface := model.DefaultSurface(model.PageDetail)

	t.Run("assigned", func(t *testing.T) {
		out := component.RenderDetail(surface, &model.Player{
			ID: 7, Name: "Rex", Breed: "Husky", Status: "field", TeamName: "Ruff", Assigned: true,
			ImageURL: "https://example.com/rex.png", Joined: time.Now().Add(-48 * time.Hour),
		}, "")

		require.Contains(t, out, "Rex")
		require.Contains(t, out, "ID: 7")
		require.Contains(t, out, "Husky")
		require.Contains(t, out, "Team: Ruff")
		require.NotContains(t, out, component.UnassignedLabel)
		require.Contains(t, out, "field")
		require.Contains(t, out, "2 days ago")
		require.Contains(t, out, "[image: Rex]")
		require.Contains(t, out, "Back to all players")
	})

	t.Run("unassigned", func(t *testing.T) {
		out := component.RenderDetail(surface, &model.Player{ID: 8, Name: "Fido", Breed: "Boxer"}, "")

		require.Contains(t, out, component.UnassignedLabel)
		require.NotContains(t, out, "Team:")
		require.NotContains(t, out, "Joined")
	})

	t.Run("missing", func(t *testing.T) {
		out := component.RenderDetail(surface, nil, "")

		require.Contains(t, out, component.PlayerErrorMessage)
		require.Contains(t, out, "Back to all players")
		require.NotContains(t, out, "ID:")
	})
}

func TestDetailUpdate(t *testing.T) {
	detail := component.NewDetailModel()
	detail, _ = detail.Update(model.DefaultSurface(model.PageDetail))

	player := model.Player{ID: 3, Name: "Biscuit"}
	detail, _ = detail.Update(command.PlayerMsg{PlayerID: 3, Player: &player})
	require.Equal(t, 3, detail.PlayerID())
	require.Equal(t, "Biscuit", detail.Player().Name)
	require.Contains(t, detail.View(), "Biscuit")

	detail, _ = detail.Update(command.PlayerMsg{PlayerID: 4})
	require.Equal(t, 4, detail.PlayerID())
	require.Nil(t, detail.Player())
	require.Contains(t, detail.View(), component.PlayerErrorMessage)

	_, cmd := detail.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, command.ShowRosterMsg{}, cmd())
}

func TestDetailIgnoresKeysOffPage(t *testing.T) {
	detail := component.NewDetailModel()
	detail, _ = detail.Update(model.DefaultSurface(model.PageRoster))

	_, cmd := detail.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, cmd)
}
