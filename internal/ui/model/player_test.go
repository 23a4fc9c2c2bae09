package model_test

import (
	"testing"
	"time"

	"github.com/leighmacdonald/puppybowl-tui/internal/puppybowl"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	joined := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)
	teamID := 4

	assigned := model.NewPlayer(puppybowl.Player{
		ID: 1, Name: "Rex", Breed: "Husky", Status: "bench", ImageURL: "https://example.com/rex.png",
		TeamID: &teamID, CreatedAt: joined, Team: &puppybowl.Team{ID: teamID, Name: "Ruff"},
	})
	require.Equal(t, model.Player{
		ID: 1, Name: "Rex", Breed: "Husky", Status: "bench", ImageURL: "https://example.com/rex.png",
		TeamName: "Ruff", Assigned: true, Joined: joined,
	}, assigned)

	unassigned := model.NewPlayer(puppybowl.Player{ID: 2, Name: "Fido"})
	require.False(t, unassigned.Assigned)
	require.Empty(t, unassigned.TeamName)
}

func TestNewPlayers(t *testing.T) {
	require.Nil(t, model.NewPlayers(nil))
	require.Empty(t, model.NewPlayers(puppybowl.Roster{}))

	players := model.NewPlayers(puppybowl.Roster{{ID: 3}, {ID: 1}, {ID: 2}})
	require.Equal(t, []int{3, 1, 2}, []int{players[0].ID, players[1].ID, players[2].ID})
}

func TestSurface(t *testing.T) {
	require.True(t, model.DefaultSurface(model.PageRoster).Valid())
	require.False(t, model.Surface{Width: 10}.Valid())
	require.Equal(t, "Player", model.PageDetail.String())
	require.Empty(t, model.Container("title", model.Surface{}, "content", true))
}
