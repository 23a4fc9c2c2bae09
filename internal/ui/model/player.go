package model

import (
	"time"

	"github.com/leighmacdonald/puppybowl-tui/internal/puppybowl"
)

// Player is the immutable view model for one rendered player. It lives only for a single
// render pass.
type Player struct {
	ID       int
	Name     string
	Breed    string
	Status   string
	ImageURL string
	TeamName string
	// Assigned is false when the api returned no team for the player.
	Assigned bool
	Joined   time.Time
}

// NewPlayer converts an api player into its view model.
func NewPlayer(player puppybowl.Player) Player {
	viewModel := Player{
		ID:       player.ID,
		Name:     player.Name,
		Breed:    player.Breed,
		Status:   player.Status,
		ImageURL: player.ImageURL,
		Joined:   player.CreatedAt,
	}

	if player.Team != nil {
		viewModel.TeamName = player.Team.Name
		viewModel.Assigned = true
	}

	return viewModel
}

// NewPlayers converts a roster. A nil roster produces a nil slice.
func NewPlayers(roster puppybowl.Roster) []Player {
	if roster == nil {
		return nil
	}

	players := make([]Player, len(roster))
	for idx, player := range roster {
		players[idx] = NewPlayer(player)
	}

	return players
}
