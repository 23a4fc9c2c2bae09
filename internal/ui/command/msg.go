package command

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/puppybowl-tui/internal/config"
	"github.com/leighmacdonald/puppybowl-tui/internal/puppybowl"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
)

// RosterMsg carries the result of a roster fetch. Players is nil when the fetch failed.
type RosterMsg struct {
	Players []model.Player
	Err     error
}

// PlayerMsg carries the result of a single player fetch. Player is nil when the fetch failed.
type PlayerMsg struct {
	PlayerID int
	Player   *model.Player
	Err      error
}

// FetchRoster issues a single list request. Navigation back to the roster always goes
// through here, so nothing from a previous render survives.
func FetchRoster(ctx context.Context, fetcher puppybowl.Fetcher) tea.Cmd {
	return func() tea.Msg {
		roster, err := fetcher.Players(ctx)
		if err != nil {
			return RosterMsg{Err: err}
		}

		return RosterMsg{Players: model.NewPlayers(roster)}
	}
}

// FetchPlayer issues a single get request for one player.
func FetchPlayer(ctx context.Context, fetcher puppybowl.Fetcher, playerID int) tea.Cmd {
	return func() tea.Msg {
		player, err := fetcher.Player(ctx, playerID)
		if err != nil {
			return PlayerMsg{PlayerID: playerID, Err: err}
		}

		viewModel := model.NewPlayer(player)

		return PlayerMsg{PlayerID: playerID, Player: &viewModel}
	}
}

// ShowDetailsMsg is emitted by the roster when a card's details control is activated.
type ShowDetailsMsg struct {
	PlayerID int
}

func ShowDetails(playerID int) tea.Cmd {
	return func() tea.Msg { return ShowDetailsMsg{PlayerID: playerID} }
}

// ShowRosterMsg requests navigation back to a freshly fetched roster.
type ShowRosterMsg struct{}

func ShowRoster() tea.Cmd {
	return func() tea.Msg { return ShowRosterMsg{} }
}

// CardRemovedMsg reports a card detached from the current roster render.
type CardRemovedMsg struct {
	PlayerID  int
	Remaining int
}

func CardRemoved(playerID int, remaining int) tea.Cmd {
	return func() tea.Msg { return CardRemovedMsg{PlayerID: playerID, Remaining: remaining} }
}

func SetSurface(surface model.Surface) tea.Cmd {
	return func() tea.Msg { return surface }
}

func SetPage(page model.Page) tea.Cmd {
	return func() tea.Msg { return page }
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}
