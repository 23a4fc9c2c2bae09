package component

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/command"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/input"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wrap"
)

const (
	backLabel = "Back to all players"
	// UnassignedLabel is shown instead of a team name for players not on a team.
	UnassignedLabel = "Unassigned"
	// PlayerErrorMessage is shown when the requested player could not be fetched.
	PlayerErrorMessage = "Player could not be loaded"
	detailWidth        = 60
)

func NewDetailModel() DetailModel {
	return DetailModel{zoneID: zone.NewPrefix()}
}

// DetailModel shows the most recently fetched single player.
type DetailModel struct {
	zoneID   string
	playerID int
	player   *model.Player
	surface  model.Surface
}

func (m DetailModel) Init() tea.Cmd {
	return nil
}

// PlayerID is the id that was requested, which is still known when the fetch failed.
func (m DetailModel) PlayerID() int {
	return m.playerID
}

// Player returns the player being shown, nil if the fetch failed.
func (m DetailModel) Player() *model.Player {
	return m.player
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.Surface:
		m.surface = msg
	case command.PlayerMsg:
		m.playerID = msg.PlayerID
		m.player = msg.Player
	case tea.KeyMsg:
		if m.surface.Page != model.PageDetail {
			break
		}

		if key.Matches(msg, input.Default.Back) {
			return m, command.ShowRoster()
		}
	case tea.MouseMsg:
		if m.surface.Page != model.PageDetail {
			break
		}

		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if zone.Get(zoneKey(m.zoneID, zoneBack, 0)).InBounds(msg) {
			return m, command.ShowRoster()
		}
	}

	return m, nil
}

func (m DetailModel) View() string {
	content := RenderDetail(m.surface, m.player, m.zoneID)

	return lipgloss.Place(m.surface.Width, m.surface.Height, lipgloss.Center, lipgloss.Top, content)
}

// RenderDetail draws a single player's full record, replacing anything previously drawn on
// the surface. A nil player renders an error state that still offers the way back.
func RenderDetail(surface model.Surface, player *model.Player, zonePrefix string) string {
	width := min(detailWidth, max(surface.Width-4, 20))
	back := markZone(zoneKey(zonePrefix, zoneBack, 0), styles.ButtonActive.Render(backLabel))

	if player == nil {
		return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
			styles.ErrorMessage.Render(styles.IconError+" "+PlayerErrorMessage),
			back))
	}

	team := styles.DetailUnassigned.Render(UnassignedLabel)
	if player.Assigned {
		team = styles.DetailTeam.Render("Team: " + player.TeamName)
	}

	rows := []string{
		styles.DetailName.Render(styles.IconDog + " " + player.Name),
		styles.CardID.Render(fmt.Sprintf("ID: %d", player.ID)),
		styles.DetailBreed.Render(player.Breed),
		team,
	}

	if player.Status != "" {
		rows = append(rows, styles.DetailRow("Status", player.Status))
	}

	if !player.Joined.IsZero() {
		rows = append(rows, styles.DetailRow("Joined", humanize.Time(player.Joined)))
	}

	rows = append(rows,
		"",
		styles.CardImage.Render(styles.IconImage+" [image: "+player.Name+"]"),
		styles.CardImage.Render(wrap.String(player.ImageURL, width-2)),
		"",
		back)

	return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
