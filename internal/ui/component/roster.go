package component

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/command"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/input"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

// EmptyRosterMessage is shown in place of any cards when there is nothing to render.
const EmptyRosterMessage = "No players found"

const (
	detailsLabel = "See details"
	removeLabel  = "Remove from roster"
	// cardContentWidth fits both control buttons side by side.
	cardContentWidth = 34
)

func NewRosterModel() *RosterModel {
	return &RosterModel{zoneID: zone.NewPrefix()}
}

// RosterModel holds the cards of the most recently delivered roster. Removing a card only
// changes this local copy.
type RosterModel struct {
	zoneID   string
	players  []model.Player
	selected int
	surface  model.Surface
	viewport viewport.Model
	ready    bool
}

func (m *RosterModel) Init() tea.Cmd {
	return nil
}

// Players returns the cards currently rendered, in order.
func (m *RosterModel) Players() []model.Player {
	return m.players
}

// Selected returns the index of the highlighted card.
func (m *RosterModel) Selected() int {
	return m.selected
}

func (m *RosterModel) Update(msg tea.Msg) (*RosterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.Surface:
		m.surface = msg
		if !m.ready {
			// Scrolling follows the selected card rather than the viewport's own bindings.
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.viewport.KeyMap = viewport.KeyMap{}
			m.viewport.MouseWheelEnabled = false
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
		}
	case command.RosterMsg:
		// Always a full replacement, never a merge with what was shown before.
		m.players = msg.Players
		m.selected = 0
		m.viewport.GotoTop()
	case tea.KeyMsg:
		if m.surface.Page != model.PageRoster {
			break
		}

		if dir, ok := input.DirectionOf(msg); ok {
			m.moveSelection(dir)

			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Accept):
			if m.selected < len(m.players) {
				return m, command.ShowDetails(m.players[m.selected].ID)
			}
		case key.Matches(msg, input.Default.Remove):
			return m, m.Remove(m.selected)
		}
	case tea.MouseMsg:
		if m.surface.Page != model.PageRoster {
			break
		}

		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for idx, player := range m.players {
			switch {
			case zone.Get(zoneKey(m.zoneID, zoneDetails, player.ID)).InBounds(msg):
				m.selected = idx

				return m, command.ShowDetails(player.ID)
			case zone.Get(zoneKey(m.zoneID, zoneRemove, player.ID)).InBounds(msg):
				return m, m.Remove(idx)
			case zone.Get(zoneKey(m.zoneID, zoneCard, player.ID)).InBounds(msg):
				m.selected = idx

				return m, nil
			}
		}
	}

	return m, nil
}

// Remove detaches the card at idx from this render only. No request is made and the card
// will return with the next fetched roster.
func (m *RosterModel) Remove(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.players) {
		return nil
	}

	removed := m.players[idx]
	m.players = slices.Delete(slices.Clone(m.players), idx, idx+1)
	if m.selected >= len(m.players) && m.selected > 0 {
		m.selected = len(m.players) - 1
	}

	return command.CardRemoved(removed.ID, len(m.players))
}

func (m *RosterModel) moveSelection(dir input.Direction) {
	if len(m.players) == 0 {
		return
	}

	perRow := cardsPerRow(m.surface.Width)
	next := m.selected

	switch dir {
	case input.Up:
		next -= perRow
	case input.Down:
		next += perRow
	case input.Left:
		next--
	case input.Right:
		next++
	}

	if next >= 0 && next < len(m.players) {
		m.selected = next
	}
}

func (m *RosterModel) View() string {
	content := RenderRoster(m.surface, m.players, m.selected, m.zoneID)
	m.viewport.SetContent(content)

	// Keep the selected row on screen.
	if len(m.players) > 0 {
		rowHeight := lipgloss.Height(renderCard(m.players[0], false, ""))
		rowTop := (m.selected / cardsPerRow(m.surface.Width)) * rowHeight
		if rowTop < m.viewport.YOffset {
			m.viewport.SetYOffset(rowTop)
		} else if rowTop+rowHeight > m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(rowTop + rowHeight - m.viewport.Height)
		}
	}

	return m.viewport.View()
}

// RenderRoster draws every player as a card, replacing anything previously drawn on the
// surface. A nil or empty roster renders the empty state instead. Pass a negative selected
// index to highlight nothing, and an empty zonePrefix to skip mouse zone marking.
func RenderRoster(surface model.Surface, players []model.Player, selected int, zonePrefix string) string {
	if len(players) == 0 {
		return styles.InfoMessage.Width(surface.Width).Render(EmptyRosterMessage + " " + styles.IconBone)
	}

	perRow := cardsPerRow(surface.Width)
	rows := make([]string, 0, len(players)/perRow+1)

	for start := 0; start < len(players); start += perRow {
		end := min(start+perRow, len(players))
		cards := make([]string, 0, end-start)
		for idx := start; idx < end; idx++ {
			cards = append(cards, renderCard(players[idx], idx == selected, zonePrefix))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.NewStyle().Width(surface.Width).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderCard(player model.Player, selected bool, zonePrefix string) string {
	style := styles.CardStyle
	detailsButton := styles.Button.Render(detailsLabel)
	if selected {
		style = styles.CardStyleSelected
		detailsButton = styles.ButtonActive.Render(detailsLabel)
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		markZone(zoneKey(zonePrefix, zoneDetails, player.ID), detailsButton),
		" ",
		markZone(zoneKey(zonePrefix, zoneRemove, player.ID), styles.ButtonDanger.Render(removeLabel)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardName.Render(truncate.StringWithTail(player.Name, cardContentWidth, "…")),
		styles.CardID.Render(fmt.Sprintf("ID: %d", player.ID)),
		renderImage(player.ImageURL, player.Name, cardContentWidth),
		"",
		controls)

	return markZone(zoneKey(zonePrefix, zoneCard, player.ID), style.Width(cardContentWidth+2).Render(content))
}

// renderImage stands in for the picture, which a terminal cannot show, using its alt text and source.
func renderImage(url string, alt string, width int) string {
	return styles.CardImage.Render(lipgloss.JoinVertical(lipgloss.Left,
		truncate.StringWithTail(fmt.Sprintf("%s [image: %s]", styles.IconImage, alt), uint(width), "…"), //nolint:gosec
		truncate.StringWithTail(url, uint(width), "…")))                                                 //nolint:gosec
}

func cardsPerRow(width int) int {
	// content + horizontal padding + border
	return max(1, width/(cardContentWidth+4))
}
