package component

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/puppybowl-tui/internal/config"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/command"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/input"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
)

type StatusBarModel struct {
	surface     model.Surface
	cohort      string
	statusMsg   string
	statusError bool
	count       int
	version     string
	loading     bool
	spinner     spinner.Model
}

func NewStatusBarModel(version string, cohort string) *StatusBarModel {
	loader := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.StatusCount))

	// The initial roster fetch is already in flight when the bar is created.
	return &StatusBarModel{version: version, cohort: cohort, spinner: loader, loading: true}
}

func (m *StatusBarModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *StatusBarModel) Update(msg tea.Msg) (*StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case model.Surface:
		m.surface = msg
	case config.Config:
		m.cohort = msg.Cohort
	case command.ShowRosterMsg, command.ShowDetailsMsg:
		wasLoading := m.loading
		m.loading = true
		if !wasLoading {
			return m, m.spinner.Tick
		}
	case command.RosterMsg:
		m.loading = false
		m.count = len(msg.Players)
	case command.PlayerMsg:
		m.loading = false
	case command.CardRemovedMsg:
		m.count = msg.Remaining
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

// Loading reports whether a fetch is in flight.
func (m *StatusBarModel) Loading() bool {
	return m.loading
}

func (m *StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		styles.StatusCohort.Render(m.cohort),
	}

	if m.surface.Page == model.PageRoster {
		args = append(args, styles.StatusCount.Render(fmt.Sprintf("%d players", m.count)))
	}

	if m.loading {
		args = append(args, m.spinner.View())
	}

	args = append(args, m.status())

	return lipgloss.NewStyle().Width(m.surface.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m *StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
