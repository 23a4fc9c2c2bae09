package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/input"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, apiURL string) Help {
	return Help{
		helpView:     help.New(),
		configPath:   configPath,
		apiURL:       apiURL,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	surface      model.Surface
	configPath   string
	apiURL       string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	switch msg := msg.(type) {
	case model.Surface:
		m.surface = msg
	case APIURLMsg:
		m.apiURL = string(msg)
	case ConfigPathMsg:
		m.configPath = string(msg)
	}

	return m, nil
}

// APIURLMsg updates the displayed api root after a config change.
type APIURLMsg string

// ConfigPathMsg updates the displayed config file path after the first save.
type ConfigPathMsg string

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.Left,
			input.Default.Right,
			input.Default.Accept,
			input.Default.Remove,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Back,
			input.Default.Reload,
			input.Default.Config,
			input.Default.Help,
			input.Default.Close,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top, styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	configPath := m.configPath
	if configPath == "" {
		configPath = "(defaults, not saved yet)"
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config", configPath),
		styles.DetailRow("API", m.apiURL),
	)

	return lipgloss.Place(m.surface.Width, m.surface.Height, lipgloss.Center, lipgloss.Center, content)
}
