package pages

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/puppybowl-tui/internal/config"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/command"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/component"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/input"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
)

type configIdx int

const (
	fieldCohort configIdx = iota
	fieldAPIBaseURL
	fieldSave
)

type Config struct {
	fields     []*component.ValidatingTextInputModel
	focusIndex configIdx
	config     config.Config
	surface    model.Surface
	loader     config.Writer
}

func NewConfig(conf config.Config, loader config.Writer) *Config {
	page := &Config{
		config: conf,
		fields: []*component.ValidatingTextInputModel{
			component.NewValidatingTextInputModel("Cohort", conf.Cohort, config.DefaultCohort, component.CohortValidator{}),
			component.NewValidatingTextInputModel("API Base URL", conf.APIBaseURL, config.DefaultAPIBaseURL, component.URLValidator{}),
		},
		focusIndex: fieldCohort,
		loader:     loader,
	}
	page.fields[fieldCohort].Focus()

	return page
}

func (m *Config) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Config) Update(msg tea.Msg) (*Config, tea.Cmd) {
	switch msg := msg.(type) {
	case model.Surface:
		m.surface = msg
	case config.Config:
		m.config = msg
	case tea.KeyMsg:
		if m.surface.Page != model.PageConfig {
			return m, nil
		}

		switch msg.String() {
		case "up", "shift+tab":
			return m, m.changeInput(input.Up)
		case "down", "tab":
			return m, m.changeInput(input.Down)
		case "enter":
			if m.focusIndex == fieldSave {
				return m, m.save()
			}

			return m, m.changeInput(input.Down)
		}
	}

	cmds := make([]tea.Cmd, len(m.fields))
	for idx := range m.fields {
		m.fields[idx], cmds[idx] = m.fields[idx].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Config) save() tea.Cmd {
	for _, field := range m.fields {
		if field.Input.Err != nil {
			return command.SetStatusMessage("Config is not valid, cannot save", true)
		}
	}

	cfg := m.config
	cfg.Cohort = m.fields[fieldCohort].Input.Value()
	cfg.APIBaseURL = m.fields[fieldAPIBaseURL].Input.Value()

	if err := m.loader.Write(cfg); err != nil {
		return command.SetStatusMessage(err.Error(), true)
	}

	m.config = cfg

	return tea.Batch(
		command.SetConfig(cfg),
		command.SetStatusMessage("Saved config", false),
		func() tea.Msg { return ConfigPathMsg(m.loader.Path()) },
		command.SetPage(model.PageRoster))
}

func (m *Config) changeInput(dir input.Direction) tea.Cmd {
	switch dir { //nolint:exhaustive
	case input.Up:
		if m.focusIndex > fieldCohort {
			m.focusIndex--
		}
	case input.Down:
		if m.focusIndex < fieldSave {
			m.focusIndex++
		}
	default:
		return nil
	}

	var cmd tea.Cmd
	for i := range m.fields {
		if configIdx(i) == m.focusIndex {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}

	return cmd
}

func (m *Config) View() string {
	fields := make([]string, 0, len(m.fields)+1)
	for _, field := range m.fields {
		fields = append(fields, field.View())
	}

	if m.focusIndex == fieldSave {
		fields = append(fields, styles.FocusedSubmitButton)
	} else {
		fields = append(fields, styles.BlurredSubmitButton)
	}

	return lipgloss.NewStyle().Width(m.surface.Width).Padding(1, 2).Align(lipgloss.Left).
		Render(lipgloss.JoinVertical(lipgloss.Top, fields...))
}
