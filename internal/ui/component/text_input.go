package component

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
)

var (
	errInvalidURL    = errors.New("invalid URL")
	errInvalidCohort = errors.New("invalid cohort")
	cohortRx         = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)
)

type InputValidator interface {
	Validate(string) error
}

func NewValidatingTextInputModel(label string, value string, placeholder string, validators ...InputValidator) *ValidatingTextInputModel {
	input := NewTextInputModel(value, placeholder)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
		// Validate only runs on change, so check the initial value too.
		input.Err = input.Validate(value)
	}

	return &ValidatingTextInputModel{Input: input, Label: label}
}

type ValidatingTextInputModel struct {
	Label string
	Input textinput.Model
}

func (m *ValidatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *ValidatingTextInputModel) View() string {
	var errRow string
	if m.Input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render("Validation Error: " + m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpStyle.Width(16).Render(m.Label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.Input.View(), errRow))
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

// URLValidator accepts absolute http(s) urls.
type URLValidator struct{}

func (v URLValidator) Validate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: Cannot be empty", errInvalidURL)
	}

	parsed, errParse := url.Parse(value)
	if errParse != nil {
		return errors.Join(errParse, errInvalidURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: Scheme must be http or https", errInvalidURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: Missing host", errInvalidURL)
	}

	return nil
}

// CohortValidator accepts cohort names such as 2307-FSA-ET-WEB-FT-SF, which become a single path segment.
type CohortValidator struct{}

func (v CohortValidator) Validate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: Cannot be empty", errInvalidCohort)
	}

	if !cohortRx.MatchString(value) {
		return fmt.Errorf("%w: Only letters, digits and dashes are allowed", errInvalidCohort)
	}

	return nil
}
