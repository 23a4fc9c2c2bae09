package pages_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/puppybowl-tui/internal/config"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/pages"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	written []config.Config
}

func (w *memWriter) Write(conf config.Config) error {
	w.written = append(w.written, conf)

	return nil
}

func (w *memWriter) Path() string {
	return "/tmp/puppybowl-tui.yaml"
}

func key(keyType tea.KeyType, runes ...rune) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType, Runes: runes}
}

func TestConfigSave(t *testing.T) {
	writer := &memWriter{}
	page := pages.NewConfig(config.Config{Cohort: "2307-FSA-ET-WEB-FT-SF", APIBaseURL: config.DefaultAPIBaseURL, HTTPTimeoutSecs: 5}, writer)
	page, _ = page.Update(model.DefaultSurface(model.PageConfig))

	// Append to the focused cohort field.
	page, _ = page.Update(key(tea.KeyRunes, 'X'))
	// Down to the url field, down to save, then submit.
	page, _ = page.Update(key(tea.KeyDown))
	page, _ = page.Update(key(tea.KeyDown))
	_, cmd := page.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	require.Len(t, writer.written, 1)
	require.Equal(t, "2307-FSA-ET-WEB-FT-SFX", writer.written[0].Cohort)
	require.Equal(t, config.DefaultAPIBaseURL, writer.written[0].APIBaseURL)
	require.Equal(t, 5, writer.written[0].HTTPTimeoutSecs)
}

func TestConfigSaveInvalid(t *testing.T) {
	writer := &memWriter{}
	page := pages.NewConfig(config.Config{Cohort: "bad cohort", APIBaseURL: config.DefaultAPIBaseURL}, writer)
	page, _ = page.Update(model.DefaultSurface(model.PageConfig))

	page, _ = page.Update(key(tea.KeyDown))
	page, _ = page.Update(key(tea.KeyDown))
	_, cmd := page.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.Empty(t, writer.written)
}

func TestConfigIgnoresKeysOffPage(t *testing.T) {
	writer := &memWriter{}
	page := pages.NewConfig(config.Config{Cohort: config.DefaultCohort, APIBaseURL: config.DefaultAPIBaseURL}, writer)
	page, _ = page.Update(model.DefaultSurface(model.PageRoster))

	page, _ = page.Update(key(tea.KeyRunes, 'X'))
	require.NotContains(t, page.View(), config.DefaultCohort+"X")
}

func TestHelpView(t *testing.T) {
	help := pages.NewHelp("v1.0.0", "today", "0123456789abcdef", "", "https://example.com/api/cohort")
	help, _ = help.Update(model.DefaultSurface(model.PageHelp))
	help, _ = help.Update(pages.ConfigPathMsg("/tmp/puppybowl-tui.yaml"))

	view := help.View()
	require.Contains(t, view, "v1.0.0")
	require.Contains(t, view, "01234567")
	require.NotContains(t, view, "0123456789")
	require.Contains(t, view, "/tmp/puppybowl-tui.yaml")
	require.Contains(t, view, "https://example.com/api/cohort")
}
