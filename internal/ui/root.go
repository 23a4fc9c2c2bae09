package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/puppybowl-tui/internal/config"
	"github.com/leighmacdonald/puppybowl-tui/internal/puppybowl"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/command"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/component"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/input"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/pages"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// FetcherFactory builds the api client for a config. It is called again whenever the
// cohort or api location changes.
type FetcherFactory func(conf config.Config) puppybowl.Fetcher

// rootModel is the top level model for the ui side of the app. It starts the first roster
// fetch and turns navigation requests from the views into fetches. Which screen is shown is
// decided purely by the last result delivered, so when two navigations overlap the later
// completing one wins.
type rootModel struct {
	ctx          context.Context
	conf         config.Config
	fetcher      puppybowl.Fetcher
	newFetcher   FetcherFactory
	surface      model.Surface
	previousPage model.Page
	height       int
	width        int
	footerHeight int
	roster       *component.RosterModel
	detail       component.DetailModel
	statusBar    *component.StatusBarModel
	help         pages.Help
	configPage   *pages.Config
}

func newRootModel(ctx context.Context, conf config.Config, newFetcher FetcherFactory, loader config.Writer,
	buildVersion string, buildDate string, buildCommit string,
) rootModel {
	return rootModel{
		ctx:          ctx,
		conf:         conf,
		fetcher:      newFetcher(conf),
		newFetcher:   newFetcher,
		surface:      model.Surface{Page: model.PageRoster},
		previousPage: model.PageRoster,
		footerHeight: 1,
		roster:       component.NewRosterModel(),
		detail:       component.NewDetailModel(),
		statusBar:    component.NewStatusBarModel(buildVersion, conf.Cohort),
		help:         pages.NewHelp(buildVersion, buildDate, buildCommit, loader.Path(), conf.APIURL()),
		configPage:   pages.NewConfig(conf, loader),
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("puppybowl-tui"),
		m.statusBar.Init(),
		m.configPage.Init(),
		command.FetchRoster(m.ctx, m.fetcher),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	var cmds []tea.Cmd
	pageBefore := m.surface.Page

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		// Leave room for the container border.
		m.surface.Width = max(0, msg.Width-2)
		m.surface.Height = max(0, msg.Height-m.footerHeight-2)

		return m.propagate(m.surface)
	case command.RosterMsg:
		m.navigate(model.PageRoster)
		if msg.Err != nil {
			cmds = append(cmds, command.SetStatusMessage("Uh oh, trouble fetching players!", true))
		}
	case command.PlayerMsg:
		m.navigate(model.PageDetail)
		if msg.Err != nil {
			cmds = append(cmds, command.SetStatusMessage(fmt.Sprintf("Oh no, trouble fetching player #%d!", msg.PlayerID), true))
		}
	case command.ShowDetailsMsg:
		cmds = append(cmds, command.FetchPlayer(m.ctx, m.fetcher, msg.PlayerID))
	case command.ShowRosterMsg:
		cmds = append(cmds, command.FetchRoster(m.ctx, m.fetcher))
	case command.CardRemovedMsg:
		cmds = append(cmds, command.SetStatusMessage(fmt.Sprintf("Removed player #%d from view", msg.PlayerID), false))
	case model.Page:
		m.surface.Page = msg
	case config.Config:
		changed := msg.APIURL() != m.conf.APIURL() || msg.HTTPTimeout() != m.conf.HTTPTimeout()
		m.conf = msg
		if changed {
			slog.Info("API location changed, reloading roster", slog.String("url", msg.APIURL()))
			m.fetcher = m.newFetcher(msg)
			cmds = append(cmds,
				command.ShowRoster(),
				func() tea.Msg { return pages.APIURLMsg(msg.APIURL()) })
		}
	case tea.KeyMsg:
		cmd := m.onKey(msg)
		if m.surface.Page != pageBefore {
			// Keys that switch pages are not passed on to the newly shown page.
			var surfaceCmd tea.Cmd
			m, surfaceCmd = m.propagateModels(m.surface)

			return m, tea.Batch(cmd, surfaceCmd)
		}

		cmds = append(cmds, cmd)
	}

	if m.surface.Page != pageBefore {
		var cmd tea.Cmd
		m, cmd = m.propagateModels(m.surface)
		cmds = append(cmds, cmd)
	}

	return m.propagate(inMsg, cmds...)
}

func (m *rootModel) onKey(msg tea.KeyMsg) tea.Cmd {
	switch m.surface.Page {
	case model.PageConfig:
		// Every other key belongs to the text inputs.
		switch {
		case msg.Type == tea.KeyCtrlC:
			return tea.Quit
		case key.Matches(msg, input.Default.Close):
			m.surface.Page = m.previousPage
		}

		return nil
	case model.PageHelp:
		switch {
		case key.Matches(msg, input.Default.Quit):
			return tea.Quit
		case key.Matches(msg, input.Default.Help), key.Matches(msg, input.Default.Close):
			m.surface.Page = m.previousPage
		}

		return nil
	case model.PageRoster, model.PageDetail:
		switch {
		case key.Matches(msg, input.Default.Quit):
			return tea.Quit
		case key.Matches(msg, input.Default.Help):
			m.previousPage = m.surface.Page
			m.surface.Page = model.PageHelp
		case key.Matches(msg, input.Default.Config):
			m.previousPage = m.surface.Page
			m.surface.Page = model.PageConfig
		case key.Matches(msg, input.Default.Reload):
			return command.ShowRoster()
		}
	}

	return nil
}

// navigate switches to the page a fetch result belongs to. Results that land while an
// overlay page is open become the page returned to instead.
func (m *rootModel) navigate(page model.Page) {
	if m.surface.Page == model.PageHelp || m.surface.Page == model.PageConfig {
		m.previousPage = page

		return
	}

	m.surface.Page = page
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	var content string
	switch m.surface.Page {
	case model.PageRoster:
		content = m.roster.View()
	case model.PageDetail:
		content = m.detail.View()
	case model.PageConfig:
		content = m.configPage.View()
	case model.PageHelp:
		content = m.help.View()
	}

	outer := model.Surface{Page: m.surface.Page, Width: m.surface.Width + 2, Height: m.surface.Height + 2}
	title := fmt.Sprintf(" %s %s ", styles.IconLoader, m.surface.Page.String())
	ctr := model.Container(title, outer, content, m.surface.Page == model.PageRoster || m.surface.Page == model.PageDetail)
	ftr := styles.FooterContainerStyle.Width(m.width).Render(m.statusBar.View())

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) propagate(msg tea.Msg, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m, cmd := m.propagateModels(msg)

	return m, tea.Batch(append(cmds, cmd)...)
}

func (m rootModel) propagateModels(msg tea.Msg) (rootModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 5)

	m.roster, cmds[0] = m.roster.Update(msg)
	m.detail, cmds[1] = m.detail.Update(msg)
	m.statusBar, cmds[2] = m.statusBar.Update(msg)
	m.help, cmds[3] = m.help.Update(msg)
	m.configPage, cmds[4] = m.configPage.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/puppybowl-tui/puppybowl-tui.log
func logMsg(inMsg tea.Msg) {
	switch msg := inMsg.(type) {
	case spinner.TickMsg:
		break
	case command.RosterMsg:
		slog.Debug("tea.Msg", slog.String("type", "RosterMsg"), slog.Int("players", len(msg.Players)))
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
