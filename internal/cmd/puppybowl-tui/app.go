package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/puppybowl-tui/internal/config"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing config reloads into the ui.
type App struct {
	ui            UI
	config        config.Config
	loader        *config.Loader
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(conf config.Config, loader *config.Loader, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		loader:        loader,
		configUpdates: configUpdates,
	}
}

// Start runs the ui until it exits, forwarding any config file changes to it in the meantime.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.loader.Watch()

	group, groupCtx := errgroup.WithContext(ctx)
	userInterface := app.createUI(groupCtx)

	group.Go(func() error {
		// The syncer has nothing left to deliver to once the ui is gone.
		defer cancel()

		return userInterface.Run()
	})

	group.Go(func() error {
		app.configSyncer(groupCtx)

		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Join(err, errApp)
	}

	return nil
}

// configSyncer forwards reloaded configs to the ui.
func (app *App) configSyncer(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Debug("Forwarding reloaded config", slog.String("api", conf.APIURL()))
			app.config = conf
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context) UI {
	if app.ui == nil {
		app.ui = ui.New(
			ctx,
			app.config,
			newFetcher,
			app.loader,
			BuildVersion,
			BuildDate,
			BuildCommit)
	}

	return app.ui
}
