package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/puppybowl-tui/internal/config"
	"github.com/leighmacdonald/puppybowl-tui/internal/network"
	"github.com/leighmacdonald/puppybowl-tui/internal/puppybowl"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/component"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/model"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "puppybowl-tui",
		Short: "Puppy Bowl roster TUI",
		Long:  `puppybowl-tui - Browse the Puppy Bowl player roster of a cohort from your terminal`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about puppybowl-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	playersCmd = &cobra.Command{
		Use:               "players",
		Short:             "Print the roster",
		Long:              "Fetch the roster of the configured cohort and print it without starting the interactive ui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              printPlayers,
	}

	playerCmd = &cobra.Command{
		Use:               "player <id>",
		Short:             "Print a single player",
		Long:              "Fetch a single player of the configured cohort and print its details",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              printPlayer,
	}
)

var (
	errApp      = errors.New("application error")
	errPlayerID = errors.New("invalid player id")
)

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.AddCommand(versionCmd, playersCmd, playerCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("puppybowl-tui - Puppy Bowl Terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)              //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)               //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                 //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)          //nolint:forbidigo
}

// environment is everything loaded before any mode starts.
type environment struct {
	config        config.Config
	loader        *config.Loader
	configUpdates chan config.Config
	logFile       io.Closer
}

func (e environment) Close() {
	if err := e.logFile.Close(); err != nil {
		slog.Error("Failed to close log file", slog.String("error", err.Error()))
	}
}

func setup() (environment, error) {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return environment{}, errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(cfgFile, configUpdates)

	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return environment{}, errors.Join(errApp, errConfig)
	}

	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return environment{}, errors.Join(errLogger, errApp)
	}

	return environment{
		config:        userConfig,
		loader:        configLoader,
		configUpdates: configUpdates,
		logFile:       logFile,
	}, nil
}

func newFetcher(conf config.Config) puppybowl.Fetcher {
	return puppybowl.New(conf.APIURL(), network.NewClient(conf.HTTPTimeout()))
}

// run is the main entry point of puppybowl-tui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	env, errSetup := setup()
	if errSetup != nil {
		return errSetup
	}
	defer env.Close()

	slog.Info("Starting puppybowl-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("api", env.config.APIURL()))

	// Piped or redirected output gets the static rendering instead.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return writeRoster(cmd.Context(), cmd.OutOrStdout(), newFetcher(env.config))
	}

	return NewApp(env.config, env.loader, env.configUpdates).Start(cmd.Context())
}

func printPlayers(cmd *cobra.Command, _ []string) error {
	env, errSetup := setup()
	if errSetup != nil {
		return errSetup
	}
	defer env.Close()

	return writeRoster(cmd.Context(), cmd.OutOrStdout(), newFetcher(env.config))
}

func printPlayer(cmd *cobra.Command, args []string) error {
	playerID, errID := strconv.Atoi(args[0])
	if errID != nil || playerID <= 0 {
		return fmt.Errorf("%w: %s", errPlayerID, args[0])
	}

	env, errSetup := setup()
	if errSetup != nil {
		return errSetup
	}
	defer env.Close()

	return writePlayer(cmd.Context(), cmd.OutOrStdout(), newFetcher(env.config), playerID)
}

// writeRoster renders a single roster fetch. A failed fetch renders the empty state.
func writeRoster(ctx context.Context, out io.Writer, fetcher puppybowl.Fetcher) error {
	players := model.NewPlayers(puppybowl.FetchAllPlayers(ctx, fetcher))
	if _, err := fmt.Fprintln(out, component.RenderRoster(model.DefaultSurface(model.PageRoster), players, -1, "")); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// writePlayer renders a single player fetch. A failed fetch renders the error state.
func writePlayer(ctx context.Context, out io.Writer, fetcher puppybowl.Fetcher, playerID int) error {
	var viewModel *model.Player
	if player := puppybowl.FetchSinglePlayer(ctx, fetcher, playerID); player != nil {
		converted := model.NewPlayer(*player)
		viewModel = &converted
	}

	if _, err := fmt.Fprintln(out, component.RenderDetail(model.DefaultSurface(model.PageDetail), viewModel, "")); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
