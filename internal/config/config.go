package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "puppybowl-tui"
	DefaultConfigName  = "puppybowl-tui"
	DefaultLogName     = "puppybowl-tui.log"
	EnvPrefix          = "puppybowl"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultAPIBaseURL  = "https://fsa-puppy-bowl.herokuapp.com/api"
	// DefaultCohort is the cohort the roster is scoped to when none is configured.
	DefaultCohort = "2307-FSA-ET-WEB-FT-SF"
)

type Config struct {
	// Cohort selects which roster the API returns. Every cohort has its own independent
	// set of players.
	Cohort          string `mapstructure:"cohort"`
	APIBaseURL      string `mapstructure:"api_base_url"`
	HTTPTimeoutSecs int    `mapstructure:"http_timeout_secs"`
	Debug           bool   `mapstructure:"debug"`
}

// APIURL is the cohort scoped root that the players resources hang off of.
func (c Config) APIURL() string {
	base := strings.TrimSuffix(c.APIBaseURL, "/")
	if base == "" {
		base = DefaultAPIBaseURL
	}

	cohort := strings.Trim(c.Cohort, "/ ")
	if cohort == "" {
		cohort = DefaultCohort
	}

	return base + "/" + cohort
}

func (c Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSecs <= 0 {
		return DefaultHTTPTimeout
	}

	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
