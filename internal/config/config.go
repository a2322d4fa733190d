package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Eatkin/reddit-cli/internal/app"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig       = "REDDIT_CLI_CONFIG"
	envLogFile      = "REDDIT_CLI_LOG_FILE"
	envTrace        = "REDDIT_CLI_TRACE"
	envTheme        = "REDDIT_CLI_THEME"
	envPageSize     = "REDDIT_CLI_PAGE_SIZE"
	envFetchTimeout = "REDDIT_CLI_FETCH_TIMEOUT"
	envImageTimeout = "REDDIT_CLI_IMAGE_TIMEOUT"
	envWidth        = "REDDIT_CLI_WIDTH"
	envHeight       = "REDDIT_CLI_HEIGHT"
)

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("reddit-cli", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	RegisterFlags(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(fs, args, environ)
}

// RegisterFlags defines every flag on fs. Defaults come from environ.
func RegisterFlags(fs *pflag.FlagSet, environ []string) {
	env := parseEnv(environ)
	fs.String("config", envOrDefault(env, envConfig, ""), "path to the feeds YAML file")
	fs.String("theme", envOrDefault(env, envTheme, ""), "colour theme, overrides the config file")
	fs.Int("page-size", envOrInt(env, envPageSize, feed.DefaultPageSize), "posts requested per page")
	fs.Duration("fetch-timeout", envOrDuration(env, envFetchTimeout, feed.DefaultFetchTimeout), "timeout for a feed request")
	fs.Duration("image-timeout", envOrDuration(env, envImageTimeout, feed.DefaultImageTimeout), "timeout for an image download")
	fs.Int("width", envOrInt(env, envWidth, 0), "fixed viewport width in cells (0 uses terminal width)")
	fs.Int("height", envOrInt(env, envHeight, 0), "fixed viewport height in rows (0 uses terminal height)")
	fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
}

// FromFlags builds a Config from a parsed flag set and loads the feeds file.
func FromFlags(fs *pflag.FlagSet, args []string, environ []string) (Config, error) {
	configPath, _ := fs.GetString("config")
	themeName, _ := fs.GetString("theme")
	pageSize, _ := fs.GetInt("page-size")
	fetchTimeout, _ := fs.GetDuration("fetch-timeout")
	imageTimeout, _ := fs.GetDuration("image-timeout")
	width, _ := fs.GetInt("width")
	height, _ := fs.GetInt("height")
	trace, _ := fs.GetBool("trace")
	logFile, _ := fs.GetString("log-file")

	cfg := Config{
		App: app.Config{
			Theme:        themeName,
			PageSize:     pageSize,
			FetchTimeout: fetchTimeout,
			ImageTimeout: imageTimeout,
			Width:        width,
			Height:       height,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"config":       configPath,
			"theme":        themeName,
			"pageSize":     strconv.Itoa(pageSize),
			"fetchTimeout": fetchTimeout.String(),
			"imageTimeout": imageTimeout.String(),
			"width":        strconv.Itoa(width),
			"height":       strconv.Itoa(height),
			"trace":        strconv.FormatBool(trace),
			"logFile":      logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	path, err := ResolvePath(configPath, parseEnv(environ))
	if err != nil {
		return Config{}, err
	}
	file, diags, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg.App.ConfigPath = path
	cfg.App.Feeds = file.Feeds
	for _, d := range diags {
		cfg.App.Diagnostics = append(cfg.App.Diagnostics, d.String())
	}
	if cfg.App.Theme == "" {
		cfg.App.Theme = file.Theme
	}
	return cfg, nil
}

// Validate rejects negative sizes and timeouts.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.PageSize < 0 {
		return fmt.Errorf("page-size must be >= 0 (got %d)", cfg.App.PageSize)
	}
	if cfg.App.FetchTimeout < 0 {
		return fmt.Errorf("fetch-timeout must be >= 0 (got %s)", cfg.App.FetchTimeout)
	}
	if cfg.App.ImageTimeout < 0 {
		return fmt.Errorf("image-timeout must be >= 0 (got %s)", cfg.App.ImageTimeout)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
