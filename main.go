package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Eatkin/reddit-cli/internal/app"
	"github.com/Eatkin/reddit-cli/internal/config"
	"github.com/Eatkin/reddit-cli/internal/logging"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// exitError carries the process exit code for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	cmd := newRootCommand(os.Environ())
	if err := cmd.Execute(); err != nil {
		code := 1
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			code = exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(code)
	}
}

func newRootCommand(environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reddit-cli",
		Short:         "Browse reddit feeds in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtimeCfg, err := config.FromFlags(cmd.Flags(), os.Args[1:], environ)
			if err != nil {
				return &exitError{code: 2, err: fmt.Errorf("configuration error: %w", err)}
			}
			logging.Configure(runtimeCfg.Logging.FilePath)
			logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
			defer logging.Sync()

			traceStartup(runtimeCfg)

			if err := app.Run(runtimeCfg.App); err != nil {
				logging.Error(err)
				return &exitError{code: 1, err: err}
			}
			return nil
		},
	}
	config.RegisterFlags(cmd.Flags(), environ)
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":        cfg.Args,
		"flags":       flags,
		"configPath":  cfg.App.ConfigPath,
		"feeds":       len(cfg.App.Feeds),
		"diagnostics": cfg.App.Diagnostics,
		"logPath":     logging.Path(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Checks   []ttyCheckResult `json:"checks"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyCheckResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	checks := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyCheckResult, 0, len(checks))
	var detected *ttyDetected
	for _, check := range checks {
		entry := ttyCheckResult{Name: check.name}
		fd := int(check.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: check.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Checks: results}
}
