package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/logging"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"github.com/Eatkin/reddit-cli/internal/theme"
	"github.com/Eatkin/reddit-cli/internal/ui"
	"github.com/Eatkin/reddit-cli/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Config describes user-provided application options.
type Config struct {
	ConfigPath   string
	Feeds        []feed.Feed
	Diagnostics  []string
	Theme        string
	PageSize     int
	FetchTimeout time.Duration
	ImageTimeout time.Duration
	Width        int
	Height       int
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, stop := NewModel(cfg)
	defer stop()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// NewModel assembles the UI and its collaborators. stop releases every
// background task.
func NewModel(cfg Config) (*ui.Model, func()) {
	styles, diagnostics := resolveTheme(cfg.Theme, cfg.Diagnostics)
	source := feed.NewHTTPSource(feed.WithFetchTimeout(cfg.FetchTimeout))
	engine := feed.NewEngine(source, feed.NewCache(), feed.WithPageSize(cfg.PageSize))
	images := feed.NewImageLoader(feed.WithImageTimeout(cfg.ImageTimeout))
	runner := backend.NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	model := ui.NewModel(ui.Options{
		Context:     ctx,
		Engine:      engine,
		Images:      images,
		Bus:         command.New(runner),
		Feeds:       cfg.Feeds,
		Diagnostics: diagnostics,
		Styles:      styles,
		Width:       cfg.Width,
		Height:      cfg.Height,
	})
	return model, func() {
		cancel()
		runner.Stop()
		runner.Wait()
	}
}

func resolveTheme(requested string, diagnostics []string) (*theme.Styles, []string) {
	name := requested
	if name == "" {
		name = theme.DefaultName
	}
	styles, resolved := theme.Resolve(name)
	events.Config.Theme(requested, resolved)
	if resolved != name {
		msg := fmt.Sprintf("Unknown theme %q, using %s.", requested, resolved)
		logging.Warn(msg, zap.String("theme", requested))
		diagnostics = append(append([]string(nil), diagnostics...), msg)
	}
	return styles, diagnostics
}
