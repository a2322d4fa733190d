package ui

import (
	"context"
	"strings"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"github.com/Eatkin/reddit-cli/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	customEntryID    = "custom-subreddit"
	customEntryLabel = "Enter custom subreddit"
)

var banner = []string{
	`               _     _ _ _            _ _ `,
	` _ __ ___  __| | __| (_) |_      ___| (_)`,
	`| '__/ _ \/ _' |/ _' | | __|___ / __| | |`,
	`| | |  __/ (_| | (_| | | ||___| (__| | |`,
	`|_|  \___|\__,_|\__,_|_|\__|    \___|_|_|`,
}

type feedListScreen struct {
	env         *env
	id          string
	level       *state.Level
	diagnostics []string
}

func newFeedListScreen(e *env, diagnostics []string) *feedListScreen {
	items := lo.Map(e.feeds, func(f feed.Feed, _ int) state.Item {
		return state.Item{ID: f.URL, Label: f.Name}
	})
	items = append(items, state.Item{ID: customEntryID, Label: customEntryLabel})
	id := e.nextID("feed-list")
	return &feedListScreen{
		env:         e,
		id:          id,
		level:       state.NewLevel(id, "Feeds", items),
		diagnostics: append([]string(nil), diagnostics...),
	}
}

func (s *feedListScreen) ID() string { return s.id }

func (s *feedListScreen) OnEnter(context.Context) tea.Cmd { return nil }

func (s *feedListScreen) OnExit() {}

func (s *feedListScreen) Apply(backend.Result) tea.Cmd { return nil }

func (s *feedListScreen) visibleRows() int {
	return s.env.bodyHeight() - len(banner) - 1
}

func (s *feedListScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	keys := s.env.keys
	if navigateList(s.env, s.id, s.level, msg, s.visibleRows()) {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return s.env.stack.Pop()
	case key.Matches(msg, keys.Enter):
		item, ok := s.level.Selected()
		if !ok {
			return nil
		}
		events.UI.Select(s.id, item.ID, item.Label)
		if item.ID == customEntryID {
			return s.env.stack.Push(newCustomSubredditScreen(s.env))
		}
		return s.env.stack.Push(newPostListScreen(s.env, s.env.feeds[s.level.Cursor]))
	}
	return nil
}

func (s *feedListScreen) Render(width, height int) Frame {
	header := append(textLines(strings.Join(banner, "\n"), s.env.styles.Banner), styledLine{})
	return Frame{
		Header: header,
		Lines:  listLines(s.env, s.level, height-len(header), width),
		Status: strings.Join(s.diagnostics, "; "),
		Help:   []key.Binding{s.env.keys.Down, s.env.keys.Up, s.env.keys.Enter, s.env.keys.Quit},
	}
}
