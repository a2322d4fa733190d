package ui

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxHints = 3

// DefaultRedditBase is where custom subreddit listings are fetched from.
const DefaultRedditBase = "https://www.reddit.com"

// ValidationError reports a subreddit name that cannot be used.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	if strings.TrimSpace(e.Input) == "" {
		return "Subreddit name cannot be empty."
	}
	return "Subreddit contains invalid characters."
}

// ValidateSubreddit accepts letters, digits, underscores and hyphens. The
// input is checked as typed; surrounding whitespace is rejected.
func ValidateSubreddit(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", &ValidationError{Input: input}
	}
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			continue
		}
		return "", &ValidationError{Input: input}
	}
	return input, nil
}

// SubredditURL is the JSON listing for a subreddit under base.
func SubredditURL(base, name string) string {
	if base == "" {
		base = DefaultRedditBase
	}
	return strings.TrimRight(base, "/") + "/r/" + name + "/.json"
}

type customSubredditScreen struct {
	env   *env
	id    string
	input textinput.Model
	err   error
	hints []string
}

func newCustomSubredditScreen(e *env) *customSubredditScreen {
	ti := textinput.New()
	ti.Placeholder = "subreddit"
	ti.Prompt = "r/"
	ti.CharLimit = 64
	ti.PromptStyle = *e.styles.InputPrompt
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &customSubredditScreen{
		env:   e,
		id:    e.nextID("custom-subreddit"),
		input: ti,
	}
}

func (s *customSubredditScreen) ID() string { return s.id }

func (s *customSubredditScreen) OnEnter(context.Context) tea.Cmd {
	return s.input.Focus()
}

func (s *customSubredditScreen) OnExit() {
	s.input.Blur()
}

func (s *customSubredditScreen) Apply(backend.Result) tea.Cmd { return nil }

func (s *customSubredditScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.env.keys.Cancel):
		return s.env.back()
	case key.Matches(msg, s.env.keys.Enter):
		name, err := ValidateSubreddit(s.input.Value())
		if err != nil {
			s.err = err
			events.UI.Validation(s.id, s.input.Value(), err)
			return nil
		}
		s.err = nil
		events.UI.Select(s.id, name, "r/"+name)
		return s.env.stack.Push(newPostListScreen(s.env, feed.Feed{Name: "r/" + name, URL: SubredditURL(s.env.redditBase, name)}))
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.err = nil
	s.hints = s.rankHints(s.input.Value())
	return cmd
}

// rankHints lists configured feeds that fuzzily match text.
func (s *customSubredditScreen) rankHints(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || len(s.env.feeds) == 0 {
		return nil
	}
	names := make([]string, len(s.env.feeds))
	for i, f := range s.env.feeds {
		names[i] = f.Name
	}
	ranks := fuzzy.RankFindFold(text, names)
	sort.Sort(ranks)
	hints := make([]string, 0, maxHints)
	for _, rank := range ranks {
		if len(hints) == maxHints {
			break
		}
		hints = append(hints, rank.Target)
	}
	return hints
}

func (s *customSubredditScreen) Render(width, height int) Frame {
	styles := s.env.styles
	lines := []styledLine{
		{text: s.input.View(), raw: true},
	}
	if s.err != nil {
		lines = append(lines, styledLine{}, styledLine{text: s.err.Error(), style: styles.Error})
	}
	if len(s.hints) > 0 {
		lines = append(lines, styledLine{}, styledLine{text: "Configured feeds: " + strings.Join(s.hints, ", "), style: styles.Hint})
	}
	return Frame{
		Header: []styledLine{
			{text: "Enter a subreddit name", style: styles.Header},
			{},
		},
		Lines: lines,
		Help:  []key.Binding{s.env.keys.Enter, s.env.keys.Cancel},
	}
}
