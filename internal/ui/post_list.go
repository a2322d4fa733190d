package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/format/table"
	"github.com/Eatkin/reddit-cli/internal/logging"
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"github.com/Eatkin/reddit-cli/internal/ui/command"
	"github.com/Eatkin/reddit-cli/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgNoMorePosts     = "No more posts to load."
	msgLoadUnsupported = "This feed does not support loading more posts."
	msgLoadOnLastPost  = "Load more is available on the last post."
)

// postColumns keeps rows appended later aligned with the first page.
var postColumns = []table.Column{{Width: 2}, {Width: 18}, {}}

type postListScreen struct {
	env   *env
	id    string
	feed  feed.Feed
	level *state.Level
	posts []feed.Post
	ctx   context.Context

	loading     bool
	loadingMore bool
	fetchErr    *feed.FetchError
	status      string
	statusErr   bool
}

func newPostListScreen(e *env, f feed.Feed) *postListScreen {
	id := e.nextID("post-list")
	return &postListScreen{
		env:   e,
		id:    id,
		feed:  f,
		level: state.NewLevel(id, f.Name, nil),
		ctx:   context.Background(),
	}
}

func (s *postListScreen) ID() string { return s.id }

// Busy reports whether a fetch is in flight.
func (s *postListScreen) Busy() bool { return s.loading || s.loadingMore }

func (s *postListScreen) OnEnter(ctx context.Context) tea.Cmd {
	s.ctx = ctx
	if len(s.posts) > 0 || s.loading {
		return nil
	}
	return s.fetch(false)
}

func (s *postListScreen) OnExit() {}

func (s *postListScreen) fetch(force bool) tea.Cmd {
	s.loading = true
	s.fetchErr = nil
	s.status, s.statusErr = "", false
	engine, url := s.env.engine, s.feed.URL
	_, cmd := s.env.bus.Execute(s.ctx, command.Request{
		Owner: s.id,
		Kind:  backend.KindFeed,
		Label: url,
		Work: func(ctx context.Context) (interface{}, error) {
			return engine.GetOrFetch(ctx, url, force)
		},
	})
	return cmd
}

func (s *postListScreen) loadMore() tea.Cmd {
	if !s.level.AtEnd() {
		s.status, s.statusErr = msgLoadOnLastPost, false
		return nil
	}
	if !feed.FormatFor(s.feed.URL).Paginated() {
		s.status, s.statusErr = msgLoadUnsupported, false
		return nil
	}
	if !s.env.engine.CanLoadMore(s.feed.URL) {
		s.status, s.statusErr = msgNoMorePosts, false
		return nil
	}
	s.loadingMore = true
	s.status, s.statusErr = "", false
	engine, url := s.env.engine, s.feed.URL
	_, cmd := s.env.bus.Execute(s.ctx, command.Request{
		Owner: s.id,
		Kind:  backend.KindLoadMore,
		Label: url,
		Work: func(ctx context.Context) (interface{}, error) {
			return engine.LoadMore(ctx, url)
		},
	})
	return cmd
}

func (s *postListScreen) Apply(res backend.Result) tea.Cmd {
	switch res.Kind {
	case backend.KindFeed:
		s.loading = false
		if res.Err != nil {
			s.setError(res.Err)
			return nil
		}
		posts, _ := res.Data.([]feed.Post)
		s.posts = posts
		s.level.SetItems(postItems(posts, 0))
	case backend.KindLoadMore:
		s.loadingMore = false
		if res.Err != nil {
			s.setLoadMoreError(res.Err)
			return nil
		}
		posts, _ := res.Data.([]feed.Post)
		if len(posts) == 0 {
			s.status = msgNoMorePosts
			return nil
		}
		s.level.AppendItems(postItems(posts, len(s.posts)))
		s.posts = append(s.posts, posts...)
	}
	return nil
}

func (s *postListScreen) setError(err error) {
	logging.Error(err)
	s.posts = nil
	s.level.SetItems(nil)
	var fetchErr *feed.FetchError
	if errors.As(err, &fetchErr) {
		s.fetchErr = fetchErr
		return
	}
	var parseErr *feed.ParseError
	if errors.As(err, &parseErr) {
		s.status, s.statusErr = fmt.Sprintf("Could not read %s feed: %v", parseErr.Format, parseErr.Err), true
		return
	}
	s.status, s.statusErr = err.Error(), true
}

func (s *postListScreen) setLoadMoreError(err error) {
	switch {
	case errors.Is(err, feed.ErrNoMorePages), errors.Is(err, feed.ErrNotLoaded):
		s.status, s.statusErr = msgNoMorePosts, false
	case errors.Is(err, feed.ErrPaginationUnsupported):
		s.status, s.statusErr = msgLoadUnsupported, false
	default:
		logging.Error(err)
		s.status, s.statusErr = "Failed to load more posts: "+err.Error(), true
	}
}

// postItems formats posts as list rows. offset numbers the row ids.
func postItems(posts []feed.Post, offset int) []state.Item {
	rows := make([][]string, len(posts))
	for i, p := range posts {
		rows[i] = []string{p.Kind().Emoji(), p.Subreddit, p.Title}
	}
	labels := table.Format(rows, postColumns)
	items := make([]state.Item, len(posts))
	for i := range posts {
		items[i] = state.Item{ID: fmt.Sprintf("post-%d", offset+i), Label: labels[i]}
	}
	return items
}

func (s *postListScreen) visibleRows() int {
	return s.env.bodyHeight() - 2
}

func (s *postListScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	keys := s.env.keys
	if key.Matches(msg, keys.Back) {
		return s.env.back()
	}
	if s.loading {
		return nil
	}
	if navigateList(s.env, s.id, s.level, msg, s.visibleRows()) {
		if s.status == msgLoadOnLastPost {
			s.status = ""
		}
		return nil
	}
	switch {
	case key.Matches(msg, keys.Refresh):
		// Only one fetch per feed may be in flight.
		if s.Busy() {
			return nil
		}
		return s.fetch(true)
	case key.Matches(msg, keys.LoadMore):
		if s.Busy() {
			return nil
		}
		return s.loadMore()
	case key.Matches(msg, keys.Enter):
		item, ok := s.level.Selected()
		if !ok {
			return nil
		}
		post := s.posts[s.level.Cursor]
		events.UI.Select(s.id, item.ID, post.Title)
		return s.env.stack.Push(newPostDetailScreen(s.env, post))
	}
	return nil
}

func (s *postListScreen) Render(width, height int) Frame {
	styles := s.env.styles
	frame := Frame{
		Header: []styledLine{
			{text: s.feed.Name, style: styles.Header},
			{},
		},
		Status:    s.status,
		StatusErr: s.statusErr,
		Help:      s.help(),
	}
	switch {
	case s.loading:
		frame.Loading = "Loading posts..."
	case s.fetchErr != nil:
		frame.Lines = []styledLine{{text: "Failed to load feed.", style: styles.Error}}
		if s.fetchErr.StatusCode > 0 {
			frame.Lines = append(frame.Lines, styledLine{text: fmt.Sprintf("Status code: %d", s.fetchErr.StatusCode), style: styles.Error})
		}
		if s.fetchErr.Reason != "" {
			frame.Lines = append(frame.Lines, styledLine{text: s.fetchErr.Reason, style: styles.Info})
		}
		frame.Lines = append(frame.Lines, styledLine{}, styledLine{text: "Press r to retry.", style: styles.Hint})
	case len(s.level.Items) == 0:
		frame.Lines = []styledLine{{text: "(no posts)", style: styles.Info}}
	default:
		visible := height - len(frame.Header)
		if s.loadingMore {
			frame.Loading = "Loading more posts..."
			visible--
		}
		frame.Lines = listLines(s.env, s.level, visible, width)
	}
	return frame
}

func (s *postListScreen) help() []key.Binding {
	keys := s.env.keys
	bindings := []key.Binding{keys.Down, keys.Up, keys.Enter, keys.Back, keys.Refresh}
	if s.level.AtEnd() && feed.FormatFor(s.feed.URL).Paginated() {
		bindings = append(bindings, keys.LoadMore)
	}
	return bindings
}
