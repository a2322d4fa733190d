package feed

import (
	"context"

	"github.com/Eatkin/reddit-cli/internal/logging/events"
)

// Engine couples a Source with a Cache. It is the only writer of the cache.
type Engine struct {
	source   Source
	cache    *Cache
	pageSize int
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithPageSize sets the limit sent on every request.
func WithPageSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.pageSize = n
		}
	}
}

// NewEngine wires source and cache. A nil cache gets a private one.
func NewEngine(source Source, cache *Cache, opts ...EngineOption) *Engine {
	if cache == nil {
		cache = NewCache()
	}
	e := &Engine{source: source, cache: cache, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GetOrFetch returns cached posts for rawURL without touching the network
// unless forceReload is set or nothing is cached. A fetch replaces the entry,
// pagination position included.
func (e *Engine) GetOrFetch(ctx context.Context, rawURL string, forceReload bool) ([]Post, error) {
	id, err := CanonicalIdentity(rawURL)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Reason: err.Error(), Err: err}
	}
	if !forceReload {
		if entry, ok := e.cache.Get(id); ok {
			events.Feed.CacheHit(id.String(), len(entry.Posts))
			return entry.Posts, nil
		}
	}
	events.Feed.Fetch(rawURL, "", e.pageSize)
	posts, err := e.source.Fetch(ctx, Request{URL: rawURL, PageSize: e.pageSize})
	if err != nil {
		events.Feed.Error(rawURL, err)
		return nil, err
	}
	entry := e.cache.Replace(id, posts)
	events.Feed.Replace(id.String(), len(entry.Posts))
	return entry.Posts, nil
}

// CanLoadMore reports whether LoadMore would issue a request.
func (e *Engine) CanLoadMore(rawURL string) bool {
	_, _, err := e.nextPage(rawURL)
	return err == nil
}

// LoadMore fetches the page after the stored cursor, appends it and returns
// only the new posts. It makes no request when the feed is RSS, has not been
// loaded, or is exhausted.
func (e *Engine) LoadMore(ctx context.Context, rawURL string) ([]Post, error) {
	id, cursor, err := e.nextPage(rawURL)
	if err != nil {
		return nil, err
	}
	events.Feed.Fetch(rawURL, cursor, e.pageSize)
	posts, err := e.source.Fetch(ctx, Request{URL: rawURL, Cursor: cursor, PageSize: e.pageSize})
	if err != nil {
		events.Feed.Error(rawURL, err)
		return nil, err
	}
	entry := e.cache.Append(id, posts)
	events.Feed.LoadMore(id.String(), len(posts), len(entry.Posts))
	return clonePosts(posts), nil
}

func (e *Engine) nextPage(rawURL string) (Identity, string, error) {
	id, err := CanonicalIdentity(rawURL)
	if err != nil {
		return "", "", &FetchError{URL: rawURL, Reason: err.Error(), Err: err}
	}
	if !FormatFor(rawURL).Paginated() {
		events.Feed.Skip(id.String(), events.FeedSkipUnsupported)
		return id, "", ErrPaginationUnsupported
	}
	entry, ok := e.cache.Get(id)
	if !ok {
		events.Feed.Skip(id.String(), events.FeedSkipNotLoaded)
		return id, "", ErrNotLoaded
	}
	if !entry.HasMore() {
		events.Feed.Skip(id.String(), events.FeedSkipExhausted)
		return id, "", ErrNoMorePages
	}
	return id, entry.Cursor, nil
}
