package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Eatkin/reddit-cli/internal/logging/events"
)

// DefaultImageTimeout bounds a single image download.
const DefaultImageTimeout = 5 * time.Second

const (
	defaultImageCacheSize = 32
	maxImageBytes         = 20 << 20
)

// ImageLoader downloads attached images and keeps recent ones in memory.
type ImageLoader struct {
	client  *http.Client
	timeout time.Duration
	cache   *lru.Cache[string, []byte]
}

// ImageOption customises an ImageLoader.
type ImageOption func(*ImageLoader)

// WithImageClient replaces the default client.
func WithImageClient(client *http.Client) ImageOption {
	return func(l *ImageLoader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithImageTimeout overrides DefaultImageTimeout.
func WithImageTimeout(timeout time.Duration) ImageOption {
	return func(l *ImageLoader) {
		if timeout > 0 {
			l.timeout = timeout
		}
	}
}

// NewImageLoader builds a loader with an LRU of recent downloads.
func NewImageLoader(opts ...ImageOption) *ImageLoader {
	cache, err := lru.New[string, []byte](defaultImageCacheSize)
	if err != nil {
		panic(fmt.Sprintf("image cache: %v", err))
	}
	l := &ImageLoader{
		client:  &http.Client{},
		timeout: DefaultImageTimeout,
		cache:   cache,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the bytes behind url. Every failure is an *ImageError.
func (l *ImageLoader) Load(ctx context.Context, url string) ([]byte, error) {
	if data, ok := l.cache.Get(url); ok {
		events.Image.Load(url, true)
		return data, nil
	}
	events.Image.Load(url, false)
	data, err := l.download(ctx, url)
	events.Image.Result(url, len(data), err)
	if err != nil {
		return nil, &ImageError{URL: url, Err: err}
	}
	l.cache.Add(url, data)
	return data, nil
}

func (l *ImageLoader) download(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty response")
	}
	return data, nil
}
