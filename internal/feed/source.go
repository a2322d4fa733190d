package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultFetchTimeout bounds a single feed request end to end.
const DefaultFetchTimeout = 10 * time.Second

const maxFeedBytes = 8 << 20

// Request names one page of a feed.
type Request struct {
	URL      string
	Cursor   string
	PageSize int
}

// Source fetches and parses one page of posts.
type Source interface {
	Fetch(ctx context.Context, req Request) ([]Post, error)
}

// HTTPSource is the Source backed by plain GET requests.
type HTTPSource struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent func() string
}

// SourceOption customises an HTTPSource.
type SourceOption func(*HTTPSource)

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) SourceOption {
	return func(s *HTTPSource) {
		if client != nil {
			s.client = client
		}
	}
}

// WithFetchTimeout sets the client timeout.
func WithFetchTimeout(timeout time.Duration) SourceOption {
	return func(s *HTTPSource) {
		if timeout > 0 {
			s.client.Timeout = timeout
		}
	}
}

// WithLimiter replaces the request pacing limiter. A nil limiter disables pacing.
func WithLimiter(limiter *rate.Limiter) SourceOption {
	return func(s *HTTPSource) {
		s.limiter = limiter
	}
}

// WithUserAgentPicker overrides how the User-Agent header is chosen.
func WithUserAgentPicker(pick func() string) SourceOption {
	return func(s *HTTPSource) {
		if pick != nil {
			s.userAgent = pick
		}
	}
}

// NewHTTPSource builds a source with a bounded client and gentle pacing.
func NewHTTPSource(opts ...SourceOption) *HTTPSource {
	s := &HTTPSource{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		limiter:   rate.NewLimiter(rate.Every(500*time.Millisecond), 3),
		userAgent: RandomUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch issues exactly one GET for req and parses the body according to the
// URL's format. Failures are never retried here.
func (s *HTTPSource) Fetch(ctx context.Context, req Request) ([]Post, error) {
	target, err := RequestURL(req.URL, req.Cursor, req.PageSize)
	if err != nil {
		return nil, &FetchError{URL: req.URL, Reason: err.Error(), Err: err}
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{URL: target, Reason: err.Error(), Err: err}
		}
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, Reason: err.Error(), Err: err}
	}
	httpReq.Header.Set("User-Agent", s.userAgent())

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &FetchError{URL: target, Reason: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		reason := http.StatusText(resp.StatusCode)
		if reason == "" {
			reason = resp.Status
		}
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode, Reason: reason}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes+1))
	if err != nil {
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode, Reason: fmt.Sprintf("read body: %v", err), Err: err}
	}
	if len(body) > maxFeedBytes {
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode, Reason: "response too large", Err: ErrResponseTooLarge}
	}
	return Parse(FormatFor(req.URL), body)
}

// Parse turns a raw body into posts.
func Parse(format Format, body []byte) ([]Post, error) {
	if format == FormatRSS {
		return parseRSS(body)
	}
	return parseJSON(body)
}
