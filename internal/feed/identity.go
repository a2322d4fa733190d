package feed

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the limit sent when a request does not name one.
const DefaultPageSize = 25

// Identity is a feed URL with query and fragment stripped. It keys the cache.
type Identity string

func (id Identity) String() string { return string(id) }

// Format identifies the body shape a feed URL serves.
type Format int

const (
	FormatJSON Format = iota
	FormatRSS
)

func (f Format) String() string {
	if f == FormatRSS {
		return "rss"
	}
	return "json"
}

// Paginated reports whether the format carries after cursors.
func (f Format) Paginated() bool {
	return f == FormatJSON
}

// CanonicalIdentity strips the volatile parts of raw so requests that differ
// only by limit, after or tracking parameters share a cache entry.
func CanonicalIdentity(raw string) (Identity, error) {
	u, err := parseFeedURL(raw)
	if err != nil {
		return "", err
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return Identity(u.String()), nil
}

// FormatFor selects the adapter variant from the URL shape.
func FormatFor(raw string) Format {
	target := raw
	if u, err := url.Parse(raw); err == nil {
		target = u.Path
	}
	if strings.Contains(target, ".rss") {
		return FormatRSS
	}
	return FormatJSON
}

// RequestURL returns raw with limit and, when cursor is set, after applied.
// Other query parameters are kept.
func RequestURL(raw, cursor string, pageSize int) (string, error) {
	u, err := parseFeedURL(raw)
	if err != nil {
		return "", err
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(pageSize))
	if cursor != "" {
		q.Set("after", cursor)
	} else {
		q.Del("after")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func parseFeedURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("feed url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("feed url %q must be absolute", raw)
	}
	return u, nil
}
