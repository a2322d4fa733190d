package feed

import (
	"errors"
	"fmt"
)

var (
	// ErrPaginationUnsupported is returned by LoadMore for RSS feeds.
	ErrPaginationUnsupported = errors.New("feed does not support pagination")
	// ErrNotLoaded is returned by LoadMore before any page was fetched.
	ErrNotLoaded = errors.New("feed has not been loaded")
	// ErrNoMorePages is returned by LoadMore once the cursor is exhausted.
	ErrNoMorePages = errors.New("no more pages")
	// ErrResponseTooLarge is wrapped by FetchError when a body exceeds the
	// read limit.
	ErrResponseTooLarge = errors.New("response too large")
)

// FetchError reports an HTTP status or transport failure. StatusCode is zero
// when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Reason     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
	}
	return fmt.Sprintf("fetch %s: status code %d (%s)", e.URL, e.StatusCode, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a malformed feed body.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s feed: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ImageError reports a failed or timed out image download.
type ImageError struct {
	URL string
	Err error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.URL, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }
