package events

import "github.com/Eatkin/reddit-cli/internal/logging"

type FeedTracer struct{}

type ImageTracer struct{}

type feedSkipReason string

const (
	FeedSkipUnsupported feedSkipReason = "unsupported"
	FeedSkipNotLoaded   feedSkipReason = "not-loaded"
	FeedSkipExhausted   feedSkipReason = "exhausted"
)

var (
	Feed  = FeedTracer{}
	Image = ImageTracer{}
)

func (FeedTracer) Fetch(url, cursor string, pageSize int) {
	logging.Trace("feed.fetch", map[string]interface{}{"url": url, "after": cursor, "limit": pageSize})
}

func (FeedTracer) CacheHit(identity string, posts int) {
	logging.Trace("feed.cache-hit", map[string]interface{}{"identity": identity, "posts": posts})
}

func (FeedTracer) Replace(identity string, posts int) {
	logging.Trace("feed.replace", map[string]interface{}{"identity": identity, "posts": posts})
}

func (FeedTracer) LoadMore(identity string, added, total int) {
	logging.Trace("feed.load-more", map[string]interface{}{"identity": identity, "added": added, "total": total})
}

func (FeedTracer) Skip(identity string, reason feedSkipReason) {
	logging.Trace("feed.load-more.skip", map[string]interface{}{"identity": identity, "reason": string(reason)})
}

func (FeedTracer) Error(url string, err error) {
	if err == nil {
		return
	}
	logging.Trace("feed.error", map[string]interface{}{"url": url, "error": err.Error()})
}

func (ImageTracer) Load(url string, cached bool) {
	logging.Trace("image.load", map[string]interface{}{"url": url, "cached": cached})
}

func (ImageTracer) Result(url string, size int, err error) {
	payload := map[string]interface{}{"url": url, "bytes": size}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("image.result", payload)
}
