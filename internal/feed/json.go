package feed

import (
	"encoding/json"
	"net/url"

	"github.com/samber/lo"
)

const redditBaseURL = "https://www.reddit.com"

type listing struct {
	Data struct {
		Children []listingChild `json:"children"`
	} `json:"data"`
}

type listingChild struct {
	Data listingPost `json:"data"`
}

type listingPost struct {
	Title               string  `json:"title"`
	Permalink           string  `json:"permalink"`
	SelftextHTML        *string `json:"selftext_html"`
	Selftext            string  `json:"selftext"`
	Subreddit           string  `json:"subreddit"`
	URLOverriddenByDest string  `json:"url_overridden_by_dest"`
	IsRedditMediaDomain bool    `json:"is_reddit_media_domain"`
	Name                string  `json:"name"`
}

func parseJSON(body []byte) ([]Post, error) {
	var doc listing
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}
	return lo.Map(doc.Data.Children, func(child listingChild, _ int) Post {
		return child.Data.post()
	}), nil
}

func (p listingPost) post() Post {
	post := Post{
		Title:           p.Title,
		PostURL:         permalinkURL(p.Permalink),
		Subreddit:       p.Subreddit,
		ContentClean:    p.Selftext,
		ExternalURL:     p.URLOverriddenByDest,
		PaginationToken: p.Name,
	}
	if p.SelftextHTML != nil {
		post.ContentRaw = *p.SelftextHTML
	}
	if p.IsRedditMediaDomain {
		post.ImageURL = p.URLOverriddenByDest
	}
	return post
}

func permalinkURL(permalink string) string {
	if permalink == "" {
		return ""
	}
	base, _ := url.Parse(redditBaseURL)
	ref, err := url.Parse(permalink)
	if err != nil {
		return redditBaseURL + permalink
	}
	return base.ResolveReference(ref).String()
}
