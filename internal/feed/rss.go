package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
)

const unknownSubreddit = "Unknown"

func parseRSS(body []byte) ([]Post, error) {
	parsed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, &ParseError{Format: FormatRSS, Err: err}
	}
	return lo.Map(parsed.Items, func(item *gofeed.Item, _ int) Post {
		return postFromItem(item)
	}), nil
}

func postFromItem(item *gofeed.Item) Post {
	content := item.Content
	if content == "" {
		content = item.Description
	}
	subreddit := unknownSubreddit
	if len(item.Categories) > 0 {
		// Atom categories carry the label ("r/news") when one is present.
		if name := strings.TrimPrefix(item.Categories[0], "r/"); name != "" {
			subreddit = name
		}
	}
	return Post{
		Title:        item.Title,
		PostURL:      item.Link,
		Subreddit:    subreddit,
		ContentRaw:   content,
		ContentClean: CleanContent(content),
		ExternalURL:  ExternalURL(content),
		ImageURL:     ImageURL(content),
	}
}
