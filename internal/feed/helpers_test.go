package feed

import (
	"encoding/json"
	"fmt"
	"testing"
)

type listingFixture struct {
	Title     string
	Subreddit string
	Name      string
	Selftext  string
	URL       string
	Media     bool
}

func listingBody(t *testing.T, posts ...listingFixture) []byte {
	t.Helper()
	children := make([]map[string]interface{}, 0, len(posts))
	for _, p := range posts {
		data := map[string]interface{}{
			"title":                  p.Title,
			"permalink":              fmt.Sprintf("/r/%s/comments/%s/slug/", p.Subreddit, p.Name),
			"selftext":               p.Selftext,
			"selftext_html":          nil,
			"subreddit":              p.Subreddit,
			"is_reddit_media_domain": p.Media,
			"name":                   p.Name,
		}
		if p.URL != "" {
			data["url_overridden_by_dest"] = p.URL
		}
		children = append(children, map[string]interface{}{"kind": "t3", "data": data})
	}
	body, err := json.Marshal(map[string]interface{}{
		"kind": "Listing",
		"data": map[string]interface{}{"children": children},
	})
	if err != nil {
		t.Fatalf("marshal listing: %v", err)
	}
	return body
}

func numberedPosts(prefix string, from, to int) []Post {
	posts := make([]Post, 0, to-from+1)
	for i := from; i <= to; i++ {
		posts = append(posts, Post{
			Title:           fmt.Sprintf("%s %d", prefix, i),
			Subreddit:       "news",
			PaginationToken: fmt.Sprintf("t3_%s%d", prefix, i),
		})
	}
	return posts
}

const atomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>news</title>
  <entry>
    <category term="news" label="r/news"/>
    <title>First post</title>
    <link href="https://www.reddit.com/r/news/comments/abc/first_post/"/>
    <id>t3_abc</id>
    <updated>2024-01-01T00:00:00+00:00</updated>
    <content type="html"><![CDATA[<!-- SC_OFF --><div class="md"><p>Body text here</p><p>Second paragraph</p></div><!-- SC_ON --> &#32; submitted by &#32; <a href="https://www.reddit.com/user/alice"> /u/alice </a> <br/> <span><a href="https://example.com/story">[link]</a></span> &#32; <span><a href="https://www.reddit.com/r/news/comments/abc/first_post/">[comments]</a></span>]]></content>
  </entry>
  <entry>
    <title>Picture post</title>
    <link href="https://www.reddit.com/r/pics/comments/def/picture_post/"/>
    <id>t3_def</id>
    <updated>2024-01-01T00:00:00+00:00</updated>
    <content type="html"><![CDATA[<table><tr><td><a href="https://www.reddit.com/r/pics/comments/def/"><img src="https://i.redd.it/pic.jpg" alt="Picture post"/></a></td><td> &#32; submitted by &#32; <a href="https://www.reddit.com/user/bob"> /u/bob </a> <br/> <span><a href="https://i.redd.it/pic.jpg">[link]</a></span></td></tr></table>]]></content>
  </entry>
</feed>`
