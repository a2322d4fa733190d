package feed

import (
	"errors"
	"strings"
	"testing"
)

func TestParseJSONListing(t *testing.T) {
	body := listingBody(t,
		listingFixture{Title: "Self post", Subreddit: "golang", Name: "t3_a", Selftext: "hello **world**"},
		listingFixture{Title: "Link post", Subreddit: "golang", Name: "t3_b", URL: "https://go.dev/blog"},
		listingFixture{Title: "Image post", Subreddit: "pics", Name: "t3_c", URL: "https://i.redd.it/x.png", Media: true},
	)
	posts, err := Parse(FormatJSON, body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	first := posts[0]
	if first.Title != "Self post" || first.Subreddit != "golang" {
		t.Fatalf("unexpected first post %+v", first)
	}
	if first.PostURL != "https://www.reddit.com/r/golang/comments/t3_a/slug/" {
		t.Fatalf("unexpected permalink %q", first.PostURL)
	}
	if first.ContentClean != "hello **world**" || first.ContentRaw != "" {
		t.Fatalf("unexpected content %+v", first)
	}
	if first.PaginationToken != "t3_a" {
		t.Fatalf("expected token t3_a, got %q", first.PaginationToken)
	}
	if first.Kind() != KindText {
		t.Fatalf("expected text kind")
	}
	if posts[1].ExternalURL != "https://go.dev/blog" || posts[1].ImageURL != "" {
		t.Fatalf("unexpected link post %+v", posts[1])
	}
	if posts[1].Kind().Emoji() != "🔗" {
		t.Fatalf("expected link emoji")
	}
	if posts[2].ImageURL != "https://i.redd.it/x.png" {
		t.Fatalf("expected image url, got %+v", posts[2])
	}
	if posts[2].Kind().Emoji() != "📷" {
		t.Fatalf("expected image emoji")
	}
}

func TestParseJSONWithoutDataIsEmpty(t *testing.T) {
	posts, err := Parse(FormatJSON, []byte(`{}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := Parse(FormatJSON, []byte(`{"data": [`))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Format != FormatJSON {
		t.Fatalf("expected json format, got %v", perr.Format)
	}
}

func TestParseRSSEntries(t *testing.T) {
	posts, err := Parse(FormatRSS, []byte(atomFeed))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	first := posts[0]
	if first.Title != "First post" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	if first.PostURL != "https://www.reddit.com/r/news/comments/abc/first_post/" {
		t.Fatalf("unexpected link %q", first.PostURL)
	}
	if first.Subreddit != "news" {
		t.Fatalf("expected subreddit news, got %q", first.Subreddit)
	}
	if first.ContentClean != "Body text here\n\nSecond paragraph" {
		t.Fatalf("unexpected clean content %q", first.ContentClean)
	}
	if first.ExternalURL != "https://example.com/story" {
		t.Fatalf("unexpected external url %q", first.ExternalURL)
	}
	if first.PaginationToken != "" {
		t.Fatalf("rss posts carry no token, got %q", first.PaginationToken)
	}

	second := posts[1]
	if second.Subreddit != unknownSubreddit {
		t.Fatalf("expected Unknown subreddit, got %q", second.Subreddit)
	}
	if second.ImageURL != "https://i.redd.it/pic.jpg" {
		t.Fatalf("unexpected image url %q", second.ImageURL)
	}
	if second.Kind() != KindImage {
		t.Fatalf("expected image kind")
	}
}

func TestParseRSSMalformed(t *testing.T) {
	_, err := Parse(FormatRSS, []byte("definitely not a feed"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestCleanContentCollapsesBlankLines(t *testing.T) {
	raw := "<div><p>One</p>\n\n\n<p>Two</p><pre>   code</pre></div> submitted by <a href=\"u\">me</a>"
	got := CleanContent(raw)
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("expected collapsed newlines, got %q", got)
	}
	if strings.Contains(got, "submitted") || strings.Contains(got, "me") {
		t.Fatalf("expected signature removed, got %q", got)
	}
	if !strings.HasPrefix(got, "One\n\nTwo") {
		t.Fatalf("unexpected clean text %q", got)
	}
}

func TestExternalURLSkipsRedditLinks(t *testing.T) {
	raw := `<a href="https://www.reddit.com/r/x/comments/1/">[link]</a>`
	if got := ExternalURL(raw); got != "" {
		t.Fatalf("expected reddit link dropped, got %q", got)
	}
	if got := ExternalURL(`<a href="https://example.org">[comments]</a>`); got != "" {
		t.Fatalf("expected only [link] anchors, got %q", got)
	}
	if got := ImageURL(""); got != "" {
		t.Fatalf("expected no image for empty content, got %q", got)
	}
}
