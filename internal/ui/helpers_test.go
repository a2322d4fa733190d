package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/ui/command"
	"github.com/charmbracelet/x/ansi"
)

type testPost struct {
	Title     string
	Subreddit string
	Name      string
	Selftext  string
	URL       string
	Media     bool
}

func listingJSON(t *testing.T, posts ...testPost) []byte {
	t.Helper()
	children := make([]map[string]interface{}, 0, len(posts))
	for _, p := range posts {
		data := map[string]interface{}{
			"title":                  p.Title,
			"permalink":              fmt.Sprintf("/r/%s/comments/%s/slug/", p.Subreddit, p.Name),
			"selftext":               p.Selftext,
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

func storyPosts(from, to int) []testPost {
	posts := make([]testPost, 0, to-from+1)
	for i := from; i <= to; i++ {
		posts = append(posts, testPost{
			Title:     fmt.Sprintf("Story %d", i),
			Subreddit: "news",
			Name:      fmt.Sprintf("t3_s%d", i),
			Selftext:  fmt.Sprintf("Body of story %d", i),
		})
	}
	return posts
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// newTestHarness wires a model against real HTTP plumbing with pacing off.
func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	if opts.Engine == nil {
		opts.Engine = feed.NewEngine(feed.NewHTTPSource(feed.WithLimiter(nil)), feed.NewCache())
	}
	if opts.Images == nil {
		opts.Images = feed.NewImageLoader()
	}
	if opts.Bus == nil {
		opts.Bus = command.New(backend.NewRunner())
	}
	if opts.Width == 0 {
		opts.Width = 100
	}
	if opts.Height == 0 {
		opts.Height = 30
	}
	t.Cleanup(opts.Bus.Stop)
	return NewHarness(NewModel(opts))
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func assertContains(t *testing.T, view, want string) {
	t.Helper()
	if !strings.Contains(view, want) {
		t.Fatalf("expected view to contain %q, got:\n%s", want, view)
	}
}

func assertNotContains(t *testing.T, view, unwanted string) {
	t.Helper()
	if strings.Contains(view, unwanted) {
		t.Fatalf("expected view not to contain %q, got:\n%s", unwanted, view)
	}
}

const atomListing = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>news</title>
  <entry>
    <title>Atom one</title>
    <link href="https://www.reddit.com/r/news/comments/1/atom_one/"/>
    <category term="news" label="r/news"/>
    <content type="html"><![CDATA[<p>first body</p> submitted by <a href="https://www.reddit.com/user/x">x</a>]]></content>
  </entry>
  <entry>
    <title>Atom two</title>
    <link href="https://www.reddit.com/r/news/comments/2/atom_two/"/>
    <category term="news" label="r/news"/>
    <content type="html"><![CDATA[<p>second body</p>]]></content>
  </entry>
</feed>`
