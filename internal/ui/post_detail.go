package ui

import (
	"context"
	"image"
	"strings"

	"github.com/Eatkin/reddit-cli/internal/backend"
	"github.com/Eatkin/reddit-cli/internal/feed"
	"github.com/Eatkin/reddit-cli/internal/logging"
	"github.com/Eatkin/reddit-cli/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const (
	msgImageLoading = "Loading image..."
	msgImageFailed  = "Failed to load image!!"

	defaultContentWidth = 80
	maxPreviewRows      = 24
)

type imageState int

const (
	imageNone imageState = iota
	imageLoading
	imageReady
	imageFailed
)

type postDetailScreen struct {
	env  *env
	id   string
	post feed.Post
	ctx  context.Context

	viewport viewport.Model
	width    int
	height   int
	body     string
	dirty    bool

	image    imageState
	imageErr error
	picture  image.Image
}

func newPostDetailScreen(e *env, post feed.Post) *postDetailScreen {
	return &postDetailScreen{
		env:      e,
		id:       e.nextID("post-detail"),
		post:     post,
		ctx:      context.Background(),
		viewport: viewport.New(0, 0),
		dirty:    true,
	}
}

func (s *postDetailScreen) ID() string { return s.id }

func (s *postDetailScreen) OnEnter(ctx context.Context) tea.Cmd {
	s.ctx = ctx
	if s.post.ImageURL == "" || s.image != imageNone {
		return nil
	}
	s.image = imageLoading
	s.dirty = true
	images, url := s.env.images, s.post.ImageURL
	_, cmd := s.env.bus.Execute(ctx, command.Request{
		Owner: s.id,
		Kind:  backend.KindImage,
		Label: url,
		Work: func(ctx context.Context) (interface{}, error) {
			data, err := images.Load(ctx, url)
			if err != nil {
				return nil, err
			}
			img, err := decodeImage(data)
			if err != nil {
				return nil, &feed.ImageError{URL: url, Err: err}
			}
			return img, nil
		},
	})
	return cmd
}

func (s *postDetailScreen) OnExit() {}

func (s *postDetailScreen) Apply(res backend.Result) tea.Cmd {
	if res.Kind != backend.KindImage {
		return nil
	}
	s.dirty = true
	if res.Err != nil {
		logging.Error(res.Err)
		s.image, s.imageErr = imageFailed, res.Err
		return nil
	}
	img, ok := res.Data.(image.Image)
	if !ok || img == nil {
		s.image = imageFailed
		return nil
	}
	s.image, s.picture = imageReady, img
	return nil
}

func (s *postDetailScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	keys := s.env.keys
	if key.Matches(msg, keys.Back) {
		return s.env.back()
	}
	s.layout(s.env.width, s.env.bodyHeight())
	switch {
	case key.Matches(msg, keys.Down):
		s.viewport.ScrollDown(1)
	case key.Matches(msg, keys.Up):
		s.viewport.ScrollUp(1)
	case key.Matches(msg, keys.HalfDown):
		s.viewport.HalfPageDown()
	case key.Matches(msg, keys.HalfUp):
		s.viewport.HalfPageUp()
	}
	return nil
}

// layout sizes the viewport and rebuilds its content when needed.
func (s *postDetailScreen) layout(width, height int) {
	if width <= 0 {
		width = defaultContentWidth
	}
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	if width != s.width {
		s.width = width
		s.body = ""
		s.dirty = true
	}
	if rows != s.height {
		s.height = rows
		s.viewport.Height = rows
	}
	s.viewport.Width = width
	if s.dirty {
		offset := s.viewport.YOffset
		s.viewport.SetContent(s.content())
		s.viewport.SetYOffset(offset)
		s.dirty = false
	}
}

func (s *postDetailScreen) content() string {
	styles := s.env.styles
	var b strings.Builder
	writeField := func(label, value string) {
		b.WriteString(styles.Label.Render(label))
		b.WriteString(styles.Link.Render(value))
		b.WriteString("\n")
	}
	writeField("Link to post: ", s.post.PostURL)
	if s.post.ImageURL != "" {
		writeField("Attached image URL: ", s.post.ImageURL)
	}
	if s.post.ExternalURL != "" {
		writeField("External link: ", s.post.ExternalURL)
	}
	b.WriteString("\n")
	if s.body == "" {
		s.body = renderBody(s.post.ContentClean, styles.Markdown, s.width)
	}
	b.WriteString(s.body)
	switch s.image {
	case imageLoading:
		b.WriteString("\n\n")
		b.WriteString(styles.Loading.Render(msgImageLoading))
	case imageFailed:
		b.WriteString("\n\n")
		b.WriteString(styles.Error.Render(msgImageFailed))
		if s.imageErr != nil {
			b.WriteString("\n")
			b.WriteString(styles.Info.Render(s.imageErr.Error()))
		}
	case imageReady:
		if preview := renderImagePreview(s.picture, s.width, maxPreviewRows); len(preview) > 0 {
			b.WriteString("\n\n")
			b.WriteString(strings.Join(preview, "\n"))
		}
	}
	return b.String()
}

// renderBody formats post text as markdown, falling back to plain wrapping.
func renderBody(text, style string, width int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "(no text content)"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := renderer.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return wordwrap.String(text, width)
}

func (s *postDetailScreen) Render(width, height int) Frame {
	s.layout(width, height)
	return Frame{
		Header: []styledLine{
			{text: s.post.Title, style: s.env.styles.Header},
			{},
		},
		Lines: rawLines(s.viewport.View()),
		Help:  []key.Binding{s.env.keys.Down, s.env.keys.Up, s.env.keys.HalfDown, s.env.keys.HalfUp, s.env.keys.Back},
	}
}
