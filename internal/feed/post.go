package feed

// Feed is a named subscription.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Post is one submission parsed from a feed page. Empty strings mean the
// optional field is absent.
type Post struct {
	Title           string
	PostURL         string
	Subreddit       string
	ContentRaw      string
	ContentClean    string
	ExternalURL     string
	ImageURL        string
	PaginationToken string
}

// Kind classifies what a post mainly carries.
type Kind int

const (
	KindText Kind = iota
	KindLink
	KindImage
)

// Kind reports the post kind; an image wins over an external link.
func (p Post) Kind() Kind {
	switch {
	case p.ImageURL != "":
		return KindImage
	case p.ExternalURL != "":
		return KindLink
	default:
		return KindText
	}
}

// Emoji returns the row marker for the kind.
func (k Kind) Emoji() string {
	switch k {
	case KindImage:
		return "📷"
	case KindLink:
		return "🔗"
	default:
		return "📰"
	}
}

func clonePosts(posts []Post) []Post {
	if posts == nil {
		return nil
	}
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}
