package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	linkPlaceholder = "[link]"
	signatureMarker = "submitted by"
)

var blankRun = regexp.MustCompile(`\n{3,}`)

// CleanContent reduces an HTML post body to readable text. The trailing
// "submitted by" signature block is dropped.
func CleanContent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	nodes, err := html.ParseFragment(strings.NewReader(raw), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return strings.TrimSpace(raw)
	}
	var parts []string
	for _, n := range nodes {
		collectText(n, &parts)
	}
	text := strings.Join(parts, "\n\n")
	if idx := strings.Index(text, signatureMarker); idx >= 0 {
		text = text[:idx]
	}
	lines := dedent(strings.Split(text, "\n"))
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	text = blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
		*parts = append(*parts, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

func dedent(lines []string) []string {
	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if common < 0 || indent < common {
			common = indent
		}
	}
	if common <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= common {
			out[i] = line[common:]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
	}
	return out
}

// ExternalURL returns the target of the "[link]" anchor unless it points
// back at reddit.
func ExternalURL(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	var href string
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) != linkPlaceholder {
			return true
		}
		href, _ = s.Attr("href")
		return false
	})
	if strings.Contains(href, "reddit.com") {
		return ""
	}
	return href
}

// ImageURL returns the src of the first image in raw.
func ImageURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return src
}
