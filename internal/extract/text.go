package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// NormalizeHTML strips markup down to visible text and collapses all
// whitespace runs to single spaces. The result is the shared substrate
// for every downstream lookup; nothing re-parses markup after this.
// Unparseable input degrades to "" rather than an error.
func NormalizeHTML(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(visibleText(doc), " "))
}

// visibleText collects text nodes, skipping script/style-like subtrees.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
