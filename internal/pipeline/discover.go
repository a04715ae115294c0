package pipeline

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// detailLinkPattern is the heuristic for "this anchor points at a
// listing detail page": slug keywords, a ref/id parameter, or a long
// numeric identifier in the path.
var detailLinkPattern = regexp.MustCompile(`(?i)(annonce|fiche|ref|id=|\d{5,})`)

// DiscoverLinks harvests plausible detail-page links from a search
// results page. Relative hrefs are resolved against baseURL, links are
// kept only when they stay on the source's domain and look like detail
// pages, fragments are stripped and order-preserving deduplication is
// applied. At most max links are returned (0 means no cap).
func DiscoverLinks(page, baseURL, domain string, max int) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var links []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if max > 0 && len(links) >= max {
			return false
		}

		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		if base != nil {
			ref = base.ResolveReference(ref)
		}
		ref.Fragment = ""

		abs := ref.String()
		if !strings.Contains(abs, domain) || !detailLinkPattern.MatchString(abs) {
			return true
		}
		if _, dup := seen[abs]; dup {
			return true
		}
		seen[abs] = struct{}{}
		links = append(links, abs)
		return true
	})

	return links
}
