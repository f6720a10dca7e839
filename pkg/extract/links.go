package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seo-audit/pkg/parse"
)

// countLinks tallies internal vs external anchors on the page
// Relative hrefs and fragments count as internal; absolute hrefs are
// internal when they mention the page's hostname
func countLinks(doc *goquery.Document, hostname string) (internal, external int) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		switch {
		case strings.HasPrefix(href, "/"), strings.HasPrefix(href, "#"):
			internal++
		case strings.Contains(href, hostname):
			internal++
		case strings.HasPrefix(href, "http"):
			external++
		}
	})
	return internal, external
}

// DiscoverInternalLinks resolves every anchor against the page URL and
// returns the normalized same-origin destinations, deduplicated and with
// fragments stripped. Non-http(s) schemes (mailto, tel, javascript) are
// skipped
func DiscoverInternalLinks(doc *goquery.Document, pageURL *url.URL, includeSubdomains bool) []string {
	seen := make(map[string]struct{})
	var links []string

	baseHost := strings.ToLower(pageURL.Hostname())

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}

		resolved, err := pageURL.Parse(href)
		if err != nil {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}

		host := strings.ToLower(resolved.Hostname())
		if !sameOrigin(host, baseHost, includeSubdomains) {
			return
		}

		normalized := parse.NormalizeURL(resolved)
		if _, dup := seen[normalized]; dup {
			return
		}
		seen[normalized] = struct{}{}
		links = append(links, normalized)
	})

	return links
}

func sameOrigin(host, baseHost string, includeSubdomains bool) bool {
	if host == baseHost {
		return true
	}
	// www and apex count as the same site in either direction
	if strings.TrimPrefix(host, "www.") == strings.TrimPrefix(baseHost, "www.") {
		return true
	}
	if includeSubdomains && strings.HasSuffix(host, "."+strings.TrimPrefix(baseHost, "www.")) {
		return true
	}
	return false
}
