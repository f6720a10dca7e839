package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// countWords estimates the visible word count of the page body
// Script and style content is stripped first; whitespace runs collapse to
// single separators so markup structure does not inflate the count
func countWords(doc *goquery.Document) int {
	body := doc.Find("body")
	if body.Length() == 0 {
		return 0
	}

	clone := body.Clone()
	clone.Find("script, style, noscript").Remove()

	text := clone.Text()
	return len(strings.Fields(text))
}

// KeywordText returns the page's prose for keyword analysis: body text
// with scripts, styles, and chrome (nav, header, footer) removed, since
// navigation labels would otherwise dominate the frequency counts
func KeywordText(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	bodySel := doc.Find("body")
	if bodySel.Length() == 0 {
		return ""
	}

	clone := bodySel.Clone()
	clone.Find("script, style, noscript, nav, footer, header").Remove()

	return strings.Join(strings.Fields(clone.Text()), " ")
}
