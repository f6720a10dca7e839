package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"seo-audit/pkg/models"
	"seo-audit/pkg/utils"
)

// Extractor builds PageSignals from fetched HTML
// Every field is extracted best-effort: a missing element leaves the zero
// value, only an unparseable document is an error
type Extractor struct {
	log *logrus.Entry
}

// NewExtractor creates an Extractor
func NewExtractor(log *logrus.Logger) *Extractor {
	return &Extractor{log: log.WithField("component", "extract")}
}

// Extract parses the HTML body and collects every page-level signal
func (e *Extractor) Extract(pageURL string, status int, body []byte) (*models.PageSignals, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: HTML parse for %s: %v", utils.ErrParsing, pageURL, err)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: URL %q: %v", utils.ErrParsing, pageURL, err)
	}

	signals := &models.PageSignals{
		URL:    pageURL,
		Status: status,
	}

	signals.Title = strings.TrimSpace(doc.Find("title").First().Text())
	signals.TitleLength = utf8.RuneCountInString(signals.Title)

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		signals.MetaDescription = strings.TrimSpace(desc)
		signals.MetaDescriptionLength = utf8.RuneCountInString(signals.MetaDescription)
	}

	h1s := doc.Find("h1")
	signals.H1Count = h1s.Length()
	if signals.H1Count > 0 {
		signals.H1Text = strings.TrimSpace(h1s.First().Text())
	}

	if canonical, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		signals.Canonical = strings.TrimSpace(canonical)
	}
	if robots, ok := doc.Find(`meta[name="robots"]`).First().Attr("content"); ok {
		signals.MetaRobots = strings.TrimSpace(robots)
	}

	signals.HasViewport = doc.Find(`meta[name="viewport"]`).Length() > 0

	if lang, ok := doc.Find("html").First().Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		signals.HasLang = true
		signals.LangValue = strings.TrimSpace(lang)
	}

	signals.HasOpenGraph = doc.Find(`meta[property^="og:"]`).Length() > 0
	signals.HasTwitterCards = doc.Find(`meta[name^="twitter:"]`).Length() > 0

	jsonLD := parseJSONLD(doc, e.log)
	signals.HasJSONLD = jsonLD.blocks > 0
	signals.JSONLDTypes = jsonLD.types
	signals.JSONLDBlocks = jsonLD.blocks
	signals.JSONLDParsed = jsonLD.parsed

	signals.WordCount = countWords(doc)

	internal, external := countLinks(doc, parsed.Hostname())
	signals.InternalLinks = internal
	signals.ExternalLinks = external

	signals.TotalImages, signals.ImagesWithoutAlt = countImages(doc)

	signals.Marketing = detectMarketing(string(body), jsonLD)

	e.log.WithFields(logrus.Fields{
		"url":        pageURL,
		"word_count": signals.WordCount,
		"h1_count":   signals.H1Count,
		"images":     signals.TotalImages,
	}).Debug("Extracted page signals")

	return signals, nil
}

// countImages counts <img> tags and how many lack meaningful alt text
// An empty alt attribute counts as missing: decorative images are rare
// enough on marketing pages that empty alts usually signal neglect
func countImages(doc *goquery.Document) (total, withoutAlt int) {
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		total++
		alt, exists := s.Attr("alt")
		if !exists || strings.TrimSpace(alt) == "" {
			withoutAlt++
		}
	})
	return total, withoutAlt
}
