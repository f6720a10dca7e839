package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// jsonLDSummary is the aggregate over all ld+json blocks on one page
type jsonLDSummary struct {
	blocks           int // script blocks found
	parsed           int // blocks that parsed as JSON
	types            []string
	hasLocalBusiness bool
	hasProduct       bool
}

// Schema.org types that signal a local-business presence. Matching is by
// exact name plus a substring check for LocalBusiness subtypes
var localBusinessTypes = map[string]bool{
	"LocalBusiness":    true,
	"Organization":     true,
	"Store":            true,
	"Restaurant":       true,
	"Hotel":            true,
	"MedicalBusiness":  true,
	"LegalService":     true,
	"RealEstateAgent":  true,
	"FinancialService": true,
}

var productTypes = map[string]bool{
	"Product":        true,
	"ProductGroup":   true,
	"Offer":          true,
	"AggregateOffer": true,
	"ItemList":       true,
}

// parseJSONLD collects schema types from every ld+json block on the page
// Each block parses independently: one malformed block never hides the rest
func parseJSONLD(doc *goquery.Document, log *logrus.Entry) jsonLDSummary {
	summary := jsonLDSummary{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		summary.blocks++

		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			log.Debugf("Skipping malformed JSON-LD block: %v", err)
			return
		}
		summary.parsed++
		collectSchemaTypes(parsed, &summary)
	})

	return summary
}

// collectSchemaTypes walks a parsed JSON-LD value gathering @type names,
// recursing into @graph arrays and top-level arrays
func collectSchemaTypes(node any, summary *jsonLDSummary) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			collectSchemaTypes(item, summary)
		}
	case map[string]any:
		if rawType, ok := v["@type"]; ok {
			switch t := rawType.(type) {
			case string:
				recordSchemaType(t, summary)
			case []any:
				for _, item := range t {
					if name, ok := item.(string); ok {
						recordSchemaType(name, summary)
					}
				}
			}
		}
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				collectSchemaTypes(item, summary)
			}
		}
	}
}

func recordSchemaType(name string, summary *jsonLDSummary) {
	summary.types = append(summary.types, name)
	if localBusinessTypes[name] || strings.Contains(name, "LocalBusiness") {
		summary.hasLocalBusiness = true
	}
	if productTypes[name] {
		summary.hasProduct = true
	}
}
