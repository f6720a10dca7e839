package keywords

import (
	"math"
	"sort"
	"strings"

	"seo-audit/pkg/models"
)

const (
	// minFrequency is the floor below which a keyword is noise
	minFrequency = 2

	siteKeywordLimit = 100
	topKeywordLimit  = 20
)

// AnalyzePage scores the keywords of one page from its visible body text
// Prominence (0-100) rewards placement: +30 in title, +25 in first H1,
// +20 in meta description, plus up to +25 from density
func AnalyzePage(page *models.PageSignals, bodyText string) []models.KeywordData {
	title := strings.ToLower(page.Title)
	h1 := strings.ToLower(page.H1Text)
	metaDesc := strings.ToLower(page.MetaDescription)

	combined := singleWordFrequencies(bodyText)
	for phrase, count := range ngramFrequencies(bodyText, 2) {
		if count >= minFrequency {
			combined[phrase] = count
		}
	}
	for phrase, count := range ngramFrequencies(bodyText, 3) {
		if count >= minFrequency {
			combined[phrase] = count
		}
	}

	totalWords := len(strings.Fields(bodyText))
	if totalWords == 0 {
		totalWords = 1
	}

	var result []models.KeywordData
	for keyword, frequency := range combined {
		if frequency < minFrequency {
			continue
		}
		density := float64(frequency) / float64(totalWords) * 100

		inTitle := strings.Contains(title, keyword)
		inH1 := strings.Contains(h1, keyword)
		inMetaDesc := strings.Contains(metaDesc, keyword)

		prominence := 0.0
		if inTitle {
			prominence += 30
		}
		if inH1 {
			prominence += 25
		}
		if inMetaDesc {
			prominence += 20
		}
		prominence += math.Min(25, density*10)

		result = append(result, models.KeywordData{
			Keyword:           keyword,
			Frequency:         frequency,
			Density:           math.Round(density*100) / 100,
			InTitle:           inTitle,
			InH1:              inH1,
			InMetaDescription: inMetaDesc,
			Prominence:        int(math.Min(100, math.Round(prominence))),
		})
	}

	sortByProminence(result)
	return result
}

// MergeSiteKeywords folds per-page keyword lists into one site-wide view.
// A keyword seen on several pages sums its frequencies and keeps its best
// prominence. Returns at most 100 keywords, best first
func MergeSiteKeywords(pageKeywords ...[]models.KeywordData) []models.KeywordData {
	merged := make(map[string]*models.KeywordData)
	for _, keywords := range pageKeywords {
		for _, k := range keywords {
			if existing, ok := merged[k.Keyword]; ok {
				existing.Frequency += k.Frequency
				if k.Prominence > existing.Prominence {
					existing.Prominence = k.Prominence
				}
			} else {
				copied := k
				merged[k.Keyword] = &copied
			}
		}
	}

	result := make([]models.KeywordData, 0, len(merged))
	for _, k := range merged {
		result = append(result, *k)
	}
	sortByProminence(result)

	if len(result) > siteKeywordLimit {
		result = result[:siteKeywordLimit]
	}
	return result
}

// TopKeywords returns the keyword strings of the best 20 entries
func TopKeywords(keywords []models.KeywordData) []string {
	limit := topKeywordLimit
	if len(keywords) < limit {
		limit = len(keywords)
	}
	top := make([]string, 0, limit)
	for _, k := range keywords[:limit] {
		top = append(top, k.Keyword)
	}
	return top
}

// sortByProminence orders best-first with deterministic tie-breaks so map
// iteration order never leaks into output
func sortByProminence(keywords []models.KeywordData) {
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Prominence != keywords[j].Prominence {
			return keywords[i].Prominence > keywords[j].Prominence
		}
		if keywords[i].Frequency != keywords[j].Frequency {
			return keywords[i].Frequency > keywords[j].Frequency
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})
}
