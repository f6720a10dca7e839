package keywords

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"seo-audit/pkg/extract"
	"seo-audit/pkg/fetch"
	"seo-audit/pkg/models"
)

const (
	competitorKeywordLimit = 50
	suggestionLimit        = 15
	gapsPerCompetitor      = 5
	gapLimit               = 20
)

// CompetitorAnalyzer fetches competitor homepages and profiles their keywords
type CompetitorAnalyzer struct {
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	log       *logrus.Entry
}

// NewCompetitorAnalyzer creates a CompetitorAnalyzer
func NewCompetitorAnalyzer(fetcher *fetch.Fetcher, extractor *extract.Extractor, log *logrus.Logger) *CompetitorAnalyzer {
	return &CompetitorAnalyzer{
		fetcher:   fetcher,
		extractor: extractor,
		log:       log.WithField("component", "competitors"),
	}
}

// BuildList assembles the competitor URLs to analyze: user-specified ones
// first, then the reference site for methodology comparison if absent,
// capped at max
func BuildList(userCompetitors []string, reference string, max int) []string {
	list := append([]string{}, userCompetitors...)

	refHost := reference
	if parsed, err := url.Parse(reference); err == nil && parsed.Hostname() != "" {
		refHost = parsed.Hostname()
	}
	hasReference := false
	for _, c := range list {
		if strings.Contains(c, refHost) {
			hasReference = true
			break
		}
	}
	if !hasReference {
		list = append(list, reference)
	}

	if len(list) > max {
		list = list[:max]
	}
	return list
}

// Analyze fetches one competitor homepage and profiles its keywords
// Returns nil (not an error) when the competitor is unreachable; only
// context errors propagate
func (ca *CompetitorAnalyzer) Analyze(ctx context.Context, competitorURL string) (*models.CompetitorKeywordAnalysis, error) {
	compLog := ca.log.WithField("competitor_url", competitorURL)
	compLog.Info("Analyzing competitor keywords")

	page, err := ca.fetcher.FetchPage(ctx, competitorURL)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		compLog.Warnf("Failed to fetch competitor: %v", err)
		return nil, nil
	}

	signals, err := ca.extractor.Extract(competitorURL, page.StatusCode, page.Body)
	if err != nil {
		compLog.Warnf("Failed to parse competitor page: %v", err)
		return nil, nil
	}

	keywords := AnalyzePage(signals, extract.KeywordText(page.Body))
	top := TopKeywords(keywords)
	if len(keywords) > competitorKeywordLimit {
		keywords = keywords[:competitorKeywordLimit]
	}

	return &models.CompetitorKeywordAnalysis{
		CompetitorURL:  competitorURL,
		Keywords:       keywords,
		TopKeywords:    top,
		UniqueKeywords: []string{},
	}, nil
}

// FillUniqueKeywords marks, per competitor, the top keywords the audited
// site does not rank for at all
func FillUniqueKeywords(analyses []models.CompetitorKeywordAnalysis, siteKeywords []models.KeywordData) {
	siteSet := make(map[string]bool, len(siteKeywords))
	for _, k := range siteKeywords {
		siteSet[k.Keyword] = true
	}
	for i := range analyses {
		unique := []string{}
		for _, k := range analyses[i].TopKeywords {
			if !siteSet[k] {
				unique = append(unique, k)
			}
		}
		analyses[i].UniqueKeywords = unique
	}
}

// Suggestions ranks gap keywords by how many competitors use them
// Difficulty rises with competitor adoption: 3+ hard, 2 medium, 1 easy
func Suggestions(siteKeywords []models.KeywordData, analyses []models.CompetitorKeywordAnalysis, cfg models.AnalysisConfig) []models.KeywordSuggestion {
	siteSet := make(map[string]bool, len(siteKeywords))
	for _, k := range siteKeywords {
		siteSet[k.Keyword] = true
	}

	usedBy := make(map[string][]string)
	for _, analysis := range analyses {
		host := analysis.CompetitorURL
		if parsed, err := url.Parse(analysis.CompetitorURL); err == nil && parsed.Hostname() != "" {
			host = parsed.Hostname()
		}
		for _, keyword := range analysis.TopKeywords {
			if !siteSet[keyword] {
				usedBy[keyword] = append(usedBy[keyword], host)
			}
		}
	}

	type gap struct {
		keyword     string
		competitors []string
	}
	gaps := make([]gap, 0, len(usedBy))
	for keyword, competitors := range usedBy {
		gaps = append(gaps, gap{keyword, competitors})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		if len(gaps[i].competitors) != len(gaps[j].competitors) {
			return len(gaps[i].competitors) > len(gaps[j].competitors)
		}
		return gaps[i].keyword < gaps[j].keyword
	})
	if len(gaps) > suggestionLimit {
		gaps = gaps[:suggestionLimit]
	}

	suggestions := make([]models.KeywordSuggestion, 0, len(gaps))
	for _, g := range gaps {
		difficulty := "easy"
		if len(g.competitors) >= 3 {
			difficulty = "hard"
		} else if len(g.competitors) >= 2 {
			difficulty = "medium"
		}

		var reason string
		if len(g.competitors) >= 2 {
			reason = fmt.Sprintf("Used by %d competitors - proven %s keyword", len(g.competitors), cfg.GeographicScope)
		} else {
			reason = fmt.Sprintf("Competitor advantage - %s ranks for this", g.competitors[0])
		}
		if cfg.GeographicScope == models.ScopeRegional && cfg.TargetLocation != "" {
			reason += fmt.Sprintf(". Consider localizing for %s", cfg.TargetLocation)
		} else if cfg.GeographicScope == models.ScopeState && cfg.TargetLocation != "" {
			reason += fmt.Sprintf(". Target %s specifically", cfg.TargetLocation)
		}

		suggestions = append(suggestions, models.KeywordSuggestion{
			Keyword:             g.keyword,
			Reason:              reason,
			CompetitorsUsing:    g.competitors,
			EstimatedDifficulty: difficulty,
		})
	}
	return suggestions
}

// Gaps collects the first five unique keywords of each competitor into a
// deduplicated list, capped at twenty
func Gaps(analyses []models.CompetitorKeywordAnalysis) []string {
	gaps := []string{}
	seen := make(map[string]bool)
	for _, analysis := range analyses {
		unique := analysis.UniqueKeywords
		if len(unique) > gapsPerCompetitor {
			unique = unique[:gapsPerCompetitor]
		}
		for _, keyword := range unique {
			if !seen[keyword] {
				seen[keyword] = true
				gaps = append(gaps, keyword)
			}
		}
	}
	if len(gaps) > gapLimit {
		gaps = gaps[:gapLimit]
	}
	return gaps
}
