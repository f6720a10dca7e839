package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-audit/pkg/models"
)

func TestBuildList(t *testing.T) {
	const reference = "https://neilpatel.com/"

	t.Run("reference appended", func(t *testing.T) {
		list := BuildList([]string{"https://a.com", "https://b.com"}, reference, 4)
		require.Len(t, list, 3)
		assert.Equal(t, reference, list[2])
	})

	t.Run("reference not duplicated", func(t *testing.T) {
		list := BuildList([]string{"https://a.com", "https://neilpatel.com/blog"}, reference, 4)
		assert.Len(t, list, 2)
	})

	t.Run("capped at max", func(t *testing.T) {
		list := BuildList([]string{"https://a.com", "https://b.com", "https://c.com", "https://d.com"}, reference, 4)
		assert.Len(t, list, 4)
		assert.NotContains(t, list, reference)
	})

	t.Run("empty input yields reference only", func(t *testing.T) {
		list := BuildList(nil, reference, 4)
		require.Len(t, list, 1)
		assert.Equal(t, reference, list[0])
	})
}

func TestFillUniqueKeywords(t *testing.T) {
	analyses := []models.CompetitorKeywordAnalysis{
		{CompetitorURL: "https://a.com", TopKeywords: []string{"plumbing", "drain cleaning", "water heater"}},
	}
	siteKeywords := []models.KeywordData{{Keyword: "plumbing"}}

	FillUniqueKeywords(analyses, siteKeywords)

	assert.Equal(t, []string{"drain cleaning", "water heater"}, analyses[0].UniqueKeywords)
}

func TestSuggestions(t *testing.T) {
	siteKeywords := []models.KeywordData{{Keyword: "plumbing"}}
	analyses := []models.CompetitorKeywordAnalysis{
		{CompetitorURL: "https://a.com", TopKeywords: []string{"plumbing", "drain cleaning", "water heater"}},
		{CompetitorURL: "https://b.com", TopKeywords: []string{"drain cleaning", "sewer repair"}},
		{CompetitorURL: "https://c.com", TopKeywords: []string{"drain cleaning"}},
	}
	cfg := models.AnalysisConfig{GeographicScope: models.ScopeNational}

	suggestions := Suggestions(siteKeywords, analyses, cfg)
	require.Len(t, suggestions, 3)

	// Most-adopted gap first
	assert.Equal(t, "drain cleaning", suggestions[0].Keyword)
	assert.Equal(t, "hard", suggestions[0].EstimatedDifficulty)
	assert.Equal(t, "Used by 3 competitors - proven national keyword", suggestions[0].Reason)
	assert.Len(t, suggestions[0].CompetitorsUsing, 3)

	// Single-competitor gaps are easy, ties broken alphabetically
	assert.Equal(t, "sewer repair", suggestions[1].Keyword)
	assert.Equal(t, "easy", suggestions[1].EstimatedDifficulty)
	assert.Equal(t, "Competitor advantage - b.com ranks for this", suggestions[1].Reason)
	assert.Equal(t, "water heater", suggestions[2].Keyword)
}

func TestSuggestions_MediumDifficulty(t *testing.T) {
	analyses := []models.CompetitorKeywordAnalysis{
		{CompetitorURL: "https://a.com", TopKeywords: []string{"drain cleaning"}},
		{CompetitorURL: "https://b.com", TopKeywords: []string{"drain cleaning"}},
	}
	suggestions := Suggestions(nil, analyses, models.AnalysisConfig{GeographicScope: models.ScopeNational})

	require.Len(t, suggestions, 1)
	assert.Equal(t, "medium", suggestions[0].EstimatedDifficulty)
}

func TestSuggestions_GeographicSuffix(t *testing.T) {
	analyses := []models.CompetitorKeywordAnalysis{
		{CompetitorURL: "https://a.com", TopKeywords: []string{"drain cleaning"}},
	}

	t.Run("regional", func(t *testing.T) {
		cfg := models.AnalysisConfig{GeographicScope: models.ScopeRegional, TargetLocation: "Denver"}
		suggestions := Suggestions(nil, analyses, cfg)
		require.Len(t, suggestions, 1)
		assert.Contains(t, suggestions[0].Reason, "Consider localizing for Denver")
	})

	t.Run("state", func(t *testing.T) {
		cfg := models.AnalysisConfig{GeographicScope: models.ScopeState, TargetLocation: "Colorado"}
		suggestions := Suggestions(nil, analyses, cfg)
		require.Len(t, suggestions, 1)
		assert.Contains(t, suggestions[0].Reason, "Target Colorado specifically")
	})

	t.Run("no location no suffix", func(t *testing.T) {
		cfg := models.AnalysisConfig{GeographicScope: models.ScopeRegional}
		suggestions := Suggestions(nil, analyses, cfg)
		require.Len(t, suggestions, 1)
		assert.NotContains(t, suggestions[0].Reason, "localizing")
	})
}

func TestGaps(t *testing.T) {
	analyses := []models.CompetitorKeywordAnalysis{
		{UniqueKeywords: []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7"}},
		{UniqueKeywords: []string{"k3", "k8"}},
	}

	gaps := Gaps(analyses)

	// First 5 per competitor, deduplicated
	assert.Equal(t, []string{"k1", "k2", "k3", "k4", "k5", "k8"}, gaps)
}

func TestGaps_Cap(t *testing.T) {
	var analyses []models.CompetitorKeywordAnalysis
	for i := 0; i < 6; i++ {
		unique := make([]string, 5)
		for j := range unique {
			unique[j] = string(rune('a'+i)) + string(rune('0'+j))
		}
		analyses = append(analyses, models.CompetitorKeywordAnalysis{UniqueKeywords: unique})
	}

	gaps := Gaps(analyses)
	assert.Len(t, gaps, gapLimit)
}
