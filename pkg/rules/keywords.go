package rules

import (
	"fmt"
	"math"
	"strings"

	"seo-audit/pkg/models"
)

func checkKeywordOptimization(in *Input) *models.Issue {
	if in.Keywords == nil || len(in.Keywords.SiteKeywords) == 0 {
		return nil
	}

	// Average prominence of the top ten keywords; divisor stays ten even
	// with fewer entries so sparse keyword sets read as weak optimization
	top := in.Keywords.SiteKeywords
	if len(top) > 10 {
		top = top[:10]
	}
	sum := 0
	for _, k := range top {
		sum += k.Prominence
	}
	avg := float64(sum) / 10

	if avg >= 30 {
		return nil
	}

	return &models.Issue{
		ID:           "low-keyword-optimization",
		Title:        "Low keyword optimization detected",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryKeywords,
		WhyItMatters: "Your pages have weak keyword presence in key areas (titles, H1s, meta descriptions). This reduces your visibility for relevant searches and limits organic traffic potential.",
		Evidence: []string{
			fmt.Sprintf("Average keyword prominence score: %d/100", int(math.Round(avg))),
			"Top keywords often missing from titles and H1s",
		},
		FixSteps: []string{
			"Identify your top 5-10 target keywords",
			"Include primary keyword in page titles",
			"Use primary keyword in H1 headings",
			"Add keywords naturally to meta descriptions",
			"Ensure keyword density of 1-2% in body content",
		},
		VerifySteps: []string{
			"Check titles contain target keywords",
			"Verify H1 tags include keywords",
			"Review keyword density in body content",
		},
	}
}

func checkKeywordGaps(in *Input) *models.Issue {
	if in.Keywords == nil || len(in.Keywords.KeywordGaps) < 5 {
		return nil
	}

	topGaps := in.Keywords.KeywordGaps
	if len(topGaps) > 5 {
		topGaps = topGaps[:5]
	}
	affected := make([]string, 0, len(in.Keywords.CompetitorAnalysis))
	for _, c := range in.Keywords.CompetitorAnalysis {
		affected = append(affected, c.CompetitorURL)
	}

	return &models.Issue{
		ID:           "keyword-gaps",
		Title:        fmt.Sprintf("%d keyword opportunities identified", len(in.Keywords.KeywordGaps)),
		Severity:     models.SeverityLow,
		Category:     models.CategoryKeywords,
		WhyItMatters: "Competitors are ranking for keywords you're not targeting. These represent potential traffic opportunities you're missing.",
		Evidence: []string{
			fmt.Sprintf("Top gap keywords: %s", strings.Join(topGaps, ", ")),
			fmt.Sprintf("%d competitor(s) analyzed", len(in.Keywords.CompetitorAnalysis)),
		},
		AffectedURLs: affected,
		FixSteps: []string{
			"Review the suggested keywords in the Keyword Analysis tab",
			"Create content targeting high-opportunity keywords",
			"Optimize existing pages for relevant gap keywords",
			"Build topic clusters around keyword themes",
		},
		VerifySteps: []string{
			"Track keyword rankings over time",
			"Monitor organic traffic changes",
			"Check Google Search Console for new impressions",
		},
		ManualCheck: true,
	}
}
