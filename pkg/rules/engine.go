// Package rules holds the check catalogue. Each rule inspects the collected
// signals and either passes silently or produces one Issue with remediation
// guidance. Rule order is fixed so reports stay stable between runs.
package rules

import (
	"net/url"

	"github.com/sirupsen/logrus"

	"seo-audit/pkg/models"
)

// Input carries everything the rule catalogue may inspect for one run
type Input struct {
	TargetURL *url.URL
	Config    models.AnalysisConfig
	Homepage  *models.PageSignals
	Pages     []models.PageSignals
	Robots    *models.RobotsInfo
	Sitemaps  []models.SitemapInfo
	Blacklist *models.BlacklistResult
	Keywords  *models.KeywordAnalysis
}

// Rule is one check: returns nil when the site passes
type Rule func(in *Input) *models.Issue

// Engine evaluates the catalogue against collected signals
type Engine struct {
	rules []Rule
	log   *logrus.Entry
}

// NewEngine creates an Engine with the full catalogue in report order
func NewEngine(log *logrus.Logger) *Engine {
	return &Engine{
		rules: []Rule{
			checkMetaDescription,
			checkTitleLength,
			checkH1,
			checkCanonical,
			checkViewport,
			checkLang,
			checkRobotsTxt,
			checkOpenGraph,
			checkImagesAlt,
			checkStructuredData,
			checkInternalLinks,
			checkThinContent,
			checkHTTPS,
			checkMetaDescriptionLength,
			checkTwitterCards,
			checkTagManager,
			checkAnalytics,
			checkSearchConsole,
			checkClarity,
			checkLocalBusiness,
			checkGoogleAds,
			checkConversionTracking,
			checkMerchantCenter,
			checkBlacklist,
			checkKeywordOptimization,
			checkKeywordGaps,
		},
		log: log.WithField("component", "rules"),
	}
}

// Evaluate runs every rule whose category the run config enables
func (e *Engine) Evaluate(in *Input) []models.Issue {
	issues := []models.Issue{}
	for _, rule := range e.rules {
		issue := rule(in)
		if issue == nil {
			continue
		}
		if !in.Config.CategoryEnabled(issue.Category) {
			e.log.WithFields(logrus.Fields{"rule": issue.ID, "category": issue.Category}).Debug("Skipping issue, category disabled")
			continue
		}
		issues = append(issues, *issue)
	}
	e.log.WithField("issues", len(issues)).Info("Rule evaluation complete")
	return issues
}
