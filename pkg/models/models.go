package models

import "time"

// PageSignals holds every structured signal extracted from one fetched page
// Built once by the extractor and never mutated afterwards
type PageSignals struct {
	URL                   string   `json:"url"`
	Status                int      `json:"status"`
	Title                 string   `json:"title,omitempty"`
	TitleLength           int      `json:"titleLength,omitempty"`
	MetaDescription       string   `json:"metaDescription,omitempty"`
	MetaDescriptionLength int      `json:"metaDescriptionLength,omitempty"`
	H1Count               int      `json:"h1Count"`
	H1Text                string   `json:"h1Text,omitempty"`
	Canonical             string   `json:"canonical,omitempty"`
	MetaRobots            string   `json:"metaRobots,omitempty"`
	HasViewport           bool     `json:"hasViewport"`
	HasLang               bool     `json:"hasLang"`
	LangValue             string   `json:"langValue,omitempty"`
	HasOpenGraph          bool     `json:"hasOpenGraph"`
	HasTwitterCards       bool     `json:"hasTwitterCards"`
	HasJSONLD             bool     `json:"hasJsonLd"`
	JSONLDTypes           []string `json:"jsonLdTypes,omitempty"`
	JSONLDBlocks          int      `json:"jsonLdBlocks,omitempty"`
	JSONLDParsed          int      `json:"jsonLdParsed,omitempty"`
	WordCount             int      `json:"wordCount"`
	InternalLinks         int      `json:"internalLinks"`
	ExternalLinks         int      `json:"externalLinks"`
	TotalImages           int      `json:"totalImages"`
	ImagesWithoutAlt      int      `json:"imagesWithoutAlt"`

	Marketing MarketingSignals `json:"marketing"`
}

// MarketingSignals is the marketing-tag fingerprint set for one page
// Detection is advisory string presence, not proof of a working install
type MarketingSignals struct {
	HasTagManager        bool   `json:"hasGTM"`
	TagManagerID         string `json:"gtmId,omitempty"`
	HasAnalytics         bool   `json:"hasGA4"`
	AnalyticsID          string `json:"ga4Id,omitempty"`
	HasSearchConsole     bool   `json:"hasGoogleSearchConsoleVerification"`
	SearchConsoleMethod  string `json:"gscVerificationMethod,omitempty"`
	HasSessionRecording  bool   `json:"hasMicrosoftClarity"`
	SessionRecordingID   string `json:"clarityId,omitempty"`
	HasAdsTag            bool   `json:"hasGoogleAdsTag"`
	AdsTagID             string `json:"googleAdsId,omitempty"`
	HasAdsConversion     bool   `json:"hasGoogleAdsConversion"`
	HasLocalBusiness     bool   `json:"hasLocalBusinessSchema"`
	HasProductSchema     bool   `json:"hasProductSchema"`
	HasMerchantIndicator bool   `json:"hasMerchantCenterLink"`
}

// RobotsInfo is the parsed state of a site's robots.txt, created once per crawl
type RobotsInfo struct {
	Found       bool     `json:"found"`
	Content     string   `json:"content,omitempty"`
	SitemapURLs []string `json:"sitemapUrls"`
	Disallowed  []string `json:"blockedPaths"`
	Errors      []string `json:"errors"`
}

// SitemapInfo describes one discovered sitemap document
type SitemapInfo struct {
	URL      string   `json:"url"`
	URLCount int      `json:"urlCount"`
	Errors   []string `json:"errors"`
}

// BlacklistResult is the advisory reputation check for one domain
// Listing status cannot be confirmed without vendor APIs, so CleanOn
// records which services were surveyed and the issue carries manual
// verification URLs
type BlacklistResult struct {
	Domain   string   `json:"domain"`
	Checked  int      `json:"checked"`
	ListedOn []string `json:"listedOn"`
	CleanOn  []string `json:"cleanOn"`
	Errors   []string `json:"errors"`
}

// PlatformFixSteps specializes fix guidance per target platform
type PlatformFixSteps struct {
	WordPress []string `json:"wordpress,omitempty"`
	Shopify   []string `json:"shopify,omitempty"`
	Webflow   []string `json:"webflow,omitempty"`
	Custom    []string `json:"custom,omitempty"`
}

// Issue is one finding produced by a single rule firing
// Immutable after creation; id is unique within one result
type Issue struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Severity         Severity          `json:"severity"`
	Category         Category          `json:"category"`
	WhyItMatters     string            `json:"whyItMatters"`
	Evidence         []string          `json:"evidence"`
	AffectedURLs     []string          `json:"affectedUrls,omitempty"`
	FixSteps         []string          `json:"fixSteps"`
	PlatformFixSteps *PlatformFixSteps `json:"platformFixSteps,omitempty"`
	Snippets         []string          `json:"snippets,omitempty"`
	VerifySteps      []string          `json:"verifySteps"`
	MistakesToAvoid  []string          `json:"mistakesToAvoid,omitempty"`
	ManualCheck      bool              `json:"manualCheckRequired"`
}

// KeywordData is one keyword or phrase scored against a page or the whole site
type KeywordData struct {
	Keyword           string  `json:"keyword"`
	Frequency         int     `json:"frequency"`
	Density           float64 `json:"density"`
	InTitle           bool    `json:"inTitle"`
	InH1              bool    `json:"inH1"`
	InMetaDescription bool    `json:"inMetaDescription"`
	Prominence        int     `json:"prominence"`
}

// CompetitorKeywordAnalysis holds one competitor's keyword profile
type CompetitorKeywordAnalysis struct {
	CompetitorURL  string        `json:"competitorUrl"`
	Keywords       []KeywordData `json:"keywords"`
	TopKeywords    []string      `json:"topKeywords"`
	UniqueKeywords []string      `json:"uniqueKeywords"`
}

// KeywordSuggestion is one gap keyword worth targeting
type KeywordSuggestion struct {
	Keyword             string   `json:"keyword"`
	Reason              string   `json:"reason"`
	CompetitorsUsing    []string `json:"competitorUsing"`
	EstimatedDifficulty string   `json:"estimatedDifficulty"` // easy, medium, hard
}

// KeywordAnalysis aggregates site keywords, competitor comparisons and gaps
type KeywordAnalysis struct {
	SiteKeywords       []KeywordData               `json:"siteKeywords"`
	TopKeywords        []string                    `json:"topKeywords"`
	CompetitorAnalysis []CompetitorKeywordAnalysis `json:"competitorAnalysis"`
	SuggestedKeywords  []KeywordSuggestion         `json:"suggestedKeywords"`
	KeywordGaps        []string                    `json:"keywordGaps"`
}

// GeographicScope bounds keyword suggestions geographically
type GeographicScope string

const (
	ScopeInternational GeographicScope = "international"
	ScopeNational      GeographicScope = "national"
	ScopeState         GeographicScope = "state"
	ScopeRegional      GeographicScope = "regional"
)

// AnalysisConfig is the immutable input contract for one run
type AnalysisConfig struct {
	URL                   string          `json:"url" yaml:"url"`
	Competitors           []string        `json:"competitors" yaml:"competitors"`
	CrawlLimit            int             `json:"crawlLimit" yaml:"crawl_limit"`
	IncludeSubdomains     bool            `json:"includeSubdomains" yaml:"include_subdomains"`
	SitemapOverride       string          `json:"sitemapOverride,omitempty" yaml:"sitemap_override"`
	EnabledCategories     []Category      `json:"selectedCategories,omitempty" yaml:"selected_categories"`
	EnableKeywordAnalysis bool            `json:"enableKeywordAnalysis" yaml:"enable_keyword_analysis"`
	GeographicScope       GeographicScope `json:"geographicScope,omitempty" yaml:"geographic_scope"`
	TargetLocation        string          `json:"targetLocation,omitempty" yaml:"target_location"`
	CheckMobile           bool            `json:"checkMobile" yaml:"check_mobile"`
	CheckDesktop          bool            `json:"checkDesktop" yaml:"check_desktop"`
	UseSpeedAPI           bool            `json:"usePSI" yaml:"use_speed_api"`
}

// CategoryEnabled reports whether a check category is toggled on
// An empty EnabledCategories list means every category is enabled
func (c AnalysisConfig) CategoryEnabled(cat Category) bool {
	if len(c.EnabledCategories) == 0 {
		return true
	}
	for _, enabled := range c.EnabledCategories {
		if enabled == cat {
			return true
		}
	}
	return false
}

// CategoryScore is one row of the per-category score breakdown
// MaxDeduction is a fixed display constant for UI normalization only
type CategoryScore struct {
	Category     Category `json:"category"`
	Deductions   int      `json:"deductions"`
	MaxDeduction int      `json:"maxDeduction"`
	Issues       int      `json:"issues"`
}

// Summary carries the run-level counters
// TotalIssues always equals the issue list length and the severity
// counters partition it exactly
type Summary struct {
	PagesAnalyzed  int `json:"pagesAnalyzed"`
	TotalIssues    int `json:"totalIssues"`
	CriticalIssues int `json:"criticalIssues"`
	HighIssues     int `json:"highIssues"`
	MediumIssues   int `json:"mediumIssues"`
	LowIssues      int `json:"lowIssues"`
}

// AnalysisResult is the terminal, immutable artifact of one run
type AnalysisResult struct {
	RunID          string           `json:"runId"`
	Config         AnalysisConfig   `json:"config"`
	StartedAt      time.Time        `json:"startedAt"`
	CompletedAt    time.Time        `json:"completedAt"`
	Score          int              `json:"score"`
	ScoreBreakdown []CategoryScore  `json:"scoreBreakdown"`
	Homepage       *PageSignals     `json:"homepage"`
	Robots         *RobotsInfo      `json:"robots"`
	Sitemaps       []SitemapInfo    `json:"sitemaps"`
	Pages          []PageSignals    `json:"pages"`
	Issues         []Issue          `json:"issues"`
	Keywords       *KeywordAnalysis `json:"keywordAnalysis,omitempty"`
	Summary        Summary          `json:"summary"`
}
