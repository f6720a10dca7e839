// Package audit drives one analysis run through the fixed stage pipeline:
// validate, homepage, robots, crawl, onpage, technical, performance, score.
package audit

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"seo-audit/pkg/config"
	"seo-audit/pkg/extract"
	"seo-audit/pkg/fetch"
	"seo-audit/pkg/keywords"
	"seo-audit/pkg/models"
	"seo-audit/pkg/parse"
	"seo-audit/pkg/rules"
	"seo-audit/pkg/score"
	"seo-audit/pkg/utils"
)

// Auditor owns the shared components of the pipeline and runs analyses
// A single Auditor is safe for sequential runs; each Run gets its own
// run ID and result
type Auditor struct {
	cfg         *config.AppConfig
	fetcher     *fetch.Fetcher
	robots      *fetch.RobotsHandler
	sitemaps    *fetch.SitemapChecker
	extractor   *extract.Extractor
	competitors *keywords.CompetitorAnalyzer
	engine      *rules.Engine
	events      chan<- models.StageEvent
	log         *logrus.Entry
}

// NewAuditor wires the pipeline from validated application config
// events may be nil; when set, stage progress is sent non-blocking
func NewAuditor(cfg *config.AppConfig, events chan<- models.StageEvent, log *logrus.Logger) *Auditor {
	client := fetch.NewClient(cfg.HTTPClientSettings, log)
	limiter := fetch.NewHostLimiter(cfg.DelayPerHost, log)
	fetcher := fetch.NewFetcher(client, limiter, cfg, log)
	extractor := extract.NewExtractor(log)

	return &Auditor{
		cfg:         cfg,
		fetcher:     fetcher,
		robots:      fetch.NewRobotsHandler(fetcher, cfg.UserAgent, log),
		sitemaps:    fetch.NewSitemapChecker(fetcher, cfg.MaxSitemaps, log),
		extractor:   extractor,
		competitors: keywords.NewCompetitorAnalyzer(fetcher, extractor, log),
		engine:      rules.NewEngine(log),
		events:      events,
		log:         log.WithField("component", "audit"),
	}
}

// emit sends a stage event without ever blocking the pipeline
func (a *Auditor) emit(event models.StageEvent) {
	if a.events == nil {
		return
	}
	select {
	case a.events <- event:
	default:
		a.log.WithField("stage", event.Stage).Warn("Dropped stage event, receiver not keeping up")
	}
}

func (a *Auditor) stageRunning(stage models.StageID, message string) {
	a.emit(models.StageEvent{Stage: stage, Status: models.StageRunning, Progress: -1, Message: message})
}

func (a *Auditor) stageComplete(stage models.StageID, message string) {
	a.emit(models.StageEvent{Stage: stage, Status: models.StageComplete, Progress: 100, Message: message})
}

func (a *Auditor) stageSkipped(stage models.StageID, message string) {
	a.emit(models.StageEvent{Stage: stage, Status: models.StageSkipped, Progress: -1, Message: message})
}

func (a *Auditor) stageFailed(stage models.StageID, err error) {
	a.emit(models.StageEvent{Stage: stage, Status: models.StageError, Progress: -1, Err: err.Error()})
}

// Run executes the full pipeline for one run configuration
// The returned Outcome distinguishes cancellation from failure; the
// result is non-nil only on OutcomeComplete
func (a *Auditor) Run(ctx context.Context, runCfg models.AnalysisConfig) (*models.AnalysisResult, models.Outcome, error) {
	if a.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.RunTimeout)
		defer cancel()
	}

	result := &models.AnalysisResult{
		RunID:     uuid.NewString(),
		Config:    runCfg,
		StartedAt: time.Now().UTC(),
	}
	runLog := a.log.WithFields(logrus.Fields{"run_id": result.RunID, "url": runCfg.URL})
	runLog.Info("Starting analysis run")

	// --- Stage: validate ---
	a.stageRunning(models.StageValidate, "Validating target URL")
	target, err := parse.ParseTarget(runCfg.URL)
	if err != nil {
		a.stageFailed(models.StageValidate, err)
		return nil, models.OutcomeError, err
	}
	a.stageComplete(models.StageValidate, "URL validated")

	if outcome, err := checkCancelled(ctx); err != nil {
		return nil, outcome, err
	}

	// --- Stage: homepage ---
	a.stageRunning(models.StageHomepage, "Fetching homepage")
	homepageResp, err := a.fetcher.FetchPage(ctx, target.String())
	if err != nil && (homepageResp == nil || len(homepageResp.Body) == 0) {
		if outcome, cErr := checkCancelled(ctx); cErr != nil {
			return nil, outcome, cErr
		}
		wrapped := fmt.Errorf("%w: %w", utils.ErrHomepageFetch, err)
		a.stageFailed(models.StageHomepage, wrapped)
		return nil, models.OutcomeError, wrapped
	}
	homepage, err := a.extractor.Extract(target.String(), homepageResp.StatusCode, homepageResp.Body)
	if err != nil {
		a.stageFailed(models.StageHomepage, err)
		return nil, models.OutcomeError, err
	}
	result.Homepage = homepage
	a.stageComplete(models.StageHomepage, fmt.Sprintf("Homepage fetched (status %d)", homepageResp.StatusCode))

	if outcome, err := checkCancelled(ctx); err != nil {
		return nil, outcome, err
	}

	// --- Stage: robots ---
	a.stageRunning(models.StageRobots, "Fetching robots.txt and sitemaps")
	robotsResult, err := a.robots.Fetch(ctx, target)
	if err != nil {
		if outcome, cErr := checkCancelled(ctx); cErr != nil {
			return nil, outcome, cErr
		}
		a.stageFailed(models.StageRobots, err)
		return nil, models.OutcomeError, err
	}
	result.Robots = robotsResult.Info

	candidates := a.sitemaps.Candidates(target, runCfg.SitemapOverride, robotsResult.Info.SitemapURLs)
	sitemaps, err := a.sitemaps.Check(ctx, candidates)
	if err != nil {
		if outcome, cErr := checkCancelled(ctx); cErr != nil {
			return nil, outcome, cErr
		}
		a.stageFailed(models.StageRobots, err)
		return nil, models.OutcomeError, err
	}
	result.Sitemaps = sitemaps
	a.stageComplete(models.StageRobots, fmt.Sprintf("robots.txt found=%t, %d sitemap(s) verified", robotsResult.Info.Found, len(sitemaps)))

	if outcome, err := checkCancelled(ctx); err != nil {
		return nil, outcome, err
	}

	// --- Stage: crawl ---
	a.stageRunning(models.StageCrawl, "Crawling internal pages")
	pages, pageTexts, err := a.crawl(ctx, target, homepageResp.Body, robotsResult, runCfg)
	if err != nil {
		if outcome, cErr := checkCancelled(ctx); cErr != nil {
			return nil, outcome, cErr
		}
		a.stageFailed(models.StageCrawl, err)
		return nil, models.OutcomeError, err
	}
	result.Pages = pages
	a.stageComplete(models.StageCrawl, fmt.Sprintf("Crawled %d internal page(s)", len(pages)))

	if outcome, err := checkCancelled(ctx); err != nil {
		return nil, outcome, err
	}

	// --- Stage: onpage (keyword analysis) ---
	if runCfg.EnableKeywordAnalysis {
		a.stageRunning(models.StageOnPage, "Analyzing keywords and competitors")
		keywordAnalysis, err := a.analyzeKeywords(ctx, homepage, homepageResp.Body, pages, pageTexts, runCfg)
		if err != nil {
			if outcome, cErr := checkCancelled(ctx); cErr != nil {
				return nil, outcome, cErr
			}
			a.stageFailed(models.StageOnPage, err)
			return nil, models.OutcomeError, err
		}
		result.Keywords = keywordAnalysis
		a.stageComplete(models.StageOnPage, fmt.Sprintf("%d site keyword(s), %d suggestion(s)",
			len(keywordAnalysis.SiteKeywords), len(keywordAnalysis.SuggestedKeywords)))
	} else {
		a.stageSkipped(models.StageOnPage, "Keyword analysis disabled")
	}

	if outcome, err := checkCancelled(ctx); err != nil {
		return nil, outcome, err
	}

	// --- Stage: technical (reputation survey) ---
	a.stageRunning(models.StageTechnical, "Surveying domain reputation lists")
	blacklist := rules.SurveyBlacklists(target.Hostname())
	a.stageComplete(models.StageTechnical, fmt.Sprintf("Surveyed %d reputation services", blacklist.Checked))

	// --- Stage: performance ---
	a.stageRunning(models.StagePerformance, "Recording response timings")
	a.stageComplete(models.StagePerformance, fmt.Sprintf("Homepage responded in %s", homepageResp.ResponseTime.Round(time.Millisecond)))

	if outcome, err := checkCancelled(ctx); err != nil {
		return nil, outcome, err
	}

	// --- Stage: score ---
	a.stageRunning(models.StageScore, "Evaluating rules and scoring")
	issues := a.engine.Evaluate(&rules.Input{
		TargetURL: target,
		Config:    runCfg,
		Homepage:  homepage,
		Pages:     pages,
		Robots:    result.Robots,
		Sitemaps:  sitemaps,
		Blacklist: blacklist,
		Keywords:  result.Keywords,
	})
	result.Issues = issues
	result.Score, result.ScoreBreakdown = score.Calculate(issues)
	result.Summary = score.Summarize(1+len(pages), issues)
	result.CompletedAt = time.Now().UTC()
	a.stageComplete(models.StageScore, fmt.Sprintf("Score %d with %d issue(s)", result.Score, len(issues)))

	runLog.WithFields(logrus.Fields{
		"score":    result.Score,
		"issues":   len(issues),
		"pages":    result.Summary.PagesAnalyzed,
		"duration": result.CompletedAt.Sub(result.StartedAt).Round(time.Millisecond),
	}).Info("Analysis run complete")

	return result, models.OutcomeComplete, nil
}

// analyzeKeywords builds the full keyword analysis: site profile first,
// then competitor profiles sequentially (a handful of fetches at most)
func (a *Auditor) analyzeKeywords(
	ctx context.Context,
	homepage *models.PageSignals,
	homepageBody []byte,
	pages []models.PageSignals,
	pageTexts map[string]string,
	runCfg models.AnalysisConfig,
) (*models.KeywordAnalysis, error) {
	perPage := [][]models.KeywordData{
		keywords.AnalyzePage(homepage, extract.KeywordText(homepageBody)),
	}
	for i := range pages {
		text := pageTexts[pages[i].URL]
		if text == "" {
			continue
		}
		perPage = append(perPage, keywords.AnalyzePage(&pages[i], text))
	}

	siteKeywords := keywords.MergeSiteKeywords(perPage...)

	competitorURLs := keywords.BuildList(runCfg.Competitors, a.cfg.ReferenceCompetitor, a.cfg.MaxCompetitors)
	analyses := []models.CompetitorKeywordAnalysis{}
	for _, competitorURL := range competitorURLs {
		analysis, err := a.competitors.Analyze(ctx, competitorURL)
		if err != nil {
			return nil, err
		}
		if analysis != nil {
			analyses = append(analyses, *analysis)
		}
	}
	keywords.FillUniqueKeywords(analyses, siteKeywords)

	return &models.KeywordAnalysis{
		SiteKeywords:       siteKeywords,
		TopKeywords:        keywords.TopKeywords(siteKeywords),
		CompetitorAnalysis: analyses,
		SuggestedKeywords:  keywords.Suggestions(siteKeywords, analyses, runCfg),
		KeywordGaps:        keywords.Gaps(analyses),
	}, nil
}

// checkCancelled maps context termination to the cancelled outcome
func checkCancelled(ctx context.Context) (models.Outcome, error) {
	err := ctx.Err()
	if err == nil {
		return "", nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return models.OutcomeCancelled, err
	}
	return models.OutcomeError, err
}

// Target re-exports validation so callers can pre-check URLs
func Target(rawURL string) (*url.URL, error) {
	return parse.ParseTarget(rawURL)
}
