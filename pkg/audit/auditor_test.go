package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"seo-audit/pkg/config"
	"seo-audit/pkg/models"
	"seo-audit/pkg/utils"
)

const testHomepageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Acme Plumbing - Emergency Repairs and Installs</title>
<meta name="description" content="Licensed plumbers for emergency repairs, drain cleaning, and water heater installs. Same-day service across the metro area. Call for a free quote.">
<meta name="viewport" content="width=device-width, initial-scale=1">
<link rel="canonical" href="/">
</head>
<body>
<h1>Emergency Plumbing Repairs</h1>
<p>Acme Plumbing handles emergency repairs, drain cleaning, and water heater installs.
Our licensed plumbers respond within the hour, day or night. Plumbing repairs done right.</p>
<a href="/">Home</a>
<a href="/about">About</a>
<a href="/services">Services</a>
<a href="/private/internal">Internal</a>
</body>
</html>`

const testSubpageHTML = `<!DOCTYPE html>
<html lang="en">
<head><title>Subpage</title></head>
<body><h1>Subpage</h1><p>Drain cleaning and sewer repair details. Drain cleaning quotes.</p></body>
</html>`

// testSite serves a small but complete site: homepage with internal links,
// robots.txt with a sitemap declaration and a disallowed path, and a sitemap
func testSite(t *testing.T) *httptest.Server {
	t.Helper()

	var baseURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, testHomepageHTML)
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testSubpageHTML)
	})
	mux.HandleFunc("/services", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testSubpageHTML)
	})
	mux.HandleFunc("/private/internal", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testSubpageHTML)
	})
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "User-agent: *\nDisallow: /private/\n\nSitemap: %s/sitemap.xml\n", baseURL)
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
<url><loc>%s/</loc></url>
<url><loc>%s/about</loc></url>
</urlset>`, baseURL, baseURL)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	baseURL = server.URL
	return server
}

func testAppConfig(t *testing.T, referenceCompetitor string) *config.AppConfig {
	t.Helper()
	cfg := &config.AppConfig{
		MaxRetries:          0,
		InitialRetryDelay:   10 * time.Millisecond,
		MaxRetryDelay:       50 * time.Millisecond,
		ReferenceCompetitor: referenceCompetitor,
	}
	if _, err := cfg.Validate(); err != nil {
		t.Fatalf("config validation failed: %v", err)
	}
	return cfg
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRun_FullPipeline(t *testing.T) {
	server := testSite(t)
	cfg := testAppConfig(t, server.URL+"/")
	auditor := NewAuditor(cfg, nil, quietLogger())

	runCfg := models.AnalysisConfig{
		URL:                   server.URL,
		CrawlLimit:            4,
		EnableKeywordAnalysis: true,
		GeographicScope:       models.ScopeNational,
	}

	result, outcome, err := auditor.Run(context.Background(), runCfg)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome != models.OutcomeComplete {
		t.Fatalf("expected complete outcome, got %s", outcome)
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}

	if result.RunID == "" {
		t.Error("expected a run ID")
	}
	if result.Homepage == nil || result.Homepage.Title == "" {
		t.Fatal("expected extracted homepage signals")
	}
	if result.Homepage.H1Count != 1 {
		t.Errorf("expected 1 homepage H1, got %d", result.Homepage.H1Count)
	}

	if result.Robots == nil || !result.Robots.Found {
		t.Error("expected robots.txt to be found")
	}
	if len(result.Sitemaps) != 1 {
		t.Fatalf("expected 1 verified sitemap, got %d", len(result.Sitemaps))
	}
	if result.Sitemaps[0].URLCount != 2 {
		t.Errorf("expected sitemap URL count 2, got %d", result.Sitemaps[0].URLCount)
	}

	// /about and /services crawled; / is the homepage and /private/ is
	// disallowed by robots.txt
	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 crawled pages, got %d: %+v", len(result.Pages), result.Pages)
	}
	for _, page := range result.Pages {
		if page.Status != http.StatusOK {
			t.Errorf("expected crawled page status 200, got %d for %s", page.Status, page.URL)
		}
	}

	if result.Summary.PagesAnalyzed != 3 {
		t.Errorf("expected 3 pages analyzed (homepage + 2), got %d", result.Summary.PagesAnalyzed)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score out of range: %d", result.Score)
	}
	partition := result.Summary.CriticalIssues + result.Summary.HighIssues +
		result.Summary.MediumIssues + result.Summary.LowIssues
	if partition != result.Summary.TotalIssues {
		t.Errorf("severity counters (%d) do not partition total issues (%d)", partition, result.Summary.TotalIssues)
	}
	if len(result.Issues) != result.Summary.TotalIssues {
		t.Errorf("issue list length %d != summary total %d", len(result.Issues), result.Summary.TotalIssues)
	}

	if result.Keywords == nil {
		t.Fatal("expected keyword analysis when enabled")
	}
	if len(result.Keywords.SiteKeywords) == 0 {
		t.Error("expected site keywords from page text")
	}
	if len(result.Keywords.CompetitorAnalysis) != 1 {
		t.Errorf("expected 1 competitor (the reference), got %d", len(result.Keywords.CompetitorAnalysis))
	}

	if result.CompletedAt.Before(result.StartedAt) {
		t.Error("CompletedAt precedes StartedAt")
	}
}

func TestRun_KeywordAnalysisDisabled(t *testing.T) {
	server := testSite(t)
	cfg := testAppConfig(t, server.URL+"/")
	auditor := NewAuditor(cfg, nil, quietLogger())

	runCfg := models.AnalysisConfig{
		URL:        server.URL,
		CrawlLimit: 2,
	}

	result, outcome, err := auditor.Run(context.Background(), runCfg)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome != models.OutcomeComplete {
		t.Fatalf("expected complete outcome, got %s", outcome)
	}
	if result.Keywords != nil {
		t.Error("expected no keyword analysis when disabled")
	}
}

func TestRun_InvalidURL(t *testing.T) {
	cfg := testAppConfig(t, "https://neilpatel.com/")
	auditor := NewAuditor(cfg, nil, quietLogger())

	result, outcome, err := auditor.Run(context.Background(), models.AnalysisConfig{URL: "not a url"})

	if outcome != models.OutcomeError {
		t.Errorf("expected error outcome, got %s", outcome)
	}
	if result != nil {
		t.Error("expected nil result on validation failure")
	}
	if !errors.Is(err, utils.ErrInvalidTargetURL) {
		t.Errorf("expected ErrInvalidTargetURL, got: %v", err)
	}
}

func TestRun_HomepageUnreachable(t *testing.T) {
	// Start and immediately close a server so the port refuses connections
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL
	server.Close()

	cfg := testAppConfig(t, "https://neilpatel.com/")
	auditor := NewAuditor(cfg, nil, quietLogger())

	result, outcome, err := auditor.Run(context.Background(), models.AnalysisConfig{URL: deadURL, CrawlLimit: 1})

	if outcome != models.OutcomeError {
		t.Errorf("expected error outcome, got %s", outcome)
	}
	if result != nil {
		t.Error("expected nil result when homepage is unreachable")
	}
	if !errors.Is(err, utils.ErrHomepageFetch) {
		t.Errorf("expected ErrHomepageFetch, got: %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	server := testSite(t)
	cfg := testAppConfig(t, server.URL+"/")
	auditor := NewAuditor(cfg, nil, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, outcome, err := auditor.Run(ctx, models.AnalysisConfig{URL: server.URL, CrawlLimit: 2})

	if outcome != models.OutcomeCancelled {
		t.Errorf("expected cancelled outcome, got %s (err: %v)", outcome, err)
	}
	if result != nil {
		t.Error("expected nil result on cancellation")
	}
	if err == nil {
		t.Error("expected a context error")
	}
}

func TestRun_StageEvents(t *testing.T) {
	server := testSite(t)
	cfg := testAppConfig(t, server.URL+"/")

	events := make(chan models.StageEvent, 256)
	auditor := NewAuditor(cfg, events, quietLogger())

	_, outcome, err := auditor.Run(context.Background(), models.AnalysisConfig{URL: server.URL, CrawlLimit: 3})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome != models.OutcomeComplete {
		t.Fatalf("expected complete outcome, got %s", outcome)
	}
	close(events)

	running := make(map[models.StageID]bool)
	completed := make(map[models.StageID]bool)
	skipped := make(map[models.StageID]bool)
	for event := range events {
		switch event.Status {
		case models.StageRunning:
			running[event.Stage] = true
		case models.StageComplete:
			if !running[event.Stage] {
				t.Errorf("stage %s completed without a running event", event.Stage)
			}
			completed[event.Stage] = true
		case models.StageSkipped:
			skipped[event.Stage] = true
		}
	}

	for _, stage := range []models.StageID{
		models.StageValidate, models.StageHomepage, models.StageRobots,
		models.StageCrawl, models.StageTechnical, models.StagePerformance, models.StageScore,
	} {
		if !completed[stage] {
			t.Errorf("expected completion event for stage %s", stage)
		}
	}
	// Keyword analysis was not enabled for this run
	if !skipped[models.StageOnPage] {
		t.Error("expected onpage stage to report skipped")
	}
}
