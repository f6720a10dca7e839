package audit

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"seo-audit/pkg/extract"
	"seo-audit/pkg/fetch"
	"seo-audit/pkg/models"
	"seo-audit/pkg/parse"
	"seo-audit/pkg/utils"
)

// crawl discovers internal links on the homepage and fetches them with a
// bounded worker pool. Individual page failures are skipped; only context
// termination aborts the stage. Returns the extracted signals in discovery
// order plus each page's keyword text
func (a *Auditor) crawl(
	ctx context.Context,
	target *url.URL,
	homepageBody []byte,
	robotsResult *fetch.RobotsResult,
	runCfg models.AnalysisConfig,
) ([]models.PageSignals, map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(homepageBody))
	if err != nil {
		// Homepage already parsed once by the extractor; treat as no links
		a.log.Warnf("Could not re-parse homepage for link discovery: %v", err)
		return []models.PageSignals{}, map[string]string{}, nil
	}

	links := extract.DiscoverInternalLinks(doc, target, runCfg.IncludeSubdomains)

	// The homepage occupies one slot of the crawl limit; a fixed cap
	// bounds the crawl regardless of how large the limit is
	budget := runCfg.CrawlLimit - 1
	if budget > a.cfg.CrawlPageCap {
		budget = a.cfg.CrawlPageCap
	}
	if budget < 0 {
		budget = 0
	}

	homepageNorm := parse.NormalizeURL(target)
	respectRobots := a.cfg.EffectiveRespectRobots()

	var toCrawl []string
	for _, link := range links {
		if len(toCrawl) >= budget {
			break
		}
		if link == homepageNorm {
			continue
		}
		if respectRobots {
			if linkURL, err := url.Parse(link); err == nil {
				if robotsErr := a.robots.Check(robotsResult, linkURL); robotsErr != nil {
					a.log.WithFields(logrus.Fields{
						"url":            link,
						"error_category": utils.CategorizeError(robotsErr),
					}).Debug("Skipping URL disallowed by robots.txt")
					continue
				}
			}
		}
		toCrawl = append(toCrawl, link)
	}

	if len(toCrawl) == 0 {
		return []models.PageSignals{}, map[string]string{}, nil
	}
	a.log.WithField("count", len(toCrawl)).Info("Crawling internal pages")

	// Results keyed by position so output order matches discovery order
	pagesByIdx := make([]*models.PageSignals, len(toCrawl))
	texts := make(map[string]string, len(toCrawl))
	var textsMu sync.Mutex
	var done int

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.NumCrawlWorkers)

	for idx, pageURL := range toCrawl {
		idx, pageURL := idx, pageURL
		g.Go(func() error {
			resp, err := a.fetcher.FetchPage(gCtx, pageURL)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				a.log.WithField("url", pageURL).Warnf("Failed to crawl page: %v", err)
				return nil
			}

			signals, err := a.extractor.Extract(pageURL, resp.StatusCode, resp.Body)
			if err != nil {
				a.log.WithField("url", pageURL).Warnf("Failed to parse page: %v", err)
				return nil
			}

			textsMu.Lock()
			pagesByIdx[idx] = signals
			texts[pageURL] = extract.KeywordText(resp.Body)
			done++
			progress := done * 100 / len(toCrawl)
			textsMu.Unlock()

			a.emit(models.StageEvent{
				Stage:    models.StageCrawl,
				Status:   models.StageRunning,
				Progress: progress,
				Message:  pageURL,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	pages := make([]models.PageSignals, 0, len(toCrawl))
	for _, p := range pagesByIdx {
		if p != nil {
			pages = append(pages, *p)
		}
	}
	return pages, texts, nil
}
