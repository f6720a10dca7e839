package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"seo-audit/pkg/models"
	"seo-audit/pkg/parse"
)

// SitemapChecker verifies sitemap candidates and counts their URLs
type SitemapChecker struct {
	fetcher     *Fetcher
	maxSitemaps int
	log         *logrus.Entry
}

// NewSitemapChecker creates a SitemapChecker
func NewSitemapChecker(fetcher *Fetcher, maxSitemaps int, log *logrus.Logger) *SitemapChecker {
	return &SitemapChecker{
		fetcher:     fetcher,
		maxSitemaps: maxSitemaps,
		log:         log.WithField("component", "sitemap"),
	}
}

// Candidates picks the sitemap URLs to probe: an explicit override wins,
// then robots.txt declarations (capped), then the two conventional paths
func (sc *SitemapChecker) Candidates(base *url.URL, override string, robotsDeclared []string) []string {
	if override != "" {
		return []string{override}
	}
	if len(robotsDeclared) > 0 {
		declared := robotsDeclared
		if len(declared) > sc.maxSitemaps {
			declared = declared[:sc.maxSitemaps]
		}
		return append([]string{}, declared...)
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}
	return []string{
		root.JoinPath("sitemap.xml").String(),
		root.JoinPath("sitemap_index.xml").String(),
	}
}

// Check probes each candidate sitemap and returns info for the ones that
// exist and contain at least one URL. Candidates that 404, fail to parse,
// or are empty are dropped; only context errors abort
func (sc *SitemapChecker) Check(ctx context.Context, candidates []string) ([]models.SitemapInfo, error) {
	found := []models.SitemapInfo{}

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		candLog := sc.log.WithField("sitemap_url", candidate)

		page, err := sc.fetcher.FetchPage(ctx, candidate)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return found, err
			}
			candLog.Debugf("Sitemap candidate not usable: %v", err)
			continue
		}

		count, parseErr := parse.CountSitemapURLs(page.Body)
		if parseErr != nil {
			candLog.Warnf("Sitemap did not parse: %v", parseErr)
			found = append(found, models.SitemapInfo{
				URL:      candidate,
				URLCount: 0,
				Errors:   []string{fmt.Sprintf("parse failed: %v", parseErr)},
			})
			continue
		}
		if count == 0 {
			candLog.Debug("Sitemap parsed but contains no URLs, dropping")
			continue
		}

		candLog.WithField("url_count", count).Info("Verified sitemap")
		found = append(found, models.SitemapInfo{
			URL:      candidate,
			URLCount: count,
			Errors:   []string{},
		})
		if len(found) >= sc.maxSitemaps {
			break
		}
	}

	return found, nil
}
