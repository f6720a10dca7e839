package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"

	"seo-audit/pkg/models"
	"seo-audit/pkg/utils"
)

// RobotsResult pairs the report-facing summary of a robots.txt with the
// parsed ruleset used for crawl enforcement. Data is nil when the file was
// missing or unreadable; callers treat nil as allow-all
type RobotsResult struct {
	Info *models.RobotsInfo
	Data *robotstxt.RobotsData
}

// RobotsHandler fetches and parses a site's robots.txt
type RobotsHandler struct {
	fetcher   *Fetcher
	userAgent string
	log       *logrus.Entry
}

// NewRobotsHandler creates a RobotsHandler
func NewRobotsHandler(fetcher *Fetcher, userAgent string, log *logrus.Logger) *RobotsHandler {
	return &RobotsHandler{
		fetcher:   fetcher,
		userAgent: userAgent,
		log:       log.WithField("component", "robots"),
	}
}

// Fetch retrieves <scheme>://<host>/robots.txt and builds both the summary
// and the enforcement ruleset. A missing or unreadable file is not an error
// for the run: Info.Found is false, the reason lands in Info.Errors, and the
// crawl proceeds unrestricted
func (rh *RobotsHandler) Fetch(ctx context.Context, base *url.URL) (*RobotsResult, error) {
	robotsURL := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/robots.txt"}
	robotsLog := rh.log.WithField("robots_url", robotsURL.String())

	info := &models.RobotsInfo{
		SitemapURLs: []string{},
		Disallowed:  []string{},
		Errors:      []string{},
	}
	result := &RobotsResult{Info: info}

	page, err := rh.fetcher.FetchPage(ctx, robotsURL.String())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if page != nil && page.StatusCode >= 400 && page.StatusCode < 500 {
			robotsLog.WithField("status_code", page.StatusCode).Info("No robots.txt found")
			info.Errors = append(info.Errors, fmt.Sprintf("robots.txt returned status %d", page.StatusCode))
			return result, nil
		}
		robotsLog.Warnf("Fetching robots.txt failed: %v", err)
		info.Errors = append(info.Errors, fmt.Sprintf("robots.txt fetch failed: %s", utils.CategorizeError(err)))
		return result, nil
	}

	info.Found = true
	info.Content = string(page.Body)

	// Line scan for the report summary: sitemap directives and disallowed paths
	for _, line := range strings.Split(info.Content, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "sitemap:"):
			if v := strings.TrimSpace(line[len("sitemap:"):]); v != "" {
				info.SitemapURLs = append(info.SitemapURLs, v)
			}
		case strings.HasPrefix(lower, "disallow:"):
			if v := strings.TrimSpace(line[len("disallow:"):]); v != "" {
				info.Disallowed = append(info.Disallowed, v)
			}
		}
	}

	data, parseErr := robotstxt.FromBytes(page.Body)
	if parseErr != nil {
		robotsLog.Warnf("Error parsing robots.txt: %v", parseErr)
		info.Errors = append(info.Errors, fmt.Sprintf("robots.txt parse failed: %v", parseErr))
		return result, nil
	}
	result.Data = data

	robotsLog.WithFields(logrus.Fields{
		"sitemaps":   len(info.SitemapURLs),
		"disallowed": len(info.Disallowed),
	}).Info("Fetched and parsed robots.txt")
	return result, nil
}

// Allowed reports whether the configured user agent may fetch the URL.
// A nil ruleset (missing or unparseable robots.txt) allows everything
func (rh *RobotsHandler) Allowed(result *RobotsResult, u *url.URL) bool {
	if result == nil || result.Data == nil {
		return true
	}
	return result.Data.TestAgent(u.RequestURI(), rh.userAgent)
}

// Check returns ErrRobotsDisallowed when the ruleset forbids fetching u
func (rh *RobotsHandler) Check(result *RobotsResult, u *url.URL) error {
	if rh.Allowed(result, u) {
		return nil
	}
	return fmt.Errorf("%w: %s", utils.ErrRobotsDisallowed, u.String())
}
