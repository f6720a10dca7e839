package config

import (
	"fmt"
	"net/url"
	"time"

	"seo-audit/pkg/utils"
)

// DefaultUserAgent is the fixed identity sent on every outbound request
const DefaultUserAgent = "SEO-Audit-Engine/1.0 (+https://seo-audit.example)"

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// UserAgent
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}

	// NumCrawlWorkers
	if c.NumCrawlWorkers <= 0 {
		warnings = append(warnings, "num_crawl_workers should be > 0, defaulting to 4")
		c.NumCrawlWorkers = 4
	}

	// MaxRequests
	if c.MaxRequests <= 0 {
		warnings = append(warnings, "max_requests should be > 0, defaulting to 10")
		c.MaxRequests = 10
	}

	// DelayPerHost
	if c.DelayPerHost < 0 {
		warnings = append(warnings, "delay_per_host cannot be negative, disabling delay")
		c.DelayPerHost = 0
	}

	// MaxRetries
	if c.MaxRetries < 0 {
		warnings = append(warnings, "max_retries cannot be negative, setting to 0")
		c.MaxRetries = 0
	}
	if c.MaxRetries == 0 && c.InitialRetryDelay == 0 {
		c.MaxRetries = 2
	}

	// Retry delays (only if retries enabled)
	if c.MaxRetries > 0 {
		if c.InitialRetryDelay <= 0 {
			c.InitialRetryDelay = 1 * time.Second
		}
		if c.MaxRetryDelay <= 0 {
			c.MaxRetryDelay = 15 * time.Second
		}
	}
	if c.InitialRetryDelay > c.MaxRetryDelay && c.MaxRetryDelay > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"initial_retry_delay (%v) > max_retry_delay (%v), using max_retry_delay for initial",
			c.InitialRetryDelay, c.MaxRetryDelay))
		c.InitialRetryDelay = c.MaxRetryDelay
	}

	// RunTimeout
	if c.RunTimeout < 0 {
		warnings = append(warnings, "run_timeout cannot be negative, disabling timeout")
		c.RunTimeout = 0
	}

	// CrawlPageCap guards runaway crawls regardless of the per-run crawl limit
	if c.CrawlPageCap <= 0 {
		c.CrawlPageCap = 10
	}

	// MaxSitemaps
	if c.MaxSitemaps <= 0 {
		c.MaxSitemaps = 3
	}

	// MaxCompetitors (includes the fixed reference competitor)
	if c.MaxCompetitors <= 0 {
		c.MaxCompetitors = 4
	}
	if c.ReferenceCompetitor == "" {
		c.ReferenceCompetitor = "https://neilpatel.com/"
	} else if u, parseErr := url.Parse(c.ReferenceCompetitor); parseErr != nil ||
		(u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return warnings, fmt.Errorf("%w: reference_competitor %q is not an absolute http(s) URL",
			utils.ErrConfigValidation, c.ReferenceCompetitor)
	}

	// MaxBodyBytes
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 5 << 20 // 5MB of HTML is plenty for signal extraction
	}

	// HTTPClientSettings defaults
	c.validateHTTPClientSettings()

	return warnings, nil
}

// validateHTTPClientSettings applies defaults to HTTP client settings.
func (c *AppConfig) validateHTTPClientSettings() {
	h := &c.HTTPClientSettings
	if h.Timeout <= 0 {
		h.Timeout = 30 * time.Second
	}
	if h.MaxIdleConns <= 0 {
		h.MaxIdleConns = 100
	}
	if h.MaxIdleConnsPerHost <= 0 {
		h.MaxIdleConnsPerHost = 4
	}
	if h.IdleConnTimeout <= 0 {
		h.IdleConnTimeout = 90 * time.Second
	}
	if h.TLSHandshakeTimeout <= 0 {
		h.TLSHandshakeTimeout = 10 * time.Second
	}
	if h.ExpectContinueTimeout <= 0 {
		h.ExpectContinueTimeout = 1 * time.Second
	}
	if h.DialerTimeout <= 0 {
		h.DialerTimeout = 15 * time.Second
	}
	if h.DialerKeepAlive <= 0 {
		h.DialerKeepAlive = 30 * time.Second
	}
}
