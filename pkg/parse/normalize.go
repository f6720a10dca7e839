package parse

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"seo-audit/pkg/utils"
)

// NormalizeURL standardizes a URL for crawl deduplication
// It lowercases the scheme and host, removes default ports (80 for http,
// 443 for https), ensures an empty path becomes "/", and strips the
// fragment. Query strings are kept: distinct queries can serve distinct
// pages. Does not modify the input *url.URL
func NormalizeURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	// Work on a copy
	normalized := *u

	normalized.Scheme = strings.ToLower(normalized.Scheme)
	normalized.Host = strings.ToLower(normalized.Host)

	// Remove default ports
	host, port, err := net.SplitHostPort(normalized.Host)
	if err == nil {
		if (normalized.Scheme == "http" && port == "80") ||
			(normalized.Scheme == "https" && port == "443") {
			normalized.Host = host
		}
	}

	if normalized.Path == "" {
		normalized.Path = "/"
	}

	normalized.Fragment = ""

	return normalized.String()
}

// ParseTarget validates and parses an analysis target URL
// The URL must parse strictly and carry an http or https scheme; anything
// else is a fatal validation error for the run
func ParseTarget(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty URL", utils.ErrInvalidTargetURL)
	}
	parsed, err := url.ParseRequestURI(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidTargetURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme '%s'", utils.ErrInvalidTargetURL, parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host", utils.ErrInvalidTargetURL)
	}
	return parsed, nil
}
