package extract

import (
	"regexp"
	"strings"

	"seo-audit/pkg/models"
)

// Marketing-tag fingerprints. These match against the raw HTML because tag
// snippets usually live inside inline scripts that a DOM walk flattens away
var (
	gtmIDRe        = regexp.MustCompile(`(?i)GTM-[A-Z0-9]+`)
	gtmLoaderRe    = regexp.MustCompile(`(?i)googletagmanager\.com/gtm\.js\?id=`)
	gtagLoaderRe   = regexp.MustCompile(`(?i)googletagmanager\.com/gtag/js\?id=`)
	ga4IDRe        = regexp.MustCompile(`(?i)G-[A-Z0-9]+`)
	ga4ConfigRe    = regexp.MustCompile(`(?i)gtag\(['"]config['"],\s*['"]G-[A-Z0-9]+['"]`)
	gscMetaRe      = regexp.MustCompile(`(?i)<meta[^>]+name=["']google-site-verification["'][^>]+content=["']([^"']*)["']`)
	gscMetaRevRe   = regexp.MustCompile(`(?i)<meta[^>]+content=["']([^"']*)["'][^>]+name=["']google-site-verification["']`)
	clarityTagRe   = regexp.MustCompile(`(?i)clarity\.ms/tag/([a-z0-9]+)`)
	claritySetRe   = regexp.MustCompile(`(?i)clarity\(["']set["'],\s*["']([^"']+)["']`)
	adsIDRe        = regexp.MustCompile(`(?i)AW-[0-9]+`)
	adsDoubleRe    = regexp.MustCompile(`(?i)googleads\.g\.doubleclick\.net`)
	adsConfigRe    = regexp.MustCompile(`(?i)gtag\(['"]config['"],\s*['"]AW-[0-9]+['"]`)
)

// detectMarketing fingerprints analytics, tag-management, verification, and
// ads installs from the raw page HTML. Presence of a snippet string is
// advisory evidence, not proof the install works
func detectMarketing(html string, jsonLD jsonLDSummary) models.MarketingSignals {
	signals := models.MarketingSignals{}

	// Google Tag Manager
	signals.HasTagManager = gtmIDRe.MatchString(html) ||
		gtmLoaderRe.MatchString(html) ||
		gtagLoaderRe.MatchString(html) ||
		strings.Contains(html, "googletagmanager.com/gtm.js")
	if id := gtmIDRe.FindString(html); id != "" {
		signals.TagManagerID = id
	}

	// Google Analytics 4
	signals.HasAnalytics = ga4IDRe.MatchString(html) ||
		ga4ConfigRe.MatchString(html) ||
		strings.Contains(html, "googletagmanager.com/gtag/js")
	if id := ga4IDRe.FindString(html); id != "" {
		signals.AnalyticsID = id
	}

	// Search Console verification (meta tag method only; DNS verification
	// is invisible from the page)
	if gscMetaRe.MatchString(html) || gscMetaRevRe.MatchString(html) {
		signals.HasSearchConsole = true
		signals.SearchConsoleMethod = "meta-tag"
	}

	// Microsoft Clarity
	signals.HasSessionRecording = clarityTagRe.MatchString(html) ||
		claritySetRe.MatchString(html) ||
		strings.Contains(html, "clarity.ms/tag/")
	if m := clarityTagRe.FindStringSubmatch(html); len(m) > 1 {
		signals.SessionRecordingID = m[1]
	}

	// Google Ads
	signals.HasAdsTag = adsIDRe.MatchString(html) ||
		adsDoubleRe.MatchString(html) ||
		adsConfigRe.MatchString(html)
	if id := adsIDRe.FindString(html); id != "" {
		signals.AdsTagID = id
	}

	signals.HasAdsConversion = strings.Contains(html, "gtag_report_conversion") ||
		strings.Contains(html, "gtag('event', 'conversion'") ||
		strings.Contains(html, "googleadservices.com/pagead/conversion")

	// Structured-data flags ride along so rules can reason about them with
	// the marketing stack in one place
	signals.HasLocalBusiness = jsonLD.hasLocalBusiness
	signals.HasProductSchema = jsonLD.hasProduct

	// Product schema plus an analytics install is the observable footprint
	// of a Merchant Center setup
	signals.HasMerchantIndicator = jsonLD.hasProduct && (signals.HasTagManager || signals.HasAnalytics)

	return signals
}
