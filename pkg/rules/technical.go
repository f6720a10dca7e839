package rules

import (
	"fmt"

	"seo-audit/pkg/models"
)

func checkCanonical(in *Input) *models.Issue {
	if in.Homepage.Canonical != "" {
		return nil
	}
	return &models.Issue{
		ID:           "missing-canonical",
		Title:        "Missing canonical tag",
		Severity:     models.SeverityCritical,
		Category:     models.CategoryIndexing,
		WhyItMatters: "Canonical tags tell search engines which URL is the preferred version. Without them, duplicate content issues can dilute ranking signals.",
		Evidence:     []string{"Homepage has no canonical tag"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Add canonical tag to every indexable page",
			"Self-reference canonical for unique pages",
			"Use absolute URLs, not relative",
		},
		Snippets:    []string{fmt.Sprintf("<link rel=\"canonical\" href=%q>", in.Homepage.URL)},
		VerifySteps: []string{"Check page source for canonical tag in <head>"},
	}
}

func checkViewport(in *Input) *models.Issue {
	if in.Homepage.HasViewport {
		return nil
	}
	return &models.Issue{
		ID:           "missing-viewport",
		Title:        "Missing viewport meta tag",
		Severity:     models.SeverityCritical,
		Category:     models.CategoryTechnical,
		WhyItMatters: "The viewport meta tag is essential for mobile responsiveness. Without it, your site may not display properly on mobile devices, hurting rankings.",
		Evidence:     []string{"No viewport meta tag found"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps:     []string{"Add viewport meta tag to the <head> section of all pages"},
		Snippets:     []string{"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">"},
		VerifySteps:  []string{"View page source and confirm viewport tag exists"},
	}
}

func checkLang(in *Input) *models.Issue {
	if in.Homepage.HasLang {
		return nil
	}
	return &models.Issue{
		ID:           "missing-lang",
		Title:        "Missing HTML lang attribute",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryTechnical,
		WhyItMatters: "The lang attribute helps search engines understand the language of your content and improves accessibility for screen readers.",
		Evidence:     []string{"No lang attribute on <html> tag"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps:     []string{"Add lang attribute to the <html> tag"},
		Snippets:     []string{"<html lang=\"en\">"},
		VerifySteps:  []string{"Check that <html> tag has lang attribute"},
	}
}

func checkRobotsTxt(in *Input) *models.Issue {
	if in.Robots != nil && in.Robots.Found {
		return nil
	}
	evidence := []string{"No robots.txt found at /robots.txt"}
	if in.Robots != nil && len(in.Robots.Errors) > 0 {
		evidence = in.Robots.Errors
	}
	origin := in.TargetURL.Scheme + "://" + in.TargetURL.Host
	return &models.Issue{
		ID:           "missing-robots-txt",
		Title:        "robots.txt file not found",
		Severity:     models.SeverityHigh,
		Category:     models.CategoryIndexing,
		WhyItMatters: "robots.txt controls which pages search engines can crawl. Missing robots.txt can lead to inefficient crawling.",
		Evidence:     evidence,
		FixSteps: []string{
			"Create robots.txt file at website root",
			"Include Sitemap directive",
		},
		Snippets:    []string{fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml", origin)},
		VerifySteps: []string{"Access yoursite.com/robots.txt directly"},
	}
}

func checkImagesAlt(in *Input) *models.Issue {
	total := in.Homepage.ImagesWithoutAlt
	for _, p := range in.Pages {
		total += p.ImagesWithoutAlt
	}
	if total == 0 {
		return nil
	}
	return &models.Issue{
		ID:           "images-missing-alt",
		Title:        "Images missing alt text",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryImages,
		WhyItMatters: "Alt text helps search engines understand images and is essential for accessibility. Missing alt text is a missed SEO opportunity.",
		Evidence:     []string{fmt.Sprintf("%d images found without alt attributes", total)},
		FixSteps: []string{
			"Add descriptive alt text to all meaningful images",
			"Use empty alt=\"\" for decorative images",
		},
		Snippets:    []string{"<img src=\"product.jpg\" alt=\"Blue running shoes - Nike Air Max 2024\">"},
		VerifySteps: []string{"Audit all <img> tags for alt attributes"},
	}
}

func checkStructuredData(in *Input) *models.Issue {
	if in.Homepage.HasJSONLD {
		return nil
	}
	return &models.Issue{
		ID:           "missing-structured-data",
		Title:        "No structured data detected",
		Severity:     models.SeverityLow,
		Category:     models.CategoryStructuredData,
		WhyItMatters: "Structured data helps search engines understand your content and can enable rich results in search listings.",
		Evidence:     []string{"No JSON-LD structured data found"},
		FixSteps: []string{
			"Add Organization or WebSite schema to homepage",
			"Validate with Google Rich Results Test",
		},
		Snippets: []string{
			fmt.Sprintf("<script type=\"application/ld+json\">\n{\n  \"@context\": \"https://schema.org\",\n  \"@type\": \"Organization\",\n  \"name\": \"Your Company\",\n  \"url\": %q\n}\n</script>", in.Homepage.URL),
		},
		VerifySteps: []string{"Use Google Rich Results Test"},
	}
}

func checkInternalLinks(in *Input) *models.Issue {
	if in.Homepage.InternalLinks >= 5 {
		return nil
	}
	return &models.Issue{
		ID:           "low-internal-links",
		Title:        "Low internal link count on homepage",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryInternalLinking,
		WhyItMatters: "Internal links help search engines discover content, distribute page authority (link equity), and improve user navigation. Pages with few internal links may be poorly indexed.",
		Evidence:     []string{fmt.Sprintf("Homepage has only %d internal links", in.Homepage.InternalLinks)},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Identify your most important pages (products, services, key content)",
			"Step 2: Add text links to these pages within your homepage content",
			"Step 3: Use descriptive anchor text (not \"click here\")",
			"Step 4: Add a clear navigation menu linking to main sections",
			"Step 5: Consider adding a \"Featured\" or \"Popular\" section with links",
			"Step 6: Ensure footer contains links to important pages",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Edit your homepage in the WordPress editor",
				"Step 2: Add text links using the link button (Ctrl+K)",
				"Step 3: Use descriptive anchor text for each link",
				"Step 4: Check Appearance > Menus for navigation links",
				"Step 5: Add a widget with popular/recent posts if applicable",
			},
			Shopify: []string{
				"Step 1: Go to Online Store > Navigation",
				"Step 2: Edit your main menu to include key pages",
				"Step 3: Edit your homepage sections to add featured collections/products",
				"Step 4: Add footer links to important pages",
			},
			Custom: []string{
				"Step 1: Edit your HTML to add <a href=\"/page\">descriptive text</a> links",
				"Step 2: Ensure navigation includes all major sections",
				"Step 3: Add a sitemap-style footer with key page links",
			},
		},
		VerifySteps: []string{
			"Step 1: Use browser developer tools to count <a> tags on homepage",
			"Step 2: Verify all important pages are reachable from homepage",
			"Step 3: Use a crawler tool to visualize internal link structure",
		},
	}
}

func checkThinContent(in *Input) *models.Issue {
	if in.Homepage.WordCount >= 300 {
		return nil
	}
	return &models.Issue{
		ID:           "thin-content",
		Title:        "Thin content detected",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryContent,
		WhyItMatters: "Pages with minimal text content provide limited value to users and search engines. Google considers comprehensive content as a quality signal. Aim for at least 300-500 words of unique, valuable content.",
		Evidence:     []string{fmt.Sprintf("Homepage has only %d words", in.Homepage.WordCount)},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Audit existing content for opportunities to expand",
			"Step 2: Add descriptive sections about your products/services",
			"Step 3: Include customer testimonials or case studies",
			"Step 4: Add FAQ sections with common questions and answers",
			"Step 5: Write unique, valuable content (not filler text)",
			"Step 6: Aim for at least 300-500 words on the homepage",
			"Step 7: Ensure content is scannable with headers and bullet points",
		},
		VerifySteps: []string{
			"Step 1: Use a word counter tool on your visible page content",
			"Step 2: Ensure new content reads naturally and provides value",
			"Step 3: Check that content is unique (not duplicated from other sites)",
		},
		MistakesToAvoid: []string{
			"Do not add low-quality filler text just to increase word count",
			"Do not hide text (white text on white background) - this is penalized",
			"Do not duplicate content from other pages on your site",
		},
		ManualCheck: true,
	}
}

func checkHTTPS(in *Input) *models.Issue {
	if in.TargetURL.Scheme == "https" {
		return nil
	}
	return &models.Issue{
		ID:           "no-https",
		Title:        "Website not using HTTPS",
		Severity:     models.SeverityCritical,
		Category:     models.CategorySecurity,
		WhyItMatters: "HTTPS is a confirmed Google ranking factor. Sites without HTTPS show \"Not Secure\" warnings in browsers, which damages user trust and can significantly hurt conversions and rankings.",
		Evidence:     []string{"Website is served over HTTP instead of HTTPS"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Purchase or obtain a free SSL certificate (Let's Encrypt is free)",
			"Step 2: Install the SSL certificate on your web server",
			"Step 3: Update your site configuration to serve content over HTTPS",
			"Step 4: Set up 301 redirects from HTTP to HTTPS for all URLs",
			"Step 5: Update internal links to use HTTPS",
			"Step 6: Update canonical tags to use HTTPS URLs",
			"Step 7: Submit HTTPS version to Google Search Console",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Contact your hosting provider - many offer free SSL",
				"Step 2: Install the \"Really Simple SSL\" plugin",
				"Step 3: Activate the plugin and follow the setup wizard",
				"Step 4: Update WordPress Address and Site Address in Settings > General",
				"Step 5: Clear all caches after migration",
			},
			Shopify: []string{
				"Step 1: Shopify provides free SSL automatically",
				"Step 2: Go to Online Store > Domains",
				"Step 3: Ensure your domain shows \"SSL pending\" or \"SSL enabled\"",
				"Step 4: If using custom domain, verify DNS settings are correct",
			},
			Custom: []string{
				"Step 1: Obtain SSL certificate from Let's Encrypt (free) or your CA",
				"Step 2: Install certificate on your web server (Apache/Nginx)",
				"Step 3: Configure server to redirect HTTP to HTTPS",
				"Step 4: Update all hardcoded HTTP links in your code",
			},
		},
		Snippets: []string{
			"# Apache .htaccess redirect\nRewriteEngine On\nRewriteCond %{HTTPS} off\nRewriteRule ^(.*)$ https://%{HTTP_HOST}%{REQUEST_URI} [L,R=301]",
			"# Nginx redirect\nserver {\n  listen 80;\n  server_name example.com;\n  return 301 https://$server_name$request_uri;\n}",
		},
		VerifySteps: []string{
			"Step 1: Visit your website and check for the padlock icon in browser",
			"Step 2: Try accessing HTTP version - should redirect to HTTPS",
			"Step 3: Use SSL Labs (ssllabs.com) to test your certificate",
		},
	}
}
