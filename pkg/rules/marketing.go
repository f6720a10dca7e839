package rules

import (
	"seo-audit/pkg/models"
)

func checkTagManager(in *Input) *models.Issue {
	if in.Homepage.Marketing.HasTagManager {
		return nil
	}
	return &models.Issue{
		ID:           "missing-gtm",
		Title:        "Google Tag Manager not detected",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryMarketing,
		WhyItMatters: "Google Tag Manager (GTM) is a free tool that lets you manage all tracking codes from one place. Without it, adding new marketing tags requires code changes, slowing down campaigns and risking errors.",
		Evidence:     []string{"No GTM container script detected on the homepage"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Go to tagmanager.google.com and sign in with your Google account",
			"Step 2: Click \"Create Account\" and enter your company name",
			"Step 3: Create a \"Container\" for your website (Web type)",
			"Step 4: Copy the two GTM code snippets provided",
			"Step 5: Paste the first snippet high in the <head> section of all pages",
			"Step 6: Paste the second snippet immediately after the opening <body> tag",
			"Step 7: Use GTM Preview mode to verify installation",
			"Step 8: Publish your container when ready",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install \"Site Kit by Google\" plugin (recommended) or \"GTM4WP\"",
				"Step 2: Connect your Google account when prompted",
				"Step 3: Link your GTM container in the plugin settings",
				"Step 4: The plugin automatically adds GTM code to all pages",
				"Step 5: Verify with GTM Preview or Tag Assistant extension",
			},
			Shopify: []string{
				"Step 1: From Shopify admin, go to Online Store > Themes",
				"Step 2: Click Actions > Edit code",
				"Step 3: In theme.liquid, paste GTM head code after <head>",
				"Step 4: Paste GTM body code after <body>",
				"Step 5: Click Save and test with GTM Preview mode",
			},
			Custom: []string{
				"Step 1: Create a GTM account at tagmanager.google.com",
				"Step 2: Get your GTM container ID (GTM-XXXXXXX)",
				"Step 3: Add GTM script tags to your HTML template",
				"Step 4: Deploy to all pages via your template system",
			},
		},
		Snippets: []string{
			"<!-- GTM Head Code (place high in <head>) -->\n<script>(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':\nnew Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],\nj=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src=\n'https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);\n})(window,document,'script','dataLayer','GTM-XXXXXXX');</script>",
			"<!-- GTM Body Code (place after <body>) -->\n<noscript><iframe src=\"https://www.googletagmanager.com/ns.html?id=GTM-XXXXXXX\"\nheight=\"0\" width=\"0\" style=\"display:none;visibility:hidden\"></iframe></noscript>",
		},
		VerifySteps: []string{
			"Step 1: Install Google Tag Assistant Chrome extension",
			"Step 2: Visit your website and click the extension icon",
			"Step 3: GTM should show as green (working correctly)",
			"Step 4: Or use GTM Preview mode directly in tagmanager.google.com",
		},
		MistakesToAvoid: []string{
			"Do not add GTM code inside another tag manager or duplicate installations",
			"Do not forget the noscript fallback tag after <body>",
			"Do not leave GTM in preview/debug mode in production",
		},
	}
}

func checkAnalytics(in *Input) *models.Issue {
	if in.Homepage.Marketing.HasAnalytics {
		return nil
	}
	return &models.Issue{
		ID:           "missing-ga4",
		Title:        "Google Analytics 4 (GA4) not detected",
		Severity:     models.SeverityHigh,
		Category:     models.CategoryMarketing,
		WhyItMatters: "Google Analytics 4 is essential for understanding your website traffic, user behavior, and conversions. Without analytics, you cannot measure marketing effectiveness or make data-driven decisions.",
		Evidence:     []string{"No GA4 tracking code (G-XXXXXXX) detected on the homepage"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Go to analytics.google.com and sign in",
			"Step 2: Click \"Admin\" (gear icon) > \"Create Property\"",
			"Step 3: Enter your property name and select your timezone/currency",
			"Step 4: Complete the business information questions",
			"Step 5: Accept terms and create your data stream (Web)",
			"Step 6: Copy your Measurement ID (starts with G-)",
			"Step 7: If using GTM: Add a GA4 Configuration tag with this ID",
			"Step 8: If not using GTM: Add the gtag.js code to your site",
			"Step 9: Wait 24-48 hours for data to appear in reports",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install \"Site Kit by Google\" plugin (recommended)",
				"Step 2: Connect your Google account and Analytics",
				"Step 3: Site Kit automatically configures GA4 tracking",
				"Step 4: Or manually add GA4 via a GTM plugin",
				"Step 5: Verify in GA4 Realtime report",
			},
			Shopify: []string{
				"Step 1: Go to Online Store > Preferences",
				"Step 2: Scroll to \"Google Analytics\"",
				"Step 3: Paste your GA4 Measurement ID (G-XXXXXXX)",
				"Step 4: Enable enhanced ecommerce if selling products",
				"Step 5: Click Save and verify in GA4 Realtime",
			},
			Custom: []string{
				"Step 1: Add gtag.js script to your HTML <head>",
				"Step 2: Initialize with your G-XXXXXXX Measurement ID",
				"Step 3: Deploy across all pages",
				"Step 4: Test using GA4 Realtime report",
			},
		},
		Snippets: []string{
			"<!-- GA4 Tracking Code (add to <head>) -->\n<script async src=\"https://www.googletagmanager.com/gtag/js?id=G-XXXXXXX\"></script>\n<script>\n  window.dataLayer = window.dataLayer || [];\n  function gtag(){dataLayer.push(arguments);}\n  gtag('js', new Date());\n  gtag('config', 'G-XXXXXXX');\n</script>",
		},
		VerifySteps: []string{
			"Step 1: Open GA4 and go to Reports > Realtime",
			"Step 2: Visit your website in another tab",
			"Step 3: You should see yourself as an active user within 30 seconds",
			"Step 4: Use Tag Assistant or GTM Preview to verify tag firing",
		},
		MistakesToAvoid: []string{
			"Do not use old Universal Analytics (UA-) codes - they stopped collecting data",
			"Do not install GA4 both directly and through GTM (causes double-counting)",
			"Do not forget to set up conversions/key events for important actions",
		},
	}
}

func checkSearchConsole(in *Input) *models.Issue {
	if in.Homepage.Marketing.HasSearchConsole {
		return nil
	}
	return &models.Issue{
		ID:           "missing-gsc-verification",
		Title:        "Google Search Console verification not detected",
		Severity:     models.SeverityHigh,
		Category:     models.CategoryMarketing,
		WhyItMatters: "Google Search Console is a free tool that shows how Google sees your site, including indexing issues, search queries, and manual penalties. Without it, you are blind to critical SEO problems.",
		Evidence:     []string{"No google-site-verification meta tag found on the homepage"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Go to search.google.com/search-console",
			"Step 2: Click \"Add Property\" and enter your website URL",
			"Step 3: Choose \"URL prefix\" for simplest verification",
			"Step 4: Select \"HTML tag\" verification method",
			"Step 5: Copy the meta tag provided by Google",
			"Step 6: Paste it in your homepage <head> section",
			"Step 7: Click \"Verify\" in Search Console",
			"Step 8: Submit your sitemap at Sitemaps > Add new sitemap",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install \"Site Kit by Google\" or \"Yoast SEO\" plugin",
				"Step 2: Both plugins have Search Console integration",
				"Step 3: Connect your Google account when prompted",
				"Step 4: Verification is handled automatically",
				"Step 5: View search data directly in WordPress dashboard",
			},
			Shopify: []string{
				"Step 1: Copy the verification code from Search Console (just the code value)",
				"Step 2: Go to Online Store > Preferences in Shopify",
				"Step 3: Scroll to \"Google Search Console\"",
				"Step 4: Paste the verification code and Save",
				"Step 5: Return to Search Console and click Verify",
			},
			Custom: []string{
				"Step 1: Add the meta tag to your HTML <head>",
				"Step 2: Alternatively, upload an HTML verification file to root",
				"Step 3: Or verify via DNS TXT record for domain-level access",
				"Step 4: Deploy and click Verify in Search Console",
			},
		},
		Snippets: []string{
			"<!-- GSC Verification (add to <head>) -->\n<meta name=\"google-site-verification\" content=\"YOUR_VERIFICATION_CODE_HERE\">",
		},
		VerifySteps: []string{
			"Step 1: View your page source and search for \"google-site-verification\"",
			"Step 2: In Search Console, your property should show as \"Verified\"",
			"Step 3: Check that your sitemap is submitted and processing",
		},
		MistakesToAvoid: []string{
			"Do not remove the verification tag after verifying - keep it permanently",
			"Do not forget to add all URL variations (www, non-www, http, https)",
			"Do not ignore Search Console alerts - they indicate real issues",
		},
	}
}

func checkClarity(in *Input) *models.Issue {
	if in.Homepage.Marketing.HasSessionRecording {
		return nil
	}
	return &models.Issue{
		ID:           "missing-clarity",
		Title:        "Microsoft Clarity not detected",
		Severity:     models.SeverityLow,
		Category:     models.CategoryMarketing,
		WhyItMatters: "Microsoft Clarity is a free heatmap and session recording tool. It shows exactly how users interact with your site - where they click, how far they scroll, and where they get frustrated. This data is invaluable for improving conversions.",
		Evidence:     []string{"No Microsoft Clarity tracking code detected on the homepage"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Go to clarity.microsoft.com and sign in with Microsoft account",
			"Step 2: Click \"Add new project\" and enter your website URL",
			"Step 3: Copy the Clarity tracking code provided",
			"Step 4: Add the code to your website <head> section (or use GTM)",
			"Step 5: Wait a few hours for recordings and heatmaps to populate",
			"Step 6: Review the Dashboard for insights on user behavior",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install \"Microsoft Clarity\" official plugin from WordPress.org",
				"Step 2: Activate the plugin and go to Settings > Clarity",
				"Step 3: Enter your Clarity Project ID",
				"Step 4: Click Save - tracking begins automatically",
				"Step 5: Or add via GTM using Clarity's GTM template",
			},
			Shopify: []string{
				"Step 1: Go to Online Store > Themes > Edit code",
				"Step 2: Open theme.liquid",
				"Step 3: Paste Clarity code before </head>",
				"Step 4: Save and verify in Clarity dashboard",
			},
			Custom: []string{
				"Step 1: Get your Clarity project ID from clarity.microsoft.com",
				"Step 2: Add the tracking script to your HTML <head>",
				"Step 3: Deploy across all pages",
				"Step 4: Verify recordings appear in your Clarity dashboard",
			},
		},
		Snippets: []string{
			"<!-- Microsoft Clarity (add to <head>) -->\n<script type=\"text/javascript\">\n  (function(c,l,a,r,i,t,y){\n    c[a]=c[a]||function(){(c[a].q=c[a].q||[]).push(arguments)};\n    t=l.createElement(r);t.async=1;t.src=\"https://www.clarity.ms/tag/\"+i;\n    y=l.getElementsByTagName(r)[0];y.parentNode.insertBefore(t,y);\n  })(window,document,\"clarity\",\"script\",\"YOUR_PROJECT_ID\");\n</script>",
		},
		VerifySteps: []string{
			"Step 1: Visit your website after adding Clarity",
			"Step 2: Log into Clarity dashboard within 2-3 hours",
			"Step 3: Check if recordings and heatmaps are showing data",
			"Step 4: Use browser dev tools to confirm clarity.ms script loads",
		},
		MistakesToAvoid: []string{
			"Do not forget to comply with privacy laws - Clarity has GDPR/cookie controls",
			"Do not install on pages with sensitive data input without masking",
			"Do not ignore the \"Dead Clicks\" and \"Rage Clicks\" metrics",
		},
	}
}

func checkLocalBusiness(in *Input) *models.Issue {
	if in.Homepage.Marketing.HasLocalBusiness {
		return nil
	}
	return &models.Issue{
		ID:           "missing-local-business",
		Title:        "Google Business Profile / LocalBusiness schema not detected",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryMarketing,
		WhyItMatters: "For local businesses, Google Business Profile is essential for appearing in local search results, Google Maps, and the Knowledge Panel. LocalBusiness schema on your website reinforces this connection and improves local SEO.",
		Evidence:     []string{"No LocalBusiness, Organization, or similar structured data found"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Claim your Google Business Profile at business.google.com",
			"Step 2: Complete ALL business information (name, address, phone, hours)",
			"Step 3: Verify your business (postcard, phone, or email)",
			"Step 4: Add photos, services, and products to your profile",
			"Step 5: Add LocalBusiness structured data to your website",
			"Step 6: Ensure NAP (Name, Address, Phone) matches exactly everywhere",
			"Step 7: Encourage customer reviews on your Google profile",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install \"Yoast SEO\" or \"Rank Math\" plugin",
				"Step 2: Go to SEO > Search Appearance > Content Types",
				"Step 3: Configure your Organization/LocalBusiness schema",
				"Step 4: Add your business details (address, logo, social profiles)",
				"Step 5: Validate with Google Rich Results Test",
			},
			Shopify: []string{
				"Step 1: Use a schema app like \"JSON-LD for SEO\" from App Store",
				"Step 2: Configure your business information in the app",
				"Step 3: Or manually add JSON-LD to theme.liquid",
				"Step 4: Test with Google Rich Results Test",
			},
			Custom: []string{
				"Step 1: Create LocalBusiness JSON-LD structured data",
				"Step 2: Include name, address, phone, hours, geo coordinates",
				"Step 3: Add to your homepage <head> or before </body>",
				"Step 4: Validate with schema.org validator",
			},
		},
		Snippets: []string{
			"<script type=\"application/ld+json\">\n{\n  \"@context\": \"https://schema.org\",\n  \"@type\": \"LocalBusiness\",\n  \"name\": \"Your Business Name\",\n  \"image\": \"https://example.com/logo.jpg\",\n  \"telephone\": \"+1-555-555-5555\",\n  \"address\": {\n    \"@type\": \"PostalAddress\",\n    \"streetAddress\": \"123 Main Street\",\n    \"addressLocality\": \"Your City\",\n    \"addressRegion\": \"State\",\n    \"postalCode\": \"12345\",\n    \"addressCountry\": \"US\"\n  },\n  \"openingHoursSpecification\": {\n    \"@type\": \"OpeningHoursSpecification\",\n    \"dayOfWeek\": [\"Monday\", \"Tuesday\", \"Wednesday\", \"Thursday\", \"Friday\"],\n    \"opens\": \"09:00\",\n    \"closes\": \"17:00\"\n  },\n  \"url\": \"https://example.com\",\n  \"sameAs\": [\n    \"https://www.facebook.com/yourbusiness\",\n    \"https://www.instagram.com/yourbusiness\"\n  ]\n}\n</script>",
		},
		VerifySteps: []string{
			"Step 1: Use Google Rich Results Test on your homepage",
			"Step 2: Search your business name on Google to check Knowledge Panel",
			"Step 3: Verify your Google Business Profile is verified and complete",
			"Step 4: Check Google Search Console for structured data errors",
		},
		MistakesToAvoid: []string{
			"Do not use inconsistent NAP across directories (name, address, phone)",
			"Do not leave Google Business Profile incomplete",
			"Do not ignore negative reviews - respond professionally",
		},
		ManualCheck: true,
	}
}

func checkGoogleAds(in *Input) *models.Issue {
	if in.Homepage.Marketing.HasAdsTag {
		return nil
	}
	return &models.Issue{
		ID:           "missing-google-ads",
		Title:        "Google Ads Tag not detected (free setup recommended)",
		Severity:     models.SeverityLow,
		Category:     models.CategoryMarketing,
		WhyItMatters: "Even if you are not running paid ads yet, setting up Google Ads is free and allows you to build remarketing audiences from day one. When you are ready to advertise, you will have valuable audience data already collected.",
		Evidence:     []string{"No Google Ads tag (AW-XXXXXXX) detected on the homepage"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Go to ads.google.com and create a free account",
			"Step 2: Skip campaign creation for now (optional)",
			"Step 3: Go to Tools & Settings > Setup > Google Tag",
			"Step 4: Find your Google Ads Tag ID (AW-XXXXXXXXX)",
			"Step 5: Add the tag to your website via GTM or directly",
			"Step 6: Create a \"All Visitors\" remarketing audience",
			"Step 7: Audiences build passively even without active campaigns",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: If using GTM, add Google Ads Remarketing tag in GTM",
				"Step 2: Or use \"Insert Headers and Footers\" plugin",
				"Step 3: Add the gtag.js code with your AW- ID",
				"Step 4: Verify with Google Ads Tag Assistant",
			},
			Shopify: []string{
				"Step 1: Go to Settings > Apps and sales channels",
				"Step 2: Install \"Google & YouTube\" official app",
				"Step 3: Connect your Google Ads account",
				"Step 4: Enable audience building and tracking",
			},
			Custom: []string{
				"Step 1: Add gtag.js with your AW- conversion ID",
				"Step 2: Configure for remarketing (not just conversions)",
				"Step 3: Deploy across all pages",
				"Step 4: Verify in Google Ads > Audience Manager",
			},
		},
		Snippets: []string{
			"<!-- Google Ads Tag (add to <head>) -->\n<script async src=\"https://www.googletagmanager.com/gtag/js?id=AW-XXXXXXXXX\"></script>\n<script>\n  window.dataLayer = window.dataLayer || [];\n  function gtag(){dataLayer.push(arguments);}\n  gtag('js', new Date());\n  gtag('config', 'AW-XXXXXXXXX');\n</script>",
		},
		VerifySteps: []string{
			"Step 1: Install Google Tag Assistant Chrome extension",
			"Step 2: Visit your site and check for Google Ads tag",
			"Step 3: In Google Ads, check Audience Manager for list growth",
			"Step 4: Verify tag status shows \"Active\" in Google Ads",
		},
		MistakesToAvoid: []string{
			"Do not enable campaigns without proper conversion tracking",
			"Do not forget to set up remarketing audiences early",
			"Do not run ads without testing conversion events first",
		},
		ManualCheck: true,
	}
}

func checkConversionTracking(in *Input) *models.Issue {
	if !in.Homepage.Marketing.HasAdsTag || in.Homepage.Marketing.HasAdsConversion {
		return nil
	}
	return &models.Issue{
		ID:           "missing-conversion-tracking",
		Title:        "Google Ads conversion tracking not detected",
		Severity:     models.SeverityHigh,
		Category:     models.CategoryMarketing,
		WhyItMatters: "You have Google Ads installed but no conversion tracking. Without conversion tracking, Google cannot optimize your campaigns for actual results (sales, leads, signups), meaning you will waste ad spend on low-quality traffic.",
		Evidence:     []string{"Google Ads tag found but no conversion events detected"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: In Google Ads, go to Goals > Conversions > Summary",
			"Step 2: Click \"+ New conversion action\" > Website",
			"Step 3: Enter your website URL and scan for events",
			"Step 4: Define your primary conversions (purchase, lead form, signup)",
			"Step 5: Get the conversion tracking code",
			"Step 6: Install via GTM (recommended) or directly on thank-you pages",
			"Step 7: Test conversions using GTM Preview or Tag Assistant",
			"Step 8: Wait for conversions to register before optimizing campaigns",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Use GTM to add conversion tags on form submissions/purchases",
				"Step 2: WooCommerce users: Use \"Google Ads & Marketing\" plugin",
				"Step 3: Set conversion to fire on thank-you/confirmation pages",
				"Step 4: Or use gtag event on form success callbacks",
			},
			Shopify: []string{
				"Step 1: Install \"Google & YouTube\" official app if not done",
				"Step 2: Go to Settings in the app > Conversion tracking",
				"Step 3: Enable purchase and other conversion events",
				"Step 4: Conversion tracking is automatic for checkouts",
			},
			Custom: []string{
				"Step 1: Add gtag conversion code to your confirmation pages",
				"Step 2: Or trigger gtag(\"event\", \"conversion\") via JavaScript",
				"Step 3: Include conversion value and order ID if applicable",
				"Step 4: Test with Tag Assistant before going live",
			},
		},
		Snippets: []string{
			"<!-- Conversion Event (add to thank-you page or trigger on success) -->\n<script>\n  gtag('event', 'conversion', {\n    'send_to': 'AW-XXXXXXXXX/YYYYYYYYYYYY',\n    'value': 99.99,\n    'currency': 'USD',\n    'transaction_id': 'ORDER_12345'\n  });\n</script>",
		},
		VerifySteps: []string{
			"Step 1: Complete a test conversion on your website",
			"Step 2: Check Google Ads > Goals > Conversions for the event",
			"Step 3: Use Tag Assistant to verify conversion tag fires correctly",
			"Step 4: Allow up to 24 hours for conversions to appear in reports",
		},
		MistakesToAvoid: []string{
			"Do not track page views as conversions - only track meaningful actions",
			"Do not forget to pass conversion value for e-commerce",
			"Do not launch campaigns before verifying conversions work",
		},
	}
}

func checkMerchantCenter(in *Input) *models.Issue {
	if !in.Homepage.Marketing.HasProductSchema || in.Homepage.Marketing.HasMerchantIndicator {
		return nil
	}
	return &models.Issue{
		ID:           "missing-merchant-center",
		Title:        "Google Merchant Center free listings opportunity",
		Severity:     models.SeverityMedium,
		Category:     models.CategoryMarketing,
		WhyItMatters: "Your site has product data but may not be listed in Google Shopping free listings. Merchant Center allows your products to appear for free in Google Shopping, Images, and Search results.",
		Evidence:     []string{"Product schema detected but full Merchant Center integration may be missing"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Go to merchants.google.com and sign up (free)",
			"Step 2: Verify and claim your website URL",
			"Step 3: Create a product feed (manually, via Shopify, or with plugins)",
			"Step 4: Submit your feed to Merchant Center",
			"Step 5: Opt into \"Free product listings\" in Growth > Manage programs",
			"Step 6: Ensure products have: title, price, availability, images, GTIN/MPN",
			"Step 7: Fix any disapprovals in the Diagnostics section",
			"Step 8: Connect Google Ads for paid Shopping campaigns later",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install \"Google Listings & Ads\" WooCommerce extension",
				"Step 2: Connect your Merchant Center and Google Ads accounts",
				"Step 3: Sync your WooCommerce products automatically",
				"Step 4: Review product status in the plugin dashboard",
				"Step 5: Fix any missing attributes like GTIN or brand",
			},
			Shopify: []string{
				"Step 1: Install \"Google & YouTube\" official app",
				"Step 2: Connect your Merchant Center account",
				"Step 3: Sync products from Shopify to Merchant Center",
				"Step 4: Enable \"Free listings\" in the app settings",
				"Step 5: Ensure all products have required attributes",
			},
			Custom: []string{
				"Step 1: Create a product feed in XML, TXT, or Google Sheets format",
				"Step 2: Include required attributes: id, title, description, link, image_link, price, availability",
				"Step 3: Upload feed to Merchant Center > Products > Feeds",
				"Step 4: Set up scheduled fetches if feed URL is accessible",
			},
		},
		Snippets: []string{
			"<!-- Product Schema Example (for each product) -->\n<script type=\"application/ld+json\">\n{\n  \"@context\": \"https://schema.org\",\n  \"@type\": \"Product\",\n  \"name\": \"Example Product\",\n  \"image\": \"https://example.com/product.jpg\",\n  \"description\": \"Product description here\",\n  \"brand\": {\"@type\": \"Brand\", \"name\": \"Brand Name\"},\n  \"gtin13\": \"0012345678905\",\n  \"offers\": {\n    \"@type\": \"Offer\",\n    \"price\": \"49.99\",\n    \"priceCurrency\": \"USD\",\n    \"availability\": \"https://schema.org/InStock\",\n    \"url\": \"https://example.com/product\"\n  }\n}\n</script>",
		},
		VerifySteps: []string{
			"Step 1: Check Merchant Center Diagnostics for product status",
			"Step 2: Search Google Shopping for your products by name",
			"Step 3: Use Google Rich Results Test on product pages",
			"Step 4: Monitor impressions in Merchant Center Performance tab",
		},
		MistakesToAvoid: []string{
			"Do not submit products without required attributes (price, availability, image)",
			"Do not use stock photos that violate image policies",
			"Do not list products that violate Google Shopping policies",
		},
		ManualCheck: true,
	}
}
