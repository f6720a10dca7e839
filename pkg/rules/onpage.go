package rules

import (
	"fmt"

	"seo-audit/pkg/models"
)

func checkMetaDescription(in *Input) *models.Issue {
	var pagesWithout []models.PageSignals
	for _, p := range in.Pages {
		if p.MetaDescription == "" {
			pagesWithout = append(pagesWithout, p)
		}
	}
	if in.Homepage.MetaDescription != "" && len(pagesWithout) == 0 {
		return nil
	}

	var evidence, affected []string
	if in.Homepage.MetaDescription == "" {
		evidence = append(evidence, "Homepage has no meta description tag")
		affected = append(affected, in.Homepage.URL)
	}
	if len(pagesWithout) > 0 {
		evidence = append(evidence, fmt.Sprintf("%d page(s) missing descriptions", len(pagesWithout)))
		for _, p := range pagesWithout {
			affected = append(affected, p.URL)
		}
	}

	return &models.Issue{
		ID:           "missing-meta-description",
		Title:        "Missing or empty meta description",
		Severity:     models.SeverityHigh,
		Category:     models.CategoryOnPage,
		WhyItMatters: "Meta descriptions appear in search results and directly influence click-through rates (CTR). Pages without descriptions may display random text snippets, reducing user clicks by up to 50% and impacting your organic traffic.",
		Evidence:     evidence,
		AffectedURLs: affected,
		FixSteps: []string{
			"Step 1: Open your page source code or CMS editor",
			"Step 2: Locate the <head> section of your HTML",
			"Step 3: Add a unique meta description tag for each page",
			"Step 4: Write 150-160 characters that accurately describe the page content",
			"Step 5: Include your primary keyword naturally within the first 120 characters",
			"Step 6: Add a compelling call-to-action or value proposition",
			"Step 7: Test the preview using Google Search Console or an SEO tool",
		},
		PlatformFixSteps: &models.PlatformFixSteps{
			WordPress: []string{
				"Step 1: Install Yoast SEO plugin (free) from Plugins > Add New",
				"Step 2: After activation, edit the page where description is missing",
				"Step 3: Scroll down to the Yoast SEO meta box below the content editor",
				"Step 4: Click \"Edit snippet\" to expand the preview editor",
				"Step 5: Enter your meta description (aim for 150-160 characters)",
				"Step 6: The traffic light indicator shows green when optimal",
				"Step 7: Click \"Update\" to save the page",
				"Step 8: Use \"Preview\" to verify changes appear correctly",
			},
			Shopify: []string{
				"Step 1: From admin panel, go to Online Store > Pages (or Products)",
				"Step 2: Click on the page needing a meta description",
				"Step 3: Scroll to \"Search engine listing preview\" section",
				"Step 4: Click \"Edit website SEO\" to expand options",
				"Step 5: Enter your description in the \"Description\" field",
				"Step 6: Keep it under 160 characters - counter shows remaining",
				"Step 7: Click \"Save\" to apply changes",
				"Step 8: Wait 24-48 hours for Google to re-index",
			},
			Webflow: []string{
				"Step 1: Open your project in the Webflow Designer",
				"Step 2: Select the page from the Pages panel (left sidebar)",
				"Step 3: Click the gear icon to open Page Settings",
				"Step 4: Scroll to \"SEO Settings\" section",
				"Step 5: Enter your meta description in the \"Meta Description\" field",
				"Step 6: Click \"Save\" and then \"Publish\" to make live",
			},
			Custom: []string{
				"Step 1: Open your HTML file in a code editor",
				"Step 2: Locate the <head> section",
				"Step 3: Add: <meta name=\"description\" content=\"Your description here\">",
				"Step 4: Ensure description is unique per page",
				"Step 5: Upload the modified file to your server",
				"Step 6: Clear any server-side or CDN cache",
			},
		},
		Snippets: []string{
			"<meta name=\"description\" content=\"Your compelling page description here. Keep it under 160 characters and include your main keyword. Add a call-to-action.\">",
		},
		VerifySteps: []string{
			"Step 1: View page source (Ctrl+U or Cmd+Option+U) and search for \"description\"",
			"Step 2: Use Google Search Console > URL Inspection to check indexed description",
			"Step 3: Share URL on social media preview tools to verify display",
		},
		MistakesToAvoid: []string{
			"Do not copy the same description to multiple pages - each must be unique",
			"Do not stuff keywords unnaturally - write for humans first",
			"Do not exceed 160 characters - anything beyond gets truncated",
			"Do not leave dynamic placeholders like {page_title} unresolved",
		},
	}
}

func checkTitleLength(in *Input) *models.Issue {
	length := in.Homepage.TitleLength
	if length == 0 || (length >= 30 && length <= 60) {
		return nil
	}

	title := "Title tag too long"
	if length < 30 {
		title = "Title tag too short"
	}
	return &models.Issue{
		ID:           "title-length",
		Title:        title,
		Severity:     models.SeverityMedium,
		Category:     models.CategoryOnPage,
		WhyItMatters: "Title tags should be between 30-60 characters. Too short loses keyword opportunity; too long gets truncated in search results.",
		Evidence:     []string{fmt.Sprintf("Homepage title is %d characters: %q", length, in.Homepage.Title)},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Adjust title to be between 30-60 characters",
			"Include primary keyword near the beginning",
			"Make it compelling and descriptive",
		},
		VerifySteps: []string{"Check page source for updated title tag"},
	}
}

func checkH1(in *Input) *models.Issue {
	var badPages []models.PageSignals
	for _, p := range in.Pages {
		if p.H1Count != 1 {
			badPages = append(badPages, p)
		}
	}
	homeOK := in.Homepage.H1Count == 1
	if homeOK && len(badPages) == 0 {
		return nil
	}

	title := "H1 issues on internal pages"
	if in.Homepage.H1Count == 0 {
		title = "Missing H1 heading"
	} else if in.Homepage.H1Count > 1 {
		title = "Multiple H1 headings detected"
	}

	var evidence, affected []string
	if in.Homepage.H1Count == 0 {
		evidence = append(evidence, "Homepage has no H1 tag")
	} else if in.Homepage.H1Count > 1 {
		evidence = append(evidence, fmt.Sprintf("Homepage has %d H1 tags", in.Homepage.H1Count))
	}
	if len(badPages) > 0 {
		evidence = append(evidence, fmt.Sprintf("%d internal pages have H1 issues", len(badPages)))
	}
	if !homeOK {
		affected = append(affected, in.Homepage.URL)
	}
	for _, p := range badPages {
		affected = append(affected, p.URL)
	}

	return &models.Issue{
		ID:           "h1-issues",
		Title:        title,
		Severity:     models.SeverityHigh,
		Category:     models.CategoryOnPage,
		WhyItMatters: "Each page should have exactly one H1 heading that describes the main topic. Missing or multiple H1s can confuse search engines.",
		Evidence:     evidence,
		AffectedURLs: affected,
		FixSteps: []string{
			"Ensure exactly one H1 tag per page",
			"Place H1 near the top of the main content",
			"Include primary keyword in H1",
		},
		VerifySteps: []string{
			"Inspect page source for <h1> tag",
			"Confirm only one H1 exists",
		},
	}
}

func checkOpenGraph(in *Input) *models.Issue {
	if in.Homepage.HasOpenGraph {
		return nil
	}
	return &models.Issue{
		ID:           "missing-og",
		Title:        "Missing Open Graph meta tags",
		Severity:     models.SeverityLow,
		Category:     models.CategoryOnPage,
		WhyItMatters: "Open Graph tags control how your content appears when shared on social media. Without them, social shares may look unappealing.",
		Evidence:     []string{"No Open Graph (og:) meta tags found"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps:     []string{"Add og:title, og:description, og:image, and og:url tags"},
		Snippets: []string{
			"<meta property=\"og:title\" content=\"Your Page Title\">",
			"<meta property=\"og:description\" content=\"Description for social sharing\">",
			"<meta property=\"og:image\" content=\"https://example.com/image.jpg\">",
			"<meta property=\"og:url\" content=\"https://example.com/page\">",
		},
		VerifySteps: []string{"Use Facebook Sharing Debugger to test"},
	}
}

func checkMetaDescriptionLength(in *Input) *models.Issue {
	if in.Homepage.MetaDescription == "" {
		return nil
	}
	length := in.Homepage.MetaDescriptionLength
	if length >= 120 && length <= 160 {
		return nil
	}

	title := "Meta description too long"
	if length < 120 {
		title = "Meta description too short"
	}
	return &models.Issue{
		ID:           "meta-description-length",
		Title:        title,
		Severity:     models.SeverityLow,
		Category:     models.CategoryOnPage,
		WhyItMatters: "Meta descriptions should be 120-160 characters. Too short misses opportunity to convey value; too long gets truncated in search results.",
		Evidence:     []string{fmt.Sprintf("Homepage meta description is %d characters", length)},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Review your current meta description",
			"Step 2: Rewrite to be between 120-160 characters",
			"Step 3: Include primary keyword in the first 120 characters",
			"Step 4: End with a call-to-action if space permits",
		},
		VerifySteps: []string{"Step 1: Check meta description length using a character counter"},
	}
}

func checkTwitterCards(in *Input) *models.Issue {
	if in.Homepage.HasTwitterCards {
		return nil
	}
	return &models.Issue{
		ID:           "missing-twitter-cards",
		Title:        "Missing Twitter Card meta tags",
		Severity:     models.SeverityLow,
		Category:     models.CategoryOnPage,
		WhyItMatters: "Twitter Cards control how your content appears when shared on Twitter/X. Without them, shares may display poorly formatted previews.",
		Evidence:     []string{"No Twitter Card (twitter:) meta tags found"},
		AffectedURLs: []string{in.Homepage.URL},
		FixSteps: []string{
			"Step 1: Add twitter:card meta tag (summary_large_image recommended)",
			"Step 2: Add twitter:title and twitter:description tags",
			"Step 3: Add twitter:image tag with a high-quality image URL",
			"Step 4: Optionally add twitter:site with your Twitter handle",
		},
		Snippets: []string{
			"<meta name=\"twitter:card\" content=\"summary_large_image\">",
			"<meta name=\"twitter:title\" content=\"Your Page Title\">",
			"<meta name=\"twitter:description\" content=\"Description for Twitter shares\">",
			"<meta name=\"twitter:image\" content=\"https://example.com/image.jpg\">",
		},
		VerifySteps: []string{"Step 1: Use Twitter Card Validator to test your page"},
	}
}
