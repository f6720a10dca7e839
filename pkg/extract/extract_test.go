package extract

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExtractor() *Extractor {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewExtractor(log)
}

const fullPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Denver Plumbing Experts - Emergency Service</title>
<meta name="description" content="Fast, reliable plumbing repair in Denver. Our licensed plumbers handle emergencies, drain cleaning, and water heater installs. Call today.">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="index, follow">
<link rel="canonical" href="https://example.com/">
<meta property="og:title" content="Denver Plumbing Experts">
<meta name="twitter:card" content="summary">
<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "Organization", "name": "Denver Plumbing Experts"}
</script>
</head>
<body>
<h1>Emergency Plumbing Repair in Denver</h1>
<p>We fix leaks, clogs, and burst pipes around the clock. Trusted local plumbers since 1995.</p>
<a href="/about">About</a>
<a href="/services">Services</a>
<a href="#top">Top</a>
<a href="https://example.com/contact">Contact</a>
<a href="https://twitter.com/denverplumbers">Twitter</a>
<img src="/van.jpg" alt="Service van">
<img src="/crew.jpg" alt="Our crew">
<img src="/pipes.jpg">
<img src="/logo.jpg" alt="">
</body>
</html>`

func TestExtract_FullPage(t *testing.T) {
	signals, err := testExtractor().Extract("https://example.com/", 200, []byte(fullPageHTML))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", signals.URL)
	assert.Equal(t, 200, signals.Status)
	assert.Equal(t, "Denver Plumbing Experts - Emergency Service", signals.Title)
	assert.Equal(t, 43, signals.TitleLength)
	assert.Contains(t, signals.MetaDescription, "reliable plumbing repair")
	assert.Equal(t, len([]rune(signals.MetaDescription)), signals.MetaDescriptionLength)

	assert.Equal(t, 1, signals.H1Count)
	assert.Equal(t, "Emergency Plumbing Repair in Denver", signals.H1Text)

	assert.Equal(t, "https://example.com/", signals.Canonical)
	assert.Equal(t, "index, follow", signals.MetaRobots)
	assert.True(t, signals.HasViewport)
	assert.True(t, signals.HasLang)
	assert.Equal(t, "en", signals.LangValue)
	assert.True(t, signals.HasOpenGraph)
	assert.True(t, signals.HasTwitterCards)

	assert.True(t, signals.HasJSONLD)
	assert.Equal(t, 1, signals.JSONLDBlocks)
	assert.Equal(t, 1, signals.JSONLDParsed)
	assert.Contains(t, signals.JSONLDTypes, "Organization")

	assert.Equal(t, 4, signals.InternalLinks, "relative, fragment, and same-host links are internal")
	assert.Equal(t, 1, signals.ExternalLinks)

	assert.Equal(t, 4, signals.TotalImages)
	assert.Equal(t, 2, signals.ImagesWithoutAlt, "absent and empty alt both count as missing")

	assert.Greater(t, signals.WordCount, 10)

	// Organization schema flags local business; no marketing scripts present
	assert.True(t, signals.Marketing.HasLocalBusiness)
	assert.False(t, signals.Marketing.HasAnalytics)
	assert.False(t, signals.Marketing.HasTagManager)
	assert.False(t, signals.Marketing.HasProductSchema)
}

func TestExtract_CanonicalAttributeOrder(t *testing.T) {
	// Attribute order inside the tag must not affect extraction
	pages := map[string]string{
		"rel first":  `<html><head><link rel="canonical" href="https://example.com/page"></head><body></body></html>`,
		"href first": `<html><head><link href="https://example.com/page" rel="canonical"></head><body></body></html>`,
	}

	for name, html := range pages {
		t.Run(name, func(t *testing.T) {
			signals, err := testExtractor().Extract("https://example.com/page", 200, []byte(html))
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/page", signals.Canonical)
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	extractor := testExtractor()

	first, err := extractor.Extract("https://example.com/", 200, []byte(fullPageHTML))
	require.NoError(t, err)
	second, err := extractor.Extract("https://example.com/", 200, []byte(fullPageHTML))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input bytes must yield identical signals")
}

func TestExtract_BarePage(t *testing.T) {
	signals, err := testExtractor().Extract("https://example.com/", 200, []byte("<html><body><p>hi</p></body></html>"))
	require.NoError(t, err)

	assert.Empty(t, signals.Title)
	assert.Zero(t, signals.TitleLength)
	assert.Empty(t, signals.MetaDescription)
	assert.Zero(t, signals.H1Count)
	assert.False(t, signals.HasViewport)
	assert.False(t, signals.HasLang)
	assert.False(t, signals.HasOpenGraph)
	assert.False(t, signals.HasJSONLD)
	assert.Zero(t, signals.TotalImages)
}

func TestExtract_JSONLD_Graph(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@context": "https://schema.org", "@graph": [
		{"@type": "WebSite", "name": "Example"},
		{"@type": "LocalBusiness", "name": "Example Shop"}
	]}
	</script></head><body></body></html>`

	signals, err := testExtractor().Extract("https://example.com/", 200, []byte(html))
	require.NoError(t, err)

	assert.Contains(t, signals.JSONLDTypes, "WebSite")
	assert.Contains(t, signals.JSONLDTypes, "LocalBusiness")
	assert.True(t, signals.Marketing.HasLocalBusiness)
}

func TestExtract_JSONLD_TypeArray(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": ["Product", "Thing"], "name": "Widget"}
	</script></head><body></body></html>`

	signals, err := testExtractor().Extract("https://example.com/", 200, []byte(html))
	require.NoError(t, err)

	assert.Contains(t, signals.JSONLDTypes, "Product")
	assert.True(t, signals.Marketing.HasProductSchema)
}

func TestExtract_JSONLD_MalformedBlockIndependence(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{this is not json</script>
	<script type="application/ld+json">{"@type": "Product", "name": "Widget"}</script>
	</head><body></body></html>`

	signals, err := testExtractor().Extract("https://example.com/", 200, []byte(html))
	require.NoError(t, err)

	assert.Equal(t, 2, signals.JSONLDBlocks)
	assert.Equal(t, 1, signals.JSONLDParsed, "malformed block must not hide the valid one")
	assert.True(t, signals.Marketing.HasProductSchema)
}

func TestExtract_LocalBusinessSubtype(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "AutomotiveLocalBusiness", "name": "Garage"}
	</script></head><body></body></html>`

	signals, err := testExtractor().Extract("https://example.com/", 200, []byte(html))
	require.NoError(t, err)

	assert.True(t, signals.Marketing.HasLocalBusiness, "subtypes containing LocalBusiness should match")
}
