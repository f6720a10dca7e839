package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

const testSitemapXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/</loc></url>
  <url><loc>https://example.com/about</loc></url>
</urlset>`

func TestSitemapCandidates(t *testing.T) {
	checker := NewSitemapChecker(testFetcher(0), 3, testLogger())
	base, _ := url.Parse("https://example.com")

	t.Run("override wins", func(t *testing.T) {
		got := checker.Candidates(base, "https://example.com/custom.xml", []string{"https://example.com/from-robots.xml"})
		if len(got) != 1 || got[0] != "https://example.com/custom.xml" {
			t.Errorf("unexpected candidates: %v", got)
		}
	})

	t.Run("robots declarations capped", func(t *testing.T) {
		declared := []string{"a.xml", "b.xml", "c.xml", "d.xml", "e.xml"}
		got := checker.Candidates(base, "", declared)
		if len(got) != 3 {
			t.Errorf("expected cap at 3 declared sitemaps, got %d", len(got))
		}
	})

	t.Run("conventional fallback", func(t *testing.T) {
		got := checker.Candidates(base, "", nil)
		want := []string{"https://example.com/sitemap.xml", "https://example.com/sitemap_index.xml"}
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("unexpected fallback candidates: %v", got)
		}
	})
}

func TestSitemapCheck(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testSitemapXML)
	})
	mux.HandleFunc("/broken.xml", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>definitely not a sitemap</html>")
	})
	mux.HandleFunc("/empty.xml", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<?xml version="1.0"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	checker := NewSitemapChecker(testFetcher(0), 3, testLogger())

	t.Run("valid sitemap counted", func(t *testing.T) {
		found, err := checker.Check(context.Background(), []string{server.URL + "/sitemap.xml"})
		if err != nil {
			t.Fatalf("Check returned error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 sitemap, got %d", len(found))
		}
		if found[0].URLCount != 2 {
			t.Errorf("expected 2 URLs, got %d", found[0].URLCount)
		}
	})

	t.Run("missing candidate dropped", func(t *testing.T) {
		found, err := checker.Check(context.Background(), []string{server.URL + "/nope.xml"})
		if err != nil {
			t.Fatalf("Check returned error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected 404 candidate to be dropped, got %v", found)
		}
	})

	t.Run("unparseable candidate kept with errors", func(t *testing.T) {
		found, err := checker.Check(context.Background(), []string{server.URL + "/broken.xml"})
		if err != nil {
			t.Fatalf("Check returned error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected parse-failed entry to be kept, got %d entries", len(found))
		}
		if found[0].URLCount != 0 || len(found[0].Errors) == 0 {
			t.Errorf("expected zero count with error note, got %+v", found[0])
		}
	})

	t.Run("empty sitemap dropped", func(t *testing.T) {
		found, err := checker.Check(context.Background(), []string{server.URL + "/empty.xml"})
		if err != nil {
			t.Fatalf("Check returned error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected zero-URL sitemap to be dropped, got %v", found)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := checker.Check(ctx, []string{server.URL + "/sitemap.xml"})
		if err == nil {
			t.Fatal("expected context error")
		}
	})
}
