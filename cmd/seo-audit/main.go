package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"seo-audit/pkg/audit"
	"seo-audit/pkg/config"
	"seo-audit/pkg/models"
	"seo-audit/pkg/report"
)

func main() {
	// --- Early Initialization & Flags ---
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel)

	configFileFlag := flag.String("config", "", "Path to YAML config file (optional, defaults apply)")
	urlFlag := flag.String("url", "", "Target URL to audit (required)")
	competitorsFlag := flag.String("competitors", "", "Comma-separated competitor URLs")
	crawlLimitFlag := flag.Int("crawl-limit", 11, "Total pages to analyze including the homepage")
	subdomainsFlag := flag.Bool("subdomains", false, "Treat subdomains as internal")
	sitemapFlag := flag.String("sitemap", "", "Explicit sitemap URL override")
	categoriesFlag := flag.String("categories", "", "Comma-separated check categories (empty = all)")
	keywordsFlag := flag.Bool("keywords", true, "Enable keyword and competitor analysis")
	scopeFlag := flag.String("scope", "national", "Geographic scope (international, national, state, regional)")
	locationFlag := flag.String("location", "", "Target location for geographic keyword suggestions")
	outFlag := flag.String("out", "", "Output file base path (writes .json/.csv/.html/.xlsx per -format)")
	formatFlag := flag.String("format", "json", "Comma-separated export formats: json, csv, html, xlsx")
	logLevelFlag := flag.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")
	quietFlag := flag.Bool("quiet", false, "Suppress stage progress output")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'info'. Error: %v", *logLevelFlag, err)
	} else {
		log.SetLevel(level)
	}

	if *urlFlag == "" {
		log.Fatal("Error: -url flag is required.")
	}

	// --- Load Application Configuration ---
	var appCfg config.AppConfig
	if *configFileFlag != "" {
		log.Infof("Loading configuration from %s", *configFileFlag)
		yamlFile, err := os.ReadFile(*configFileFlag)
		if err != nil {
			log.Fatalf("Read config file '%s' error: %v", *configFileFlag, err)
		}
		if err := yaml.Unmarshal(yamlFile, &appCfg); err != nil {
			log.Fatalf("Parse config file '%s' error: %v", *configFileFlag, err)
		}
	}
	appWarnings, err := appCfg.Validate()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	for _, w := range appWarnings {
		log.Warn(w)
	}

	runCfg := models.AnalysisConfig{
		URL:                   *urlFlag,
		Competitors:           splitList(*competitorsFlag),
		CrawlLimit:            *crawlLimitFlag,
		IncludeSubdomains:     *subdomainsFlag,
		SitemapOverride:       *sitemapFlag,
		EnableKeywordAnalysis: *keywordsFlag,
		GeographicScope:       models.GeographicScope(*scopeFlag),
		TargetLocation:        *locationFlag,
	}
	for _, c := range splitList(*categoriesFlag) {
		cat := models.Category(c)
		if !cat.Valid() {
			log.Fatalf("Unknown check category: %q", c)
		}
		runCfg.EnabledCategories = append(runCfg.EnabledCategories, cat)
	}

	// --- Context & Signal Handling ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		sig := <-sigChan
		log.Warnf("Received signal: %v. Cancelling analysis...", sig)
		cancel()

		select {
		case sig = <-sigChan:
			log.Warnf("Received second signal: %v. Forcing exit.", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			log.Warn("Graceful shutdown period exceeded after signal. Forcing exit.")
			os.Exit(1)
		}
	}()

	// --- Stage Progress Reporting ---
	events := make(chan models.StageEvent, 64)
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		for event := range events {
			if *quietFlag {
				continue
			}
			switch event.Status {
			case models.StageRunning:
				if event.Progress >= 0 {
					fmt.Fprintf(os.Stderr, "[%s] %3d%% %s\n", event.Stage, event.Progress, event.Message)
				} else {
					fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Stage, event.Message)
				}
			case models.StageComplete:
				fmt.Fprintf(os.Stderr, "[%s] done: %s\n", event.Stage, event.Message)
			case models.StageSkipped:
				fmt.Fprintf(os.Stderr, "[%s] skipped: %s\n", event.Stage, event.Message)
			case models.StageError:
				fmt.Fprintf(os.Stderr, "[%s] ERROR: %s\n", event.Stage, event.Err)
			}
		}
	}()

	// --- Run the Analysis ---
	auditor := audit.NewAuditor(&appCfg, events, log)
	result, outcome, err := auditor.Run(ctx, runCfg)
	close(events)
	<-reporterDone

	switch outcome {
	case models.OutcomeCancelled:
		log.Warnf("Analysis cancelled: %v", err)
		os.Exit(130)
	case models.OutcomeError:
		log.Fatalf("Analysis failed: %v", err)
	}

	// --- Exports ---
	formats := splitList(*formatFlag)
	if *outFlag == "" {
		// No output path: JSON to stdout regardless of format list
		if err := report.WriteJSON(os.Stdout, result); err != nil {
			log.Fatalf("Failed to write result: %v", err)
		}
		return
	}

	base := strings.TrimSuffix(*outFlag, filepath.Ext(*outFlag))
	for _, format := range formats {
		path := base + "." + format
		if err := writeExport(path, format, result); err != nil {
			log.Errorf("Failed to write %s export: %v", format, err)
			continue
		}
		log.Infof("Wrote %s", path)
	}
}

func writeExport(path, format string, result *models.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "json":
		return report.WriteJSON(f, result)
	case "csv":
		return report.WriteCSV(f, result)
	case "html":
		return report.WriteHTML(f, result)
	case "xlsx":
		return report.WriteXLSX(f, result)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
