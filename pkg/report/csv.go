package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"seo-audit/pkg/models"
)

// WriteCSV renders the issue list as CSV, one row per issue
func WriteCSV(w io.Writer, result *models.AnalysisResult) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "title", "severity", "category", "affected_urls", "manual_check", "why_it_matters"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, issue := range result.Issues {
		row := []string{
			issue.ID,
			issue.Title,
			string(issue.Severity),
			string(issue.Category),
			strconv.Itoa(len(issue.AffectedURLs)),
			strconv.FormatBool(issue.ManualCheck),
			issue.WhyItMatters,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", issue.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
