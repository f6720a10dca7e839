package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"seo-audit/pkg/models"
)

// WriteXLSX renders the result as a workbook with Summary, Issues, and
// (when present) Keywords sheets
func WriteXLSX(w io.Writer, result *models.AnalysisResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, result); err != nil {
		return err
	}
	if err := writeIssuesSheet(f, result); err != nil {
		return err
	}
	if result.Keywords != nil {
		if err := writeKeywordsSheet(f, result.Keywords); err != nil {
			return err
		}
	}

	f.DeleteSheet("Sheet1")
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result *models.AnalysisResult) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating %s sheet: %w", sheet, err)
	}

	rows := [][]any{
		{"URL", result.Config.URL},
		{"Run ID", result.RunID},
		{"Started", result.StartedAt.Format("2006-01-02 15:04:05 MST")},
		{"Completed", result.CompletedAt.Format("2006-01-02 15:04:05 MST")},
		{"Score", result.Score},
		{"Pages analyzed", result.Summary.PagesAnalyzed},
		{"Total issues", result.Summary.TotalIssues},
		{"Critical", result.Summary.CriticalIssues},
		{"High", result.Summary.HighIssues},
		{"Medium", result.Summary.MediumIssues},
		{"Low", result.Summary.LowIssues},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	// Category breakdown to the right of the counters
	breakdownHeader := []any{"Category", "Deductions", "Issues"}
	cell, _ := excelize.CoordinatesToCellName(4, 1)
	if err := f.SetSheetRow(sheet, cell, &breakdownHeader); err != nil {
		return fmt.Errorf("writing breakdown header: %w", err)
	}
	for i, cs := range result.ScoreBreakdown {
		row := []any{string(cs.Category), cs.Deductions, cs.Issues}
		cell, _ := excelize.CoordinatesToCellName(4, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing breakdown row %d: %w", i+1, err)
		}
	}

	return f.SetColWidth(sheet, "A", "A", 18)
}

func writeIssuesSheet(f *excelize.File, result *models.AnalysisResult) error {
	const sheet = "Issues"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating %s sheet: %w", sheet, err)
	}

	header := []any{"ID", "Title", "Severity", "Category", "Affected URLs", "Manual check", "Why it matters"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing issues header: %w", err)
	}
	for i, issue := range result.Issues {
		row := []any{
			issue.ID,
			issue.Title,
			string(issue.Severity),
			string(issue.Category),
			len(issue.AffectedURLs),
			issue.ManualCheck,
			issue.WhyItMatters,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing issue row %s: %w", issue.ID, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 32); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "G", "G", 80)
}

func writeKeywordsSheet(f *excelize.File, analysis *models.KeywordAnalysis) error {
	const sheet = "Keywords"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating %s sheet: %w", sheet, err)
	}

	header := []any{"Keyword", "Frequency", "Density %", "In title", "In H1", "In meta description", "Prominence"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing keywords header: %w", err)
	}
	for i, k := range analysis.SiteKeywords {
		row := []any{k.Keyword, k.Frequency, k.Density, k.InTitle, k.InH1, k.InMetaDescription, k.Prominence}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing keyword row %d: %w", i+1, err)
		}
	}

	// Suggestions below the site keywords with one spacer row
	start := len(analysis.SiteKeywords) + 3
	suggestionHeader := []any{"Suggested keyword", "Difficulty", "Reason"}
	cell, _ := excelize.CoordinatesToCellName(1, start)
	if err := f.SetSheetRow(sheet, cell, &suggestionHeader); err != nil {
		return fmt.Errorf("writing suggestions header: %w", err)
	}
	for i, s := range analysis.SuggestedKeywords {
		row := []any{s.Keyword, s.EstimatedDifficulty, s.Reason}
		cell, _ := excelize.CoordinatesToCellName(1, start+i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing suggestion row %d: %w", i+1, err)
		}
	}

	return f.SetColWidth(sheet, "A", "A", 30)
}
