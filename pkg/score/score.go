// Package score turns an issue list into the 0-100 site score and its
// per-category breakdown.
package score

import (
	"sort"

	"seo-audit/pkg/models"
)

// Severity deductions. The score starts at 100 and every issue subtracts
// its severity weight; the floor is 0
const (
	deductionCritical = 12
	deductionHigh     = 6
	deductionMedium   = 3
	deductionLow      = 1
)

// maxDeductionDisplay normalizes breakdown bars in UIs; it caps nothing
const maxDeductionDisplay = 25

func deductionFor(severity models.Severity) int {
	switch severity {
	case models.SeverityCritical:
		return deductionCritical
	case models.SeverityHigh:
		return deductionHigh
	case models.SeverityMedium:
		return deductionMedium
	default:
		return deductionLow
	}
}

// Calculate computes the site score and category breakdown from the issues
// The breakdown is ordered by deduction, heaviest category first
func Calculate(issues []models.Issue) (int, []models.CategoryScore) {
	total := 100
	deductions := make(map[models.Category]int)
	counts := make(map[models.Category]int)

	for _, issue := range issues {
		d := deductionFor(issue.Severity)
		deductions[issue.Category] += d
		counts[issue.Category]++
		total -= d
	}
	if total < 0 {
		total = 0
	}

	breakdown := make([]models.CategoryScore, 0, len(deductions))
	for category, deduction := range deductions {
		breakdown = append(breakdown, models.CategoryScore{
			Category:     category,
			Deductions:   deduction,
			MaxDeduction: maxDeductionDisplay,
			Issues:       counts[category],
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		if breakdown[i].Deductions != breakdown[j].Deductions {
			return breakdown[i].Deductions > breakdown[j].Deductions
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return total, breakdown
}

// Summarize builds the run-level counters from the final issue list
func Summarize(pagesAnalyzed int, issues []models.Issue) models.Summary {
	summary := models.Summary{
		PagesAnalyzed: pagesAnalyzed,
		TotalIssues:   len(issues),
	}
	for _, issue := range issues {
		switch issue.Severity {
		case models.SeverityCritical:
			summary.CriticalIssues++
		case models.SeverityHigh:
			summary.HighIssues++
		case models.SeverityMedium:
			summary.MediumIssues++
		case models.SeverityLow:
			summary.LowIssues++
		}
	}
	return summary
}
