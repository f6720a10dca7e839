package models

// Severity is the closed 4-level issue severity taxonomy
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns the ordinal rank of a severity, critical highest (3) down to low (0)
// Unknown severities rank below low
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 0
	}
	return -1
}

// Valid reports whether s is one of the four defined severities
func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// Category is the closed issue category enum
type Category string

const (
	CategoryIndexing        Category = "indexing"
	CategoryOnPage          Category = "on-page"
	CategoryTechnical       Category = "technical"
	CategoryPerformance     Category = "performance"
	CategoryStructuredData  Category = "structured-data"
	CategoryImages          Category = "images"
	CategoryInternalLinking Category = "internal-linking"
	CategoryContent         Category = "content"
	CategorySecurity        Category = "security"
	CategoryMarketing       Category = "marketing"
	CategoryKeywords        Category = "keywords"
)

// Categories lists every defined category in display order
var Categories = []Category{
	CategoryIndexing,
	CategoryOnPage,
	CategoryTechnical,
	CategoryPerformance,
	CategoryStructuredData,
	CategoryImages,
	CategoryInternalLinking,
	CategoryContent,
	CategorySecurity,
	CategoryMarketing,
	CategoryKeywords,
}

// Valid reports whether c belongs to the fixed category enum
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
