// Package report renders a finished analysis result into the supported
// export formats: JSON, CSV, HTML, and XLSX.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"seo-audit/pkg/models"
)

// WriteJSON renders the full result as indented JSON
func WriteJSON(w io.Writer, result *models.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result JSON: %w", err)
	}
	return nil
}
