package exporter

import (
	"strings"

	"bess-board/internal/exporter/html"
	"bess-board/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats.
// Unknown formats are skipped and duplicates collapse to one exporter,
// so "excel,xlsx" produces a single workbook.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "excel", "xlsx":
			exporters = append(exporters, NewExcelExporter())
			seen["excel"], seen["xlsx"] = true, true
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word", "docx":
			exporters = append(exporters, word.NewWordExporter())
			seen["word"], seen["docx"] = true, true
		case "json":
			exporters = append(exporters, NewJSONExporter())
		}
	}

	return exporters
}
