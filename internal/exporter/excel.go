package exporter

import (
	"fmt"

	"bess-board/internal/config"
	"bess-board/internal/model"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel report: an Overview sheet with headline
// tallies and a Projects sheet with every annotated row
func (e *ExcelExporter) Export(summary *model.Summary, projects []model.Project, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath()
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := e.writeOverview(f, styler, summary); err != nil {
		return err
	}

	if err := e.writeProjects(f, styler, projects); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(outputFile); err != nil {
		return err
	}

	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, summary *model.Summary) error {
	sheet := "Overview"
	f.NewSheet(sheet)

	e.writeRow(f, sheet, 1, []string{"Metric", "Value"}, s.HeaderStyle)

	metrics := []struct {
		Key string
		Val any
	}{
		{"Source file", summary.SourceFile},
		{"Generated", summary.GeneratedAt},
		{"Total projects", summary.TotalProjects},
		{"Green flags", summary.GreenFlags},
		{"Red flags", summary.RedFlags},
		{"Rows with image", summary.WithImage},
		{"Rows with sources", summary.WithSources},
	}

	row := 2
	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "B", 36)

	return nil
}

// --- Projects Sheet Logic ---

func (e *ExcelExporter) writeProjects(f *excelize.File, s *Styler, projects []model.Project) error {
	sheet := "Projects"
	f.NewSheet(sheet)

	headers := append(model.CanonicalFields(), "Flag", "Image File")
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	for i, p := range projects {
		row := i + 2
		e.writeProjectRow(f, sheet, row, p, s)
	}

	// Column widths: names and free text get room, numbers stay narrow
	f.SetColWidth(sheet, "A", "A", 36) // Project Name
	f.SetColWidth(sheet, "B", "B", 24) // Company
	f.SetColWidth(sheet, "C", "C", 8)  // MW
	f.SetColWidth(sheet, "D", "D", 24) // Location
	f.SetColWidth(sheet, "E", "E", 16) // Connection date
	f.SetColWidth(sheet, "F", "G", 50) // Comments, Sources
	f.SetColWidth(sheet, "H", "J", 14) // PNG Name, Flag, Image File

	return nil
}

func (e *ExcelExporter) writeProjectRow(f *excelize.File, sheet string, row int, p model.Project, s *Styler) {
	nameStyle := s.NameStyle
	switch p.Flag {
	case model.FlagGreen:
		nameStyle = s.NameGreenStyle
	case model.FlagRed:
		nameStyle = s.NameRedStyle
	}

	cells := []struct {
		col   string
		value any
		style int
	}{
		{"A", p.Name, nameStyle},
		{"B", p.Company, s.NameStyle},
		{"C", p.MW, s.DefaultStyle},
		{"D", p.Location, s.DefaultStyle},
		{"E", p.ConnectionDate, s.DefaultStyle},
		{"F", p.Comments, s.WrapStyle},
		{"G", p.RawSources, s.WrapStyle},
		{"H", p.PNGName, s.DefaultStyle},
		{"I", string(p.Flag), s.DefaultStyle},
		{"J", p.ImageFile, s.DefaultStyle},
	}
	for _, c := range cells {
		ref := fmt.Sprintf("%s%d", c.col, row)
		f.SetCellValue(sheet, ref, c.value)
		f.SetCellStyle(sheet, ref, ref, c.style)
	}
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
