package html

import (
	"html/template"
	"os"
	"strings"

	"bess-board/internal/config"
	"bess-board/internal/model"
)

// HTMLExporter renders the standalone report page: the same summary
// table and detail panels as the viewer, but with every panel already
// in the document and toggled client-side, so the one file works
// without a server.
type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// reportData feeds the report template
type reportData struct {
	SourceFile    string
	GeneratedAt   string
	TotalProjects int
	GreenFlags    int
	RedFlags      int
	WithImage     int
	WithSources   int
	Rows          []reportRow
}

// reportRow is one project with its detail panel content
type reportRow struct {
	Name           string
	Company        string
	MW             string
	Location       string
	ConnectionDate string
	FlagClass      string
	Comments       string
	Sources        []model.SourceEntry
	ImageFile      string
}

func (e *HTMLExporter) Export(summary *model.Summary, projects []model.Project, cfg *config.Config) error {
	data := reportData{
		SourceFile:    summary.SourceFile,
		GeneratedAt:   summary.GeneratedAt,
		TotalProjects: summary.TotalProjects,
		GreenFlags:    summary.GreenFlags,
		RedFlags:      summary.RedFlags,
		WithImage:     summary.WithImage,
		WithSources:   summary.WithSources,
		Rows:          make([]reportRow, 0, len(projects)),
	}

	for _, p := range projects {
		data.Rows = append(data.Rows, reportRow{
			Name:           p.Name,
			Company:        p.Company,
			MW:             p.MW,
			Location:       p.Location,
			ConnectionDate: p.ConnectionDate,
			FlagClass:      flagClass(p.Flag),
			Comments:       p.Comments,
			Sources:        p.Sources,
			ImageFile:      p.ImageFile,
		})
	}

	outputFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".html"
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"dash": func(s string) string {
			if s == "" {
				return "—"
			}
			return s
		},
	}).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}

// flagClass maps a resolved flag to the report's CSS class
func flagClass(f model.Flag) string {
	switch f {
	case model.FlagGreen:
		return "flag-green"
	case model.FlagRed:
		return "flag-red"
	default:
		return ""
	}
}
