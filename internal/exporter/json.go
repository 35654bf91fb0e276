package exporter

import (
	"encoding/json"
	"os"
	"strings"

	"bess-board/internal/config"
	"bess-board/internal/model"
)

// The JSON document mirrors the annotated model closely enough for
// downstream tooling to consume without re-parsing the workbook.
type jsonReport struct {
	SourceFile    string        `json:"source_file"`
	GeneratedAt   string        `json:"generated_at"`
	TotalProjects int           `json:"total_projects"`
	GreenFlags    int           `json:"green_flags"`
	RedFlags      int           `json:"red_flags"`
	Projects      []jsonProject `json:"projects"`
}

type jsonProject struct {
	Name           string       `json:"name"`
	Company        string       `json:"company,omitempty"`
	MW             string       `json:"mw,omitempty"`
	Location       string       `json:"location,omitempty"`
	ConnectionDate string       `json:"connection_date,omitempty"`
	Comments       string       `json:"comments,omitempty"`
	Flag           string       `json:"flag,omitempty"`
	Sources        []jsonSource `json:"sources,omitempty"`
	ImageFile      string       `json:"image_file,omitempty"`
}

type jsonSource struct {
	Text string   `json:"text"`
	URLs []string `json:"urls,omitempty"`
}

// JSONExporter dumps the annotated model for downstream tooling
type JSONExporter struct {
	// Stateless
}

// NewJSONExporter creates a new JSONExporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export writes the report next to the other formats, swapping the
// extension
func (e *JSONExporter) Export(summary *model.Summary, projects []model.Project, cfg *config.Config) error {
	report := jsonReport{
		SourceFile:    summary.SourceFile,
		GeneratedAt:   summary.GeneratedAt,
		TotalProjects: summary.TotalProjects,
		GreenFlags:    summary.GreenFlags,
		RedFlags:      summary.RedFlags,
		Projects:      make([]jsonProject, 0, len(projects)),
	}

	for _, p := range projects {
		jp := jsonProject{
			Name:           p.Name,
			Company:        p.Company,
			MW:             p.MW,
			Location:       p.Location,
			ConnectionDate: p.ConnectionDate,
			Comments:       p.Comments,
			Flag:           string(p.Flag),
			ImageFile:      p.ImageFile,
		}
		for _, src := range p.Sources {
			jp.Sources = append(jp.Sources, jsonSource{
				Text: src.Text,
				URLs: src.URLs(),
			})
		}
		report.Projects = append(report.Projects, jp)
	}

	outputFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".json"
	file, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
