package word

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"bess-board/internal/config"
	"bess-board/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

// WordExporter renders the project brief document from the embedded
// template. Regenerate the template with cmd/gentemplate when the
// placeholders change.
type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(summary *model.Summary, projects []model.Project, cfg *config.Config) error {
	// The docx library reads from a path, so the embedded template goes
	// through a temp file first.
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "bess-board-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	doc.Replace("{{Date}}", summary.GeneratedAt, -1)
	doc.Replace("{{TotalProjects}}", fmt.Sprintf("%d", summary.TotalProjects), -1)

	// The brief body is plain text; the docx library handles the XML
	// encoding.
	var contentBuilder strings.Builder

	contentBuilder.WriteString("BESS CONSTRUCTION PROJECTS\n\n")
	contentBuilder.WriteString("Summary Overview:\n")
	contentBuilder.WriteString(fmt.Sprintf("  • Source file: %s\n", summary.SourceFile))
	contentBuilder.WriteString(fmt.Sprintf("  • Total projects: %d\n", summary.TotalProjects))
	contentBuilder.WriteString(fmt.Sprintf("  • Green flags: %d\n", summary.GreenFlags))
	contentBuilder.WriteString(fmt.Sprintf("  • Red flags: %d\n\n", summary.RedFlags))
	contentBuilder.WriteString(strings.Repeat("=", 80) + "\n\n")

	for i, p := range projects {
		buildProjectText(&contentBuilder, p)

		if i < len(projects)-1 {
			contentBuilder.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		}
	}

	doc.Replace("{{Content}}", contentBuilder.String(), -1)

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".docx"
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// buildProjectText writes one project's section of the brief
func buildProjectText(sb *strings.Builder, p model.Project) {
	sb.WriteString(fmt.Sprintf("%s\n", orDash(p.Name)))
	sb.WriteString(fmt.Sprintf("Status: %s\n\n", orDash(string(p.Flag))))

	for _, field := range model.SummaryFields()[1:] { // name is already the heading
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", field, orDash(p.FieldValue(field))))
	}
	sb.WriteString("\n")

	sb.WriteString("Comments:\n")
	sb.WriteString(orDash(p.Comments) + "\n\n")

	sb.WriteString("Sources:\n")
	if len(p.Sources) == 0 {
		sb.WriteString("—\n")
		return
	}
	for _, src := range p.Sources {
		sb.WriteString(fmt.Sprintf("  • %s\n", src.Text))
		for _, u := range src.URLs() {
			sb.WriteString(fmt.Sprintf("      %s\n", u))
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
