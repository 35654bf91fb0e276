package server

import (
	"os"
	"path/filepath"

	"bess-board/internal/model"
)

// placeholder stands in for absent optional text (comments, sources,
// empty detail fields)
const placeholder = "—"

// pageView is everything the page template needs for one render
type pageView struct {
	Title      string
	SourceFile string // workbook basename, shown in the caption
	Rows       []rowView
	OpenCount  int
}

// rowView is one summary-table row plus, when expanded, its detail
// panel
type rowView struct {
	Index          int
	Name           string
	Company        string
	MW             string
	Location       string
	ConnectionDate string
	FlagClass      string // "flag-green", "flag-red" or ""
	Expanded       bool
	Detail         detailView
}

// detailView is the per-row expanded panel: the field bullet list, the
// comments paragraph, parsed sources and the image (or why there is
// none)
type detailView struct {
	Heading  string
	Fields   []fieldView
	Comments string
	Sources  []model.SourceEntry

	ImageURL     string // set when the file exists under the image dir
	ImageWarning string // set when a file is named but missing
	ImageCaption string // set when the row names no image at all
}

// fieldView is one labelled line of the detail bullet list
type fieldView struct {
	Label string
	Value string
}

// flagClass maps a resolved flag to the CSS class that colors the
// project name. The palette matches the curated review convention:
// green for on-track, red for concern.
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

// orDash substitutes the placeholder for empty display values
func orDash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// buildPage assembles the render model from the annotated projects and
// the session's expanded set. Detail panels appear in row order; the
// projects slice is already in source-sheet order.
func buildPage(title, sourceFile, imageDir string, projects []model.Project, session *Session) pageView {
	page := pageView{
		Title:      title,
		SourceFile: filepath.Base(sourceFile),
		Rows:       make([]rowView, 0, len(projects)),
		OpenCount:  session.Count(),
	}

	for _, p := range projects {
		row := rowView{
			Index:          p.Index,
			Name:           p.Name,
			Company:        p.Company,
			MW:             p.MW,
			Location:       p.Location,
			ConnectionDate: p.ConnectionDate,
			FlagClass:      flagClass(p.Flag),
			Expanded:       session.IsOpen(p.Index),
		}
		if row.Expanded {
			row.Detail = buildDetail(p, imageDir)
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}

// buildDetail renders one project's detail panel model. The image is
// probed here: a named file that is missing degrades to a warning line
// instead of a broken <img>.
func buildDetail(p model.Project, imageDir string) detailView {
	d := detailView{
		Heading:  orDash(p.Name),
		Comments: orDash(p.Comments),
		Sources:  p.Sources,
	}
	for _, field := range model.SummaryFields() {
		d.Fields = append(d.Fields, fieldView{field, orDash(p.FieldValue(field))})
	}

	switch {
	case p.ImageFile == "":
		d.ImageCaption = "No PNG Name for this row."
	case imageExists(imageDir, p.ImageFile):
		d.ImageURL = "/images/" + p.ImageFile
	default:
		d.ImageWarning = "PNG not found next to the app: " + p.ImageFile
	}
	return d
}

// imageExists probes for the image file under the configured image
// directory. Only the base name is honored so a crafted PNG Name cell
// cannot reach outside the directory.
func imageExists(imageDir, name string) bool {
	info, err := os.Stat(filepath.Join(imageDir, filepath.Base(name)))
	return err == nil && !info.IsDir()
}
