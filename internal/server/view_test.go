package server

import (
	"os"
	"path/filepath"
	"testing"

	"bess-board/internal/annotate"
	"bess-board/internal/model"
)

func TestFlagClass(t *testing.T) {
	tests := []struct {
		flag     model.Flag
		expected string
	}{
		{model.FlagGreen, "flag-green"},
		{model.FlagRed, "flag-red"},
		{model.FlagNone, ""},
	}
	for _, tt := range tests {
		if got := flagClass(tt.flag); got != tt.expected {
			t.Errorf("flagClass(%v) = %q, expected %q", tt.flag, got, tt.expected)
		}
	}
}

func TestBuildDetailPlaceholders(t *testing.T) {
	// A row with nothing but a name: every optional field falls back to
	// the em-dash, sources stay empty for the template to mark.
	p := model.Project{Name: "Legacy"}

	d := buildDetail(p, t.TempDir())

	if d.Heading != "Legacy" {
		t.Errorf("Heading = %q", d.Heading)
	}
	for _, f := range d.Fields[1:] { // all but Project Name are empty
		if f.Value != placeholder {
			t.Errorf("Field %q = %q, expected placeholder", f.Label, f.Value)
		}
	}
	if d.Comments != placeholder {
		t.Errorf("Comments = %q, expected placeholder", d.Comments)
	}
	if len(d.Sources) != 0 {
		t.Errorf("Sources = %v, expected none", d.Sources)
	}
	if d.ImageCaption == "" {
		t.Error("Expected the no-image caption for a row without a PNG Name")
	}
	if d.ImageURL != "" || d.ImageWarning != "" {
		t.Errorf("No image was named; got URL=%q warning=%q", d.ImageURL, d.ImageWarning)
	}
}

func TestBuildDetailImageProbe(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sambar.png"), []byte("png"), 0644); err != nil {
		t.Fatalf("Failed to write image fixture: %v", err)
	}

	// Present file links through the image route
	present := buildDetail(model.Project{Name: "Sambar Power", ImageFile: "sambar.png"}, dir)
	if present.ImageURL != "/images/sambar.png" {
		t.Errorf("ImageURL = %q, expected %q", present.ImageURL, "/images/sambar.png")
	}
	if present.ImageWarning != "" {
		t.Errorf("Unexpected warning for an existing image: %q", present.ImageWarning)
	}

	// Named but missing file degrades to the warning line
	missing := buildDetail(model.Project{Name: "Whitegate", ImageFile: "whitegate.png"}, dir)
	if missing.ImageURL != "" {
		t.Errorf("Missing image produced URL %q", missing.ImageURL)
	}
	if missing.ImageWarning != "PNG not found next to the app: whitegate.png" {
		t.Errorf("ImageWarning = %q", missing.ImageWarning)
	}
}

func TestBuildPageExpandedRows(t *testing.T) {
	ann := annotate.New(annotate.DefaultFlags())
	table := &model.Table{
		Fields: model.CanonicalFields(),
		Rows: [][]model.CellValue{
			{model.TextCell("Sambar Power"), model.TextCell("Acme"), model.NumberCell(100), model.TextCell("Somerset"), model.TextCell("2026"), model.EmptyCell(), model.EmptyCell(), model.EmptyCell()},
			{model.TextCell("Whitegate"), model.TextCell("Beta"), model.EmptyCell(), model.EmptyCell(), model.EmptyCell(), model.EmptyCell(), model.EmptyCell(), model.EmptyCell()},
		},
	}
	projects := ann.Annotate(table)

	session := NewSession()
	session.Toggle(1)

	page := buildPage("BESS In construction", "/data/BESS In construction.xlsx", t.TempDir(), projects, session)

	if page.SourceFile != "BESS In construction.xlsx" {
		t.Errorf("SourceFile = %q, expected the basename", page.SourceFile)
	}
	if len(page.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(page.Rows))
	}

	if page.Rows[0].Expanded {
		t.Error("Row 0 rendered expanded without being toggled")
	}
	if page.Rows[0].FlagClass != "flag-green" {
		t.Errorf("Sambar Power FlagClass = %q, expected flag-green", page.Rows[0].FlagClass)
	}

	if !page.Rows[1].Expanded {
		t.Error("Row 1 should render expanded")
	}
	if page.Rows[1].FlagClass != "flag-red" {
		t.Errorf("Whitegate FlagClass = %q, expected flag-red", page.Rows[1].FlagClass)
	}
	if page.Rows[1].Detail.Heading != "Whitegate" {
		t.Errorf("Detail heading = %q", page.Rows[1].Detail.Heading)
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(""); got != placeholder {
		t.Errorf("orDash(\"\") = %q", got)
	}
	if got := orDash("text"); got != "text" {
		t.Errorf("orDash(\"text\") = %q", got)
	}
}
