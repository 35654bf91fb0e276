package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bess-board/internal/annotate"
	"bess-board/internal/config"
	"bess-board/internal/dataset"
	"bess-board/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// newTestServer builds a viewer over a small fixture workbook. The
// returned server uses a fresh temp image dir; tests drop files into
// it as needed.
func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "projects.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Project Name", "Company", "MW", "Location", "Connection date", "Comments", "Sources", "PNG Name"},
		{"Sambar Power", "Acme Energy", 100, "Somerset", "Q4 2026", "grid works pending", "see https://example.com/filing; registry entry", "sambar"},
		{"Whitegate", "Beta Storage", 50, "", "", "", "", "whitegate"},
		{"Unknown Project", "Gamma Grid", 25, "Kent", "", "", "", ""},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("Failed to set cell %s: %v", cell, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}

	cfg := &config.Config{
		Source: config.SourceConfig{File: path, ImageDir: dir},
		Server: config.ServerConfig{Addr: ":0", Title: "BESS In construction"},
	}
	store := dataset.NewStore(model.CanonicalFields())
	return New(cfg, store, annotate.New(annotate.DefaultFlags())), dir
}

// get renders a path and parses the response body
func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	if err != nil {
		t.Fatalf("Failed to parse response HTML: %v", err)
	}
	return w, doc
}

// postForm submits one row command
func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestIndexPage(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	w, doc := get(t, h, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d, expected 200", w.Code)
	}

	// Five summary columns, in canonical order
	headers := doc.Find("thead th").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	expected := []string{"Project Name", "Company", "MW", "Location", "Connection date"}
	if len(headers) != len(expected) {
		t.Fatalf("Expected %d summary columns, got %v", len(expected), headers)
	}
	for i, want := range expected {
		if headers[i] != want {
			t.Errorf("Header %d = %q, expected %q", i, headers[i], want)
		}
	}

	if n := doc.Find("tr.project-row").Length(); n != 3 {
		t.Errorf("Expected 3 project rows, got %d", n)
	}
	// Everything starts collapsed
	if n := doc.Find("tr.detail-row").Length(); n != 0 {
		t.Errorf("Fresh session rendered %d detail panels, expected 0", n)
	}

	// Flag coloring on the name cell only
	if doc.Find("td.name.flag-green").First().Text() != "Sambar Power" {
		t.Error("Sambar Power is not rendered green")
	}
	if doc.Find("td.name.flag-red").First().Text() != "Whitegate" {
		t.Error("Whitegate is not rendered red")
	}
	unflagged := doc.Find("tr.project-row").Eq(2).Find("td.name")
	if unflagged.HasClass("flag-green") || unflagged.HasClass("flag-red") {
		t.Error("Unknown Project must render with no flag color")
	}

	// The page names its source workbook
	if !strings.Contains(doc.Find("p.caption").Text(), "projects.xlsx") {
		t.Error("Caption does not name the source workbook")
	}
}

func TestRowToggleCommand(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	w := postForm(t, h, "/rows/toggle", url.Values{"row": {"0"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("POST /rows/toggle = %d, expected 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Redirect location = %q, expected /", loc)
	}
	if !srv.Session().IsOpen(0) {
		t.Error("Toggle did not open row 0 in the session")
	}

	_, doc := get(t, h, "/")
	details := doc.Find("tr.detail-row")
	if details.Length() != 1 {
		t.Fatalf("Expected 1 detail panel after toggle, got %d", details.Length())
	}
	if h3 := details.Find("h3").Text(); h3 != "Sambar Power" {
		t.Errorf("Detail heading = %q", h3)
	}

	// The sources fragment renders its URL as a link and keeps the text
	link := details.Find("ul.sources a").First()
	if href, _ := link.Attr("href"); href != "https://example.com/filing" {
		t.Errorf("Source link href = %q", href)
	}
	if !strings.Contains(details.Find("ul.sources").Text(), "registry entry") {
		t.Error("Plain-text source fragment missing from the panel")
	}

	// Second toggle collapses again
	postForm(t, h, "/rows/toggle", url.Values{"row": {"0"}})
	if srv.Session().IsOpen(0) {
		t.Error("Second toggle did not close row 0")
	}
	_, doc = get(t, h, "/")
	if n := doc.Find("tr.detail-row").Length(); n != 0 {
		t.Errorf("Expected 0 detail panels after second toggle, got %d", n)
	}
}

func TestExpandAndCollapseAll(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	if w := postForm(t, h, "/rows/expand-all", nil); w.Code != http.StatusSeeOther {
		t.Fatalf("POST /rows/expand-all = %d, expected 303", w.Code)
	}
	if srv.Session().Count() != 3 {
		t.Errorf("Session holds %d open rows after expand-all, expected 3", srv.Session().Count())
	}
	_, doc := get(t, h, "/")
	if n := doc.Find("tr.detail-row").Length(); n != 3 {
		t.Errorf("Expected 3 detail panels after expand-all, got %d", n)
	}

	if w := postForm(t, h, "/rows/collapse-all", nil); w.Code != http.StatusSeeOther {
		t.Fatalf("POST /rows/collapse-all = %d, expected 303", w.Code)
	}
	_, doc = get(t, h, "/")
	if n := doc.Find("tr.detail-row").Length(); n != 0 {
		t.Errorf("Expected 0 detail panels after collapse-all, got %d", n)
	}
}

func TestToggleRejectsBadRequests(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	if w := postForm(t, h, "/rows/toggle", url.Values{"row": {"abc"}}); w.Code != http.StatusBadRequest {
		t.Errorf("Non-numeric row = %d, expected 400", w.Code)
	}
	if w := postForm(t, h, "/rows/toggle", url.Values{"row": {"-1"}}); w.Code != http.StatusBadRequest {
		t.Errorf("Negative row = %d, expected 400", w.Code)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rows/toggle", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /rows/toggle = %d, expected 405", w.Code)
	}
}

func TestImagePanelAndRoute(t *testing.T) {
	srv, imageDir := newTestServer(t)
	h := srv.Handler()

	// Only row 0's image exists on disk
	if err := os.WriteFile(filepath.Join(imageDir, "sambar.png"), []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("Failed to write image fixture: %v", err)
	}

	postForm(t, h, "/rows/expand-all", nil)
	_, doc := get(t, h, "/")

	// Row 0: image embedded through the image route
	first := doc.Find("tr.detail-row").Eq(0)
	if src, _ := first.Find("img").Attr("src"); src != "/images/sambar.png" {
		t.Errorf("Row 0 img src = %q", src)
	}

	// Row 1 names whitegate.png which is missing: warning, no <img>
	second := doc.Find("tr.detail-row").Eq(1)
	if second.Find("img").Length() != 0 {
		t.Error("Row 1 embedded an image that does not exist")
	}
	if warn := second.Find("p.warning").Text(); warn != "PNG not found next to the app: whitegate.png" {
		t.Errorf("Row 1 warning = %q", warn)
	}

	// Row 2 has no PNG Name at all: muted caption, no warning
	third := doc.Find("tr.detail-row").Eq(2)
	if third.Find("p.warning").Length() != 0 {
		t.Error("Row 2 shows a missing-file warning without naming a file")
	}
	if caption := third.Find("p.muted").Text(); caption != "No PNG Name for this row." {
		t.Errorf("Row 2 caption = %q", caption)
	}

	// The image route serves existing files and 404s missing ones
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/sambar.png", nil))
	if w.Code != http.StatusOK || w.Body.String() != "png-bytes" {
		t.Errorf("GET /images/sambar.png = %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/whitegate.png", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET missing image = %d, expected 404", w.Code)
	}
}

func TestMissingWorkbookFailsTheRender(t *testing.T) {
	cfg := &config.Config{
		Source: config.SourceConfig{File: filepath.Join(t.TempDir(), "gone.xlsx"), ImageDir: "."},
		Server: config.ServerConfig{Addr: ":0", Title: "BESS In construction"},
	}
	srv := New(cfg, dataset.NewStore(model.CanonicalFields()), annotate.New(annotate.DefaultFlags()))
	h := srv.Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("GET / with missing workbook = %d, expected 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not found") {
		t.Errorf("Error body does not name the failure: %q", w.Body.String())
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /nope = %d, expected 404", w.Code)
	}
}
