package model

// Summary carries the headline figures for the report overview: where
// the data came from, when the report was generated, and tallies over
// the annotated rows.
type Summary struct {
	SourceFile    string // workbook basename
	GeneratedAt   string // report date, YYYY-MM-DD
	TotalProjects int
	GreenFlags    int
	RedFlags      int
	WithImage     int // rows naming an image file
	WithSources   int // rows with at least one source fragment
}
