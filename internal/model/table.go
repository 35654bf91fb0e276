package model

// The eight canonical fields every row is normalized to, named exactly
// as they appear in the tracking workbook's header row.
const (
	FieldProjectName    = "Project Name"
	FieldCompany        = "Company"
	FieldMW             = "MW"
	FieldLocation       = "Location"
	FieldConnectionDate = "Connection date"
	FieldComments       = "Comments"
	FieldSources        = "Sources"
	FieldPNGName        = "PNG Name"
)

// CanonicalFields returns the expected columns in fixed display order
func CanonicalFields() []string {
	return []string{
		FieldProjectName,
		FieldCompany,
		FieldMW,
		FieldLocation,
		FieldConnectionDate,
		FieldComments,
		FieldSources,
		FieldPNGName,
	}
}

// SummaryFields returns the subset of columns shown in the collapsed
// table view
func SummaryFields() []string {
	return []string{
		FieldProjectName,
		FieldCompany,
		FieldMW,
		FieldLocation,
		FieldConnectionDate,
	}
}

// RawTable is a spreadsheet exactly as read from disk: column names
// verbatim from the header row (arbitrary casing and whitespace), rows
// in sheet order
type RawTable struct {
	Columns []string
	Rows    [][]CellValue
}

// Cell returns the value at (row, col). Out-of-range coordinates come
// back as an empty cell, which covers ragged rows from sheet readers
// that drop trailing blanks.
func (t *RawTable) Cell(row, col int) CellValue {
	if row < 0 || row >= len(t.Rows) {
		return CellValue{}
	}
	cells := t.Rows[row]
	if col < 0 || col >= len(cells) {
		return CellValue{}
	}
	return cells[col]
}

// Table is the canonical grid: exactly the requested fields in the
// requested order, one cell per field per row, row order preserved
// from the source
type Table struct {
	Fields []string
	Rows   [][]CellValue
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// FieldIndex returns the position of a field in the table, or -1 when
// the table was not normalized to that field
func (t *Table) FieldIndex(field string) int {
	for i, f := range t.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// Value returns row i's cell for the named field, or an empty cell for
// unknown fields
func (t *Table) Value(i int, field string) CellValue {
	col := t.FieldIndex(field)
	if col == -1 || i < 0 || i >= len(t.Rows) {
		return CellValue{}
	}
	return t.Rows[i][col]
}
