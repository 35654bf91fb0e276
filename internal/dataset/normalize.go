package dataset

import (
	"strings"

	"bess-board/internal/model"

	"golang.org/x/text/unicode/norm"
)

// foldHeader produces the match key for a column name: NFKC-folded so
// full-width and compatibility forms compare equal, then trimmed and
// lower-cased. "MW " and "mw" fold to the same key.
func foldHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
}

// Normalize maps a raw sheet onto the expected fields. Matching is
// case-insensitive and ignores incidental whitespace on the raw
// header. The output has exactly the expected columns in the expected
// order: missing fields become columns of empty cells, raw columns not
// asked for are dropped with no warning. Row order is preserved and
// the input is never mutated, so normalizing twice gives equal tables.
func Normalize(raw *model.RawTable, expected []string) *model.Table {
	colIndex := make(map[string]int, len(raw.Columns))
	for i, name := range raw.Columns {
		key := foldHeader(name)
		if _, ok := colIndex[key]; !ok {
			colIndex[key] = i // first match wins on duplicate headers
		}
	}

	fields := make([]string, len(expected))
	copy(fields, expected)

	table := &model.Table{
		Fields: fields,
		Rows:   make([][]model.CellValue, len(raw.Rows)),
	}
	for r := range raw.Rows {
		cells := make([]model.CellValue, len(fields))
		for c, field := range fields {
			if src, ok := colIndex[foldHeader(field)]; ok {
				cells[c] = raw.Cell(r, src)
			}
		}
		table.Rows[r] = cells
	}
	return table
}
