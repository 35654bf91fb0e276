package model

import (
	"math"
	"strconv"
	"time"
)

// CellKind identifies which variant a CellValue holds
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// String returns the string representation of the cell kind
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// CellValue is a single spreadsheet cell. Exactly one payload field is
// meaningful, selected by Kind; the zero value is an empty cell.
type CellValue struct {
	Kind CellKind
	Text string    // CellText payload
	Num  float64   // CellNumber payload
	Date time.Time // CellDate payload
}

// EmptyCell returns the empty-cell variant
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// TextCell wraps a text payload
func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

// NumberCell wraps a numeric payload
func NumberCell(f float64) CellValue {
	return CellValue{Kind: CellNumber, Num: f}
}

// DateCell wraps a date payload
func DateCell(t time.Time) CellValue {
	return CellValue{Kind: CellDate, Date: t}
}

// String renders the cell for display. It is total: every cell comes
// back as some string, so downstream rendering never needs a type
// dispatch. Empty cells and NaN numbers render as "", numbers use the
// shortest round-trip decimal form, dates use YYYY-MM-DD.
func (c CellValue) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		if math.IsNaN(c.Num) {
			return ""
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("2006-01-02")
	default:
		return ""
	}
}

// IsEmpty reports whether the cell renders as an empty string
func (c CellValue) IsEmpty() bool {
	return c.String() == ""
}
