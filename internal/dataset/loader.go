package dataset

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bess-board/internal/model"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are the display formats recognized when classifying a
// cell as a date. Anything else stays text and renders verbatim.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
}

// Load reads the first sheet of the workbook at path into a RawTable.
// The first row is the header row; every later row becomes a data row.
// A missing path fails with ErrSourceNotFound; this existence probe is
// the only validation before parsing.
func Load(path string) (*model.RawTable, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		// Malformed workbook: surface the native parse error as-is.
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &model.RawTable{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &model.RawTable{}, nil
	}

	table := &model.RawTable{Columns: rows[0]}
	for _, row := range rows[1:] {
		cells := make([]model.CellValue, len(table.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = classifyCell(row[i])
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

// classifyCell sorts a formatted cell string into the value variant.
// The sheet reader hands back display text, so numbers and date-shaped
// strings are recognized from their text form.
func classifyCell(s string) model.CellValue {
	if s == "" {
		return model.CellValue{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return model.NumberCell(f)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.DateCell(t)
		}
	}
	return model.TextCell(s)
}
