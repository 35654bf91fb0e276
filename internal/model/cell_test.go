package model

import (
	"math"
	"testing"
	"time"
)

func TestCellValueString(t *testing.T) {
	tests := []struct {
		name     string
		cell     CellValue
		expected string
	}{
		{"zero value", CellValue{}, ""},
		{"explicit empty", EmptyCell(), ""},
		{"text", TextCell("Sambar Power"), "Sambar Power"},
		{"text kept verbatim", TextCell("  padded  "), "  padded  "},
		{"integer-valued number", NumberCell(100), "100"},
		{"fractional number", NumberCell(49.9), "49.9"},
		{"zero number", NumberCell(0), "0"},
		{"nan renders empty", NumberCell(math.NaN()), ""},
		{"date", DateCell(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)), "2026-03-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.cell.String()
			if result != tt.expected {
				t.Errorf("String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestCellValueIsEmpty(t *testing.T) {
	tests := []struct {
		cell     CellValue
		expected bool
	}{
		{CellValue{}, true},
		{NumberCell(math.NaN()), true},
		{TextCell(""), true},
		{TextCell("x"), false},
		{NumberCell(0), false},
	}

	for _, tt := range tests {
		if result := tt.cell.IsEmpty(); result != tt.expected {
			t.Errorf("IsEmpty(%v) = %v, expected %v", tt.cell, result, tt.expected)
		}
	}
}
