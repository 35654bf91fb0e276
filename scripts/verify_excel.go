package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

func main() {
	// Check which file to verify
	filename := "output/bess-report.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	fmt.Printf("=== EXCEL REPORT CHECK: %s ===\n", filename)

	// Overview sheet: print the headline tallies
	overview, err := f.GetRows("Overview")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\n[Overview]")
	for i, row := range overview {
		if i == 0 || len(row) < 2 {
			continue
		}
		fmt.Printf("  %-18s %s\n", row[0]+":", row[1])
	}

	// Projects sheet: header plus one row per project
	rows, err := f.GetRows("Projects")
	if err != nil {
		log.Fatal(err)
	}
	if len(rows) == 0 {
		log.Fatal("Projects sheet is empty")
	}

	headers := rows[0]
	fmt.Printf("\n[Projects] %d data rows, %d columns\n", len(rows)-1, len(headers))

	expected := []string{
		"Project Name", "Company", "MW", "Location", "Connection date",
		"Comments", "Sources", "PNG Name", "Flag", "Image File",
	}
	ok := true
	for i, want := range expected {
		got := ""
		if i < len(headers) {
			got = headers[i]
		}
		if got != want {
			fmt.Printf("❌ Header %d: got '%s', want '%s'\n", i, got, want)
			ok = false
		}
	}

	// Data hygiene: every row needs a project name, and the flag
	// column only carries green, red or nothing
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			fmt.Printf("❌ Row %d has no project name\n", i+1)
			ok = false
		}
		if len(row) > 8 {
			switch flag := strings.TrimSpace(row[8]); flag {
			case "", "green", "red":
			default:
				fmt.Printf("❌ Row %d has unknown flag '%s'\n", i+1, flag)
				ok = false
			}
		}
	}

	fmt.Println()
	if ok {
		fmt.Println("✅ Report structure: OK")
	} else {
		fmt.Println("❌ Report structure: FAILED")
		os.Exit(1)
	}
}
