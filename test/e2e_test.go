package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSystemIntegration(t *testing.T) {
	// 1. Setup Environment
	rootDir, _ := filepath.Abs("..")
	cmdDir := filepath.Join(rootDir, "cmd", "bess-board")
	workDir := t.TempDir()

	binaryName := "bess-board-test"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(workDir, binaryName)

	// 2. Build the Application
	t.Logf("Building application from %s...", cmdDir)
	buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
	buildCmd.Dir = cmdDir
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build application: %v", err)
	}

	// 3. Fixture workbook and a config pointing at it
	sourcePath := filepath.Join(workDir, "projects.xlsx")
	writeFixtureWorkbook(t, sourcePath)

	outputDir := filepath.Join(workDir, "output")
	testConfigContent := `source:
  file: "` + filepath.ToSlash(sourcePath) + `"
  image_dir: "` + filepath.ToSlash(workDir) + `"

output:
  dir: "` + filepath.ToSlash(outputDir) + `"
  file_name: "system_report"
`
	testConfigPath := filepath.Join(workDir, "config_test.yaml")
	if err := os.WriteFile(testConfigPath, []byte(testConfigContent), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	// 4. Run the Binary in export mode
	t.Log("Running application binary...")
	runCmd := exec.Command(binaryPath, "-config", testConfigPath, "-export", "excel,html,word,json")
	runCmd.Dir = workDir
	runCmd.Stdout = os.Stdout
	runCmd.Stderr = os.Stderr

	if err := runCmd.Run(); err != nil {
		t.Fatalf("Application run failed: %v", err)
	}

	// 5. Verify Outputs
	expectedFiles := []string{
		"system_report.xlsx",
		"system_report.html",
		"system_report.docx",
		"system_report.json",
	}

	for _, f := range expectedFiles {
		path := filepath.Join(outputDir, f)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			t.Errorf("Expected output file missing: %s", f)
		} else if info.Size() == 0 {
			t.Errorf("Output file is empty: %s", f)
		} else {
			t.Logf("✅ Verified output: %s (%d bytes)", f, info.Size())
		}
	}

	// 6. Structure check on the Excel report
	verifyReportStructure(t, rootDir, filepath.Join(outputDir, "system_report.xlsx"))
}

func writeFixtureWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Project Name", "Company", "MW", "Location", "Connection date", "Comments", "Sources", "PNG Name"},
		{"Sambar Power", "Acme Energy", 100, "Somerset", "Q4 2026", "ready", "https://example.com/filing", "sambar"},
		{"Whitegate", "Beta Storage", 50, "", "", "", "", ""},
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
}

// verifyReportStructure runs the repo's standalone checker against the
// generated report
func verifyReportStructure(t *testing.T, rootDir, excelPath string) {
	scriptPath := filepath.Join(rootDir, "scripts", "verify_excel.go")
	cmd := exec.Command("go", "run", scriptPath, excelPath)
	cmd.Dir = rootDir
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("Report structure verification failed: %v\nOutput: %s", err, string(output))
	} else {
		t.Logf("✅ Structure check passed:\n%s", string(output))
	}
}
