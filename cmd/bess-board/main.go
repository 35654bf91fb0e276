package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"bess-board/internal/annotate"
	"bess-board/internal/config"
	"bess-board/internal/dataset"
	"bess-board/internal/exporter"
	"bess-board/internal/logger"
	"bess-board/internal/model"
	"bess-board/internal/server"
	"bess-board/internal/ui"
)

const (
	appName    = "BESS Board"
	appVersion = "1.0.0"
	appDesc    = "Viewer and report generator for the BESS construction tracking workbook"
)

var (
	configPath    string
	verbose       bool
	showVersion   bool
	listenAddr    string
	outputDir     string
	exportFormats string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&listenAddr, "addr", "", "Override listen address from config")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&exportFormats, "export", "", "Generate reports instead of serving: comma-separated formats (excel,html,word,json)")
}

func main() {
	// Keep the console readable when a double-clicked run blows up
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			waitForEnter()
		}
	}()

	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	// 1. Initialize
	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if listenAddr != "" {
		cfg.Server.Addr = listenAddr
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
		if err := cfg.EnsureOutputDir(); err != nil {
			fmt.Printf("❌ %v\n", err)
			return 1
		}
	}
	if exportFormats != "" {
		cfg.Export.Formats = splitFormats(exportFormats)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "bess_board.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	store := dataset.NewStore(model.CanonicalFields())
	annotator := annotate.New(annotate.DefaultFlags())

	if exportFormats != "" {
		if err := runExport(cfg, store, annotator); err != nil {
			logger.Error("Export failed: %v", err)
			return 1
		}
		logger.Info("✅ Reports written to [%s].", cfg.Output.Dir)
		return 0
	}

	if err := runServe(cfg, store, annotator); err != nil {
		logger.Error("Viewer failed: %v", err)
		return 1
	}
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

// runServe warms the table cache, then serves the viewer until the
// process is interrupted
func runServe(cfg *config.Config, store *dataset.Store, annotator *annotate.Annotator) error {
	// Load up front so a missing or broken workbook fails the start
	// instead of the first request
	table, err := store.Get(cfg.Source.File)
	if err != nil {
		return err
	}
	logger.Info("Loaded %d rows from %s", table.Len(), filepath.Base(cfg.Source.File))

	srv := server.New(cfg, store, annotator)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("Received %s, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func runExport(cfg *config.Config, store *dataset.Store, annotator *annotate.Annotator) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseLoading,
		ui.PhaseAnnotating,
		ui.PhaseGenerating,
	})

	// --- Phase 1: Load & normalize ---
	logger.Info("Phase 1: Loading workbook...")
	loadBar := pipeline.NextPhase(1)
	table, err := store.Get(cfg.Source.File)
	if err != nil {
		return err
	}
	loadBar.Increment()
	loadBar.Finish()
	logger.Info("Loaded %d rows, %d columns", table.Len(), len(table.Fields))

	// --- Phase 2: Annotate ---
	logger.Info("Phase 2: Annotating rows...")
	annotateBar := pipeline.NextPhase(1)
	projects := annotator.Annotate(table)
	summary := annotate.Summarize(projects, cfg.Source.File)
	annotateBar.Increment()
	annotateBar.Finish()
	logger.Info("Annotated %d projects: %d green, %d red", summary.TotalProjects, summary.GreenFlags, summary.RedFlags)

	// --- Phase 3: Generate reports ---
	logger.Info("Phase 3: Generating reports...")
	exporters := exporter.GetExporters(cfg.Export.Formats)
	if len(exporters) == 0 {
		return fmt.Errorf("no valid export formats in %v", cfg.Export.Formats)
	}
	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(summary, projects, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()

	pipeline.Finish()
	pipeline.PrintSummary(fmt.Sprintf("Generated %d report(s) in %s", len(exporters)-len(exportErrors), cfg.Output.Dir))

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}

// splitFormats parses the -export flag value, dropping empty pieces so
// trailing commas stay harmless
func splitFormats(list string) []string {
	var formats []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                      BESS BOARD v1.0.0                    ║
║        BESS construction viewer and report builder        ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
