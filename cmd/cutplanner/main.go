// CutPlanner — panel cut list optimizer
//
// Imports a cut list (CSV, Excel or a saved project), searches for a
// good guillotine layout within a time budget, and writes the result as
// PDF layout sheets, QR part labels, a DXF drawing and an Excel cutting
// list.
//
// Build:
//   go build -o cutplanner ./cmd/cutplanner

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/piwi3910/cutplanner/internal/engine"
	"github.com/piwi3910/cutplanner/internal/export"
	"github.com/piwi3910/cutplanner/internal/importer"
	"github.com/piwi3910/cutplanner/internal/model"
	"github.com/piwi3910/cutplanner/internal/project"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "cut list to import (.csv, .xlsx or a saved .json project)")
		outputDir   = flag.String("out", ".", "directory for generated files")
		panelWidth  = flag.Float64("panel-width", 0, "stock panel width in mm (default from config)")
		panelHeight = flag.Float64("panel-height", 0, "stock panel height in mm (default from config)")
		noRotation  = flag.Bool("no-rotation", false, "forbid 90 degree piece rotation")
		duration    = flag.Duration("duration", 0, "optimization time budget (default from config)")
		saveAs      = flag.String("save", "", "save the project with results to this path")
		formats     = flag.String("formats", "pdf,xlsx", "comma-separated outputs: pdf,labels,dxf,xlsx")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, *inputPath, *outputDir, *panelWidth, *panelHeight, !*noRotation, *duration, *saveAs, *formats); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, inputPath, outputDir string, panelWidth, panelHeight float64, allowRotation bool, duration time.Duration, saveAs, formats string) error {
	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot read config, using defaults")
		config = model.DefaultAppConfig()
	}

	proj, pieces, err := loadInput(logger, inputPath, config)
	if err != nil {
		return err
	}
	if len(pieces) == 0 {
		return fmt.Errorf("no valid pieces in %s", inputPath)
	}

	opts := proj.Options
	if panelWidth > 0 {
		opts.PanelWidth = panelWidth
	}
	if panelHeight > 0 {
		opts.PanelHeight = panelHeight
	}
	opts.AllowRotation = allowRotation
	if duration > 0 {
		opts.MaxDuration = duration
	}
	proj.Options = opts

	est := model.CalculatePurchaseEstimate(pieces, opts.PanelWidth, opts.PanelHeight, 15, 0)
	logger.Info().
		Int("panels_min", est.PanelsNeededMin).
		Int("panels_recommended", est.PanelsWithWaste).
		Msg("purchase estimate")
	if banding := model.CalculateEdgeBanding(pieces, 10); banding.PieceCount > 0 {
		logger.Info().
			Float64("meters", banding.TotalWithWasteM).
			Int("edges", banding.EdgeCount).
			Msg("edge banding required")
	}

	logger.Info().
		Int("pieces", len(pieces)).
		Float64("panel_width", opts.PanelWidth).
		Float64("panel_height", opts.PanelHeight).
		Dur("budget", opts.MaxDuration).
		Msg("starting optimization")

	optimizer := engine.NewOptimizer(opts, nil)
	optimizer.Logger = logger
	runHandle := optimizer.Start(pieces)

	// Ctrl-C finishes the current iteration and keeps the best result
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		logger.Info().Msg("interrupt received, finishing up")
		runHandle.Stop()
	}()

	for p := range runHandle.Progress() {
		logger.Debug().
			Float64("percent", p.Percent).
			Int("iterations", p.Iterations).
			Dur("remaining", p.Remaining).
			Msg("searching")
	}
	result := <-runHandle.Done()
	signal.Stop(interrupt)

	printSummary(result)

	if err := writeOutputs(logger, outputDir, formats, result); err != nil {
		return err
	}

	// Bank reusable offcuts for future projects
	if offcuts := model.CollectOffcuts(result); len(offcuts) > 0 {
		invPath := project.DefaultInventoryPath()
		inv, err := project.LoadInventory(invPath)
		if err != nil {
			logger.Warn().Err(err).Msg("cannot read inventory, offcuts not banked")
		} else {
			inv.AddOffcuts(offcuts)
			if err := project.SaveInventory(invPath, inv); err != nil {
				logger.Warn().Err(err).Msg("cannot save inventory")
			} else {
				logger.Info().Int("offcuts", len(offcuts)).Msg("offcuts banked to inventory")
			}
		}
	}

	if saveAs != "" {
		proj.Result = &result
		if err := project.SaveProject(saveAs, proj); err != nil {
			return fmt.Errorf("cannot save project: %w", err)
		}
		config.AddRecentProject(saveAs)
		logger.Info().Str("path", saveAs).Msg("project saved")
	}

	config.LastImportDir = filepath.Dir(inputPath)
	config.LastExportDir = outputDir
	if err := project.SaveAppConfig(configPath, config); err != nil {
		logger.Warn().Err(err).Msg("cannot save config")
	}

	return nil
}

// loadInput reads pieces from a CSV file, an Excel workbook or a saved
// project, selected by file extension.
func loadInput(logger zerolog.Logger, path string, config model.AppConfig) (model.Project, []model.Piece, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		proj, err := project.LoadProject(path)
		if err != nil {
			return model.Project{}, nil, err
		}
		return proj, proj.Pieces, nil
	}

	var imported importer.ImportResult
	switch ext {
	case ".csv", ".txt":
		imported = importer.ImportCSV(path)
	case ".xlsx":
		imported = importer.ImportExcel(path)
	default:
		return model.Project{}, nil, fmt.Errorf("unsupported input format %q", ext)
	}

	for _, w := range imported.Warnings {
		logger.Warn().Msg(w)
	}
	for _, e := range imported.Errors {
		logger.Error().Msg(e)
	}
	if len(imported.Pieces) == 0 && len(imported.Errors) > 0 {
		return model.Project{}, nil, fmt.Errorf("import failed")
	}

	proj := model.NewProject()
	proj.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	proj.Pieces = imported.Pieces
	proj.Options = config.DefaultOptions
	return proj, imported.Pieces, nil
}

// writeOutputs generates the requested export files next to each other
// in the output directory.
func writeOutputs(logger zerolog.Logger, dir, formats string, result model.OptimizationResult) error {
	if len(result.Panels) == 0 {
		logger.Warn().Msg("nothing was placed, skipping exports")
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, format := range strings.Split(formats, ",") {
		var err error
		var path string
		switch strings.TrimSpace(strings.ToLower(format)) {
		case "pdf":
			path = filepath.Join(dir, "layout.pdf")
			err = export.ExportPDF(path, result)
		case "labels":
			path = filepath.Join(dir, "labels.pdf")
			err = export.ExportLabels(path, result)
		case "dxf":
			path = filepath.Join(dir, "layout.dxf")
			err = export.ExportDXF(path, result)
		case "xlsx":
			path = filepath.Join(dir, "cutting-list.xlsx")
			err = export.ExportExcel(path, result)
		case "":
			continue
		default:
			return fmt.Errorf("unknown output format %q", format)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		logger.Info().Str("path", path).Msg("wrote output")
	}
	return nil
}

func printSummary(result model.OptimizationResult) {
	fmt.Printf("Panels used:       %d\n", result.Stats.TotalPanels)
	fmt.Printf("Mean utilization:  %.1f%%\n", result.Stats.GlobalUtilization)
	fmt.Printf("Estimated cuts:    %d\n", result.Stats.TotalCuts)
	for _, panel := range result.Panels {
		fmt.Printf("  Panel %d (%s %gmm): %d pieces, %.1f%% used\n",
			panel.Number, panel.Material.Finish, panel.Material.Thickness,
			len(panel.Placements), panel.Utilization())
	}
	if len(result.Oversize) > 0 {
		fmt.Printf("Oversize pieces (not placed): %d\n", len(result.Oversize))
		for _, p := range result.Oversize {
			fmt.Printf("  %s (%.0f x %.0f mm)\n", p.Label, p.Length, p.Width)
		}
	}
}
