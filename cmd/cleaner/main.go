package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"salesclean/internal/config"
	"salesclean/internal/exporter"
	"salesclean/internal/files"
	"salesclean/internal/infrastructure"
	"salesclean/internal/services"
	"salesclean/pkg/contracts"
)

func main() {
	in := flag.String("in", "", "input CSV/XLSX file or directory (defaults to the configured raw data directory)")
	out := flag.String("out", "", "output CSV file or directory (defaults to the configured processed data directory)")
	preview := flag.Int("preview", -1, "rows of the cleaned table to print (-1 uses the configured value)")
	workers := flag.Int("workers", 0, "concurrent files in directory mode (0 uses the configured value)")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if !filepath.IsAbs(cfg.Logging.FilePath) {
		name := filepath.Base(cfg.Logging.FilePath)
		if name == "." {
			name = "salesclean.log"
		}
		cfg.Logging.FilePath = paths.LogPath(name)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *in == "" {
		*in = paths.RawDir
	}
	if *preview < 0 {
		*preview = cfg.Cleaning.PreviewRows
	}
	if *workers < 1 {
		*workers = cfg.Cleaning.Workers
	}

	logger.Info("Starting sales data cleaning",
		slog.String("input", *in),
		slog.String("output", *out),
		slog.Int("workers", *workers))

	service := services.NewCleanService(logger, exporter.NewCSVWriter(paths))
	ctx := context.Background()

	info, err := os.Stat(*in)
	if err != nil {
		logger.Error("Cannot read input path", slog.String("input", *in), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if info.IsDir() {
		outDir := *out
		if outDir == "" {
			outDir = paths.ProcessedDir
		}
		reports, err := service.CleanDirectory(ctx, *in, outDir, *workers)
		if err != nil {
			logger.Error("Batch cleaning failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, report := range reports {
			fmt.Printf("%s: %d rows in, %d rows out (%d dropped)\n",
				filepath.Base(report.OutputPath),
				report.Stats.RowsIn, report.Stats.RowsOut, report.Stats.RowsDropped)
		}
		fmt.Printf("Cleaning complete: %d files\n", len(reports))
		return
	}

	outPath := *out
	if outPath == "" {
		outPath = paths.ProcessedPath(services.CleanedName(filepath.Base(*in)))
	}
	report, err := service.CleanFile(ctx, *in, outPath)
	if err != nil {
		logger.Error("Cleaning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Cleaning complete: %d rows in, %d rows out (%d dropped)\n",
		report.Stats.RowsIn, report.Stats.RowsOut, report.Stats.RowsDropped)

	if *preview > 0 {
		cleaned, err := files.ReadCSV(report.OutputPath)
		if err != nil {
			logger.Warn("Could not load cleaned file for preview", slog.String("error", err.Error()))
			return
		}
		fmt.Println("First few rows:")
		fmt.Print(exporter.Preview(cleaned, *preview))
	}
}
