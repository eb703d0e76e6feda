package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"salesclean/internal/dataprocessing"
	"salesclean/internal/exporter"
	"salesclean/internal/files"
	"salesclean/internal/validation"
	"salesclean/pkg/contracts/domain"
)

// CleanService orchestrates cleaning runs: load a raw file, run the
// pipeline, export the cleaned table. Every run gets a uuid so its log
// lines and report can be correlated.
type CleanService struct {
	logger    *slog.Logger
	writer    *exporter.CSVWriter
	pipeline  *dataprocessing.Pipeline
	validator *validation.FileValidator
}

// NewCleanService creates a new cleaning service. A nil logger falls
// back to the default slog logger.
func NewCleanService(logger *slog.Logger, writer *exporter.CSVWriter) *CleanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CleanService{
		logger:    logger,
		writer:    writer,
		pipeline:  dataprocessing.NewPipeline(logger),
		validator: validation.NewFileValidator(logger),
	}
}

// CleanFile cleans a single raw input file and writes the result to
// outPath. The context is checked before the run starts; the run itself
// is a bounded in-memory transform.
func (s *CleanService) CleanFile(ctx context.Context, inPath, outPath string) (domain.CleanReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.CleanReport{}, err
	}
	if err := s.validator.ValidateInputFile(inPath); err != nil {
		return domain.CleanReport{}, err
	}

	runID := uuid.NewString()
	logger := s.logger.With(slog.String("run_id", runID))

	logger.Info("Starting cleaning run",
		slog.String("input", inPath),
		slog.String("output", outPath))

	table, err := files.ReadTable(inPath)
	if err != nil {
		return domain.CleanReport{}, fmt.Errorf("failed to load %s: %w", inPath, err)
	}

	cleaned, stats := s.pipeline.Clean(table)

	if err := s.writer.WriteTable(outPath, cleaned, exporter.WriteOptions{}); err != nil {
		return domain.CleanReport{}, fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	report := domain.CleanReport{
		RunID:      runID,
		InputPath:  inPath,
		OutputPath: outPath,
		Stats:      stats,
	}

	logger.Info("Cleaning run complete",
		slog.Int("rows_in", stats.RowsIn),
		slog.Int("rows_out", stats.RowsOut),
		slog.Int("rows_dropped", stats.RowsDropped))

	return report, nil
}

// CleanDirectory cleans every .csv/.xlsx file in inDir, writing each
// result to outDir under the same name with a .csv extension. Files are
// processed concurrently with at most workers goroutines; the first
// failure cancels the remaining work. Reports come back in input order.
func (s *CleanService) CleanDirectory(ctx context.Context, inDir, outDir string, workers int) ([]domain.CleanReport, error) {
	if workers < 1 {
		workers = 1
	}
	if err := s.validator.ValidateInputDirectory(inDir); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateOutputDirectory(outDir); err != nil {
		return nil, err
	}

	discovery := files.NewDiscovery(inDir)
	inputs, err := discovery.FindInputFiles(".")
	if err != nil {
		return nil, fmt.Errorf("failed to discover input files: %w", err)
	}

	s.logger.Info("Starting batch cleaning run",
		slog.String("input_dir", inDir),
		slog.String("output_dir", outDir),
		slog.Int("file_count", len(inputs)),
		slog.Int("workers", workers))

	reports := make([]domain.CleanReport, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			outPath := filepath.Join(outDir, CleanedName(input.Name))
			report, err := s.CleanFile(ctx, input.Path, outPath)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// CleanedName maps an input file name to its cleaned output name:
// sales.csv -> sales_clean.csv, sales.xlsx -> sales_clean.csv.
func CleanedName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + "_clean.csv"
}
