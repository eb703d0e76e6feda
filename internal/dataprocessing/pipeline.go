package dataprocessing

import (
	"log/slog"

	"salesclean/pkg/contracts/domain"
)

// Pipeline composes the four cleaning stages over an in-memory table:
// column normalization, numeric coercion, missing-value imputation and
// invalid-row filtering. Stages are pure; the pipeline adds logging and
// run statistics on top of them.
type Pipeline struct {
	logger *slog.Logger
}

// NewPipeline creates a cleaning pipeline. A nil logger falls back to the
// default slog logger.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Clean runs the full pipeline on a raw table and returns the cleaned
// table with per-run statistics. Data-quality problems never produce an
// error: malformed numbers become missing values, missing columns are
// synthesized, and invalid rows are dropped.
func (p *Pipeline) Clean(t domain.Table) (domain.Table, domain.CleanStats) {
	rowsIn := len(t.Rows)

	normalized := NormalizeColumns(t)
	imputed, stats := handleMissing(normalized)
	cleaned := FilterInvalidRows(imputed)

	stats.RowsIn = rowsIn
	stats.RowsOut = len(cleaned.Rows)
	stats.RowsDropped = rowsIn - stats.RowsOut

	p.logger.Info("cleaning pipeline complete",
		slog.Int("rows_in", stats.RowsIn),
		slog.Int("rows_out", stats.RowsOut),
		slog.Int("rows_dropped", stats.RowsDropped),
		slog.Int("prices_imputed", stats.PricesImputed),
		slog.Int("quantities_imputed", stats.QuantitiesImputed))

	return cleaned, stats
}
