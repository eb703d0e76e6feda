// Package dataprocessing implements the sales record cleaning pipeline.
// It consolidates the four transformation stages that turn a messy raw
// table into one suitable for downstream analysis.
//
// # Architecture
//
// The package is organized into four composable stages:
//
// 1. NormalizeColumns: canonicalizes column names and trims text cells
// 2. CoerceNumeric: converts raw text into optional floats
// 3. HandleMissingValues: imputes price (median) and quantity (1)
// 4. FilterInvalidRows: drops rows with non-positive or missing values
//
// # Usage
//
// Stages can be applied individually:
//
//	normalized := dataprocessing.NormalizeColumns(raw)
//	imputed := dataprocessing.HandleMissingValues(normalized)
//	cleaned := dataprocessing.FilterInvalidRows(imputed)
//
// or through the pipeline, which adds logging and statistics:
//
//	pipeline := dataprocessing.NewPipeline(logger)
//	cleaned, stats := pipeline.Clean(raw)
//
// # Data Flow
//
// The typical flow through this package:
//
//	Raw Table → NormalizeColumns → HandleMissingValues → FilterInvalidRows → Clean Table
//
// # Error Handling
//
// The stages are total functions over table data. Malformed numbers
// become missing values, absent price/quantity columns are synthesized,
// and invalid rows are silently dropped. Nothing in this package returns
// an error for a data-quality problem.
//
// # Testing
//
// The package includes comprehensive tests for all stages.
// Use table-driven tests when adding new functionality.
package dataprocessing
