// Package exporter provides CSV export and console preview for cleaned
// tables.
//
// CSVWriter writes a Table back to delimited text preserving column
// order. Relative output paths resolve into the configured processed
// data directory; absolute paths are used as-is. Prices render with Go's
// standard float formatting and imputed quantities as plain integers.
//
// Preview renders the first rows of a cleaned table for the post-run
// feedback the CLI prints.
package exporter
