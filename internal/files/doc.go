// Package files provides input loading and discovery for the sales
// cleaning pipeline.
//
// This package contains two main components:
//
// Readers: Load raw delimited text (ReadCSV) or Excel workbooks
// (ReadExcel) into the shared Table model. Every cell is read as raw
// text with no type inference; the cleaning stages own all coercion.
// ReadTable dispatches on the file extension.
//
// Discovery: Finds cleanable input files in a directory, skipping
// temporary Office artifacts. All operations are relative to a base
// path to maintain portability.
//
// Example usage:
//
//	discovery := files.NewDiscovery("/path/to/base")
//	inputs, err := discovery.FindInputFiles("raw")
//
//	table, err := files.ReadTable(inputs[0].Path)
package files
