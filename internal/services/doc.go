// Package services contains the orchestration layer between the CLI and
// the cleaning core.
//
// CleanService wires the loaders, the dataprocessing pipeline and the
// CSV exporter into complete cleaning runs. Single files run through
// CleanFile; CleanDirectory fans a directory of raw inputs out over a
// bounded worker group. Each run is tagged with a uuid that appears in
// every log line and in the returned CleanReport.
package services
