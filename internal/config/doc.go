// Package config provides configuration loading and path resolution for
// the sales cleaning tool.
//
// Configuration is assembled from three sources, in increasing
// precedence: built-in defaults, an optional YAML config file
// (config.yaml or configs/config.yaml), and SALESCLEAN_-prefixed
// environment variables. The merged result is validated with
// go-playground/validator before use.
//
// The Paths type resolves the raw-data, processed-data and logs
// directories against a base directory (the executable's directory by
// default) and can create them up front. The cleaning core itself never
// touches the filesystem; paths exist only for the CLI and its I/O
// collaborators.
package config
