// Package config loads ingestor configuration from a YAML file with
// ${ENV} expansion, or directly from environment variables when no file
// is given. Defaults and validation are applied in either case.
package config
