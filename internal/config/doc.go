// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading floor definitions
// from various sources.
//
// The `config.Floor` is the single source of truth for the `app` package.
// Concrete implementations of the interface, such as for HCL, are provided in
// separate packages.
package config
