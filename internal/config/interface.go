package config

import "context"

// Loader is the interface for a format-specific floor configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates every
	// floor it declares into the format-agnostic model, applying defaults
	// for values the configuration leaves unset.
	Load(ctx context.Context, defaults Defaults, paths ...string) ([]*Floor, error)
}
