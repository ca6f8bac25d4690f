package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/forkliftgo/internal/forklift"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LayoutPath string // plain text layout
	ConfigPath string // hcl file or directory

	Marker    rune
	Threshold int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LayoutPath == "" && cfg.ConfigPath == "" {
		return nil, errors.New("either LayoutPath or ConfigPath must be set")
	}
	if cfg.LayoutPath != "" && cfg.ConfigPath != "" {
		return nil, errors.New("LayoutPath and ConfigPath are mutually exclusive")
	}
	if cfg.Marker == 0 {
		return nil, errors.New("Marker is a required configuration field and cannot be empty")
	}
	if cfg.Threshold < 0 || cfg.Threshold > forklift.MaxThreshold {
		return nil, fmt.Errorf("Threshold must be between 0 and %d, got %d", forklift.MaxThreshold, cfg.Threshold)
	}

	return &cfg, nil
}
