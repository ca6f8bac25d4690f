package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/forkliftgo/internal/config"
	"github.com/specialistvlad/forkliftgo/internal/ctxlog"
	"github.com/specialistvlad/forkliftgo/internal/fsutil"
	"github.com/specialistvlad/forkliftgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// environ supplies the process environment exposed as `env`.
	environ func() []string
}

// NewLoader creates a new HCL loader that exposes the process environment to
// configuration files.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// Load finds every .hcl file under the given paths, decodes their `floor`
// blocks and translates them into the format-agnostic model. Files are read
// in lexical order and floors keep their declaration order. Floor names must
// be unique across all files.
func (l *Loader) Load(ctx context.Context, defaults config.Defaults, paths ...string) ([]*config.Floor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Floor configuration loading started.", "paths", paths)

	var files []string
	for _, path := range paths {
		found, err := fsutil.ResolveFiles(ctx, path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path '%s': %w", path, err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		logger.Warn("No .hcl files found at the specified paths.", "paths", paths)
		return nil, nil
	}
	logger.Info("Found HCL files to process.", "count", len(files))

	parser := hclparse.NewParser()
	declaredIn := make(map[string]string)
	var floors []*config.Floor

	for _, file := range files {
		fileFloors, err := l.loadFile(ctx, parser, file, defaults)
		if err != nil {
			return nil, err
		}
		for _, floor := range fileFloors {
			if first, exists := declaredIn[floor.Name]; exists {
				return nil, fmt.Errorf("duplicate floor %q in %s (first declared in %s)", floor.Name, file, first)
			}
			declaredIn[floor.Name] = file
			floors = append(floors, floor)
		}
	}

	logger.Debug("Finished loading floor configuration.", "files", len(files), "floors", len(floors))
	return floors, nil
}

// loadFile parses and decodes a single HCL file into floors.
func (l *Loader) loadFile(ctx context.Context, parser *hclparse.Parser, path string, defaults config.Defaults) ([]*config.Floor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding floor file.", "path", path)

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var cfg schema.FloorConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	evalCtx := l.newEvalContext(filepath.Dir(path))
	floors := make([]*config.Floor, 0, len(cfg.Floors))
	for _, s := range cfg.Floors {
		floor, err := translateFloor(ctx, s, evalCtx, defaults)
		if err != nil {
			return nil, fmt.Errorf("in file %s, floor '%s': %w", path, s.Name, err)
		}
		floor.Source = path
		floors = append(floors, floor)
	}

	logger.Debug("Successfully decoded floor file.", "path", path, "floors_found", len(floors))
	return floors, nil
}
