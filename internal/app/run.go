package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/forkliftgo/internal/config"
	"github.com/specialistvlad/forkliftgo/internal/ctxlog"
	"github.com/specialistvlad/forkliftgo/internal/forklift"
	"github.com/specialistvlad/forkliftgo/internal/grid"
)

// job is a floor that passed validation and is ready to be run.
type job struct {
	floor  *config.Floor
	grid   *grid.Grid
	engine *forklift.Engine
}

// Run executes the main application logic: every floor is loaded and
// validated first, then each one is analysed and reported in order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", uuid.NewString()))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	floors, err := a.loadFloors(ctx)
	if err != nil {
		return err
	}

	jobs := make([]job, 0, len(floors))
	for _, floor := range floors {
		j, err := prepare(floor)
		if err != nil {
			return fmt.Errorf("floor %q (%s): %w", floor.Name, floor.Source, err)
		}
		jobs = append(jobs, j)
	}
	logger.Debug("All floors validated.", "count", len(jobs))

	for _, j := range jobs {
		floorCtx := ctxlog.With(ctx, "floor", j.floor.Name)
		report := j.engine.Run(floorCtx, j.grid)
		ctxlog.FromContext(floorCtx).Debug("Final floor layout.", "layout", j.grid.Render(j.floor.Marker, '.'))

		if err := writeReport(a.outW, j.floor.Name, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// loadFloors returns the floors named by the configuration: either every
// floor declared in the HCL config path or the single plain layout file.
func (a *App) loadFloors(ctx context.Context) ([]*config.Floor, error) {
	logger := ctxlog.FromContext(ctx)
	defaults := config.Defaults{Marker: a.config.Marker, Threshold: a.config.Threshold}

	if a.config.ConfigPath != "" {
		if a.loader == nil {
			return nil, errors.New("no configuration loader provided")
		}
		floors, err := a.loader.Load(ctx, defaults, a.config.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		if len(floors) == 0 {
			return nil, fmt.Errorf("no floors defined in %s", a.config.ConfigPath)
		}
		logger.Info("Floors loaded successfully.", "floors_found", len(floors))
		return floors, nil
	}

	data, err := os.ReadFile(a.config.LayoutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(a.config.LayoutPath), filepath.Ext(a.config.LayoutPath))
	logger.Debug("Layout file read.", "path", a.config.LayoutPath, "bytes", len(data))

	return []*config.Floor{{
		Name:      name,
		Layout:    string(data),
		Marker:    defaults.Marker,
		Threshold: defaults.Threshold,
		Source:    a.config.LayoutPath,
	}}, nil
}

// prepare parses a floor's layout and builds its engine.
func prepare(floor *config.Floor) (job, error) {
	g, err := grid.Parse(floor.Layout, floor.Marker)
	if err != nil {
		return job{}, err
	}
	engine, err := forklift.New(floor.Threshold)
	if err != nil {
		return job{}, err
	}
	return job{floor: floor, grid: g, engine: engine}, nil
}
