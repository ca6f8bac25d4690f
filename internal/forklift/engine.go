// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package forklift

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/forkliftgo/internal/ctxlog"
	"github.com/specialistvlad/forkliftgo/internal/grid"
)

// ErrInvalidThreshold is returned by New for a threshold outside [0, MaxThreshold].
var ErrInvalidThreshold = errors.New("invalid reachability threshold")

// Report is the outcome of Engine.Run on one floor.
type Report struct {
	Threshold int
	// Reachable is the number of rolls reachable on the floor as given,
	// before anything is removed.
	Reachable int
	// Removed is the total number of rolls taken away across all rounds.
	Removed int
	// Remaining is the number of rolls left once nothing more is reachable.
	Remaining int
	Rounds    []Round
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoundHook registers a callback invoked after every removal round.
func WithRoundHook(hook func(Round)) Option {
	return func(e *Engine) {
		e.onRound = hook
	}
}

// Engine runs the snapshot scan and the removal loop with a fixed threshold.
type Engine struct {
	threshold int
	onRound   func(Round)
}

// New creates an Engine for the given threshold.
func New(threshold int, opts ...Option) (*Engine, error) {
	if threshold < 0 || threshold > MaxThreshold {
		return nil, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidThreshold, threshold, MaxThreshold)
	}
	e := &Engine{threshold: threshold}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Threshold returns the engine's reachability threshold.
func (e *Engine) Threshold() int {
	return e.threshold
}

// Run counts the rolls reachable on g as given, then removes reachable rolls
// round by round until none is left. g is modified in place.
func (e *Engine) Run(ctx context.Context, g *grid.Grid) *Report {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine run started.", "width", g.Width(), "height", g.Height(), "threshold", e.threshold)

	report := &Report{
		Threshold: e.threshold,
		Reachable: len(ReachableRolls(g, e.threshold)),
	}
	logger.Info("Initial scan finished.", "rolls", g.Count(grid.PaperRoll), "reachable", report.Reachable)

	report.Removed = removeUntilStable(g, e.threshold, func(r Round) {
		logger.Debug("Removal round finished.", "round", r.Number, "removed", r.Removed, "remaining", r.Remaining)
		report.Rounds = append(report.Rounds, r)
		if e.onRound != nil {
			e.onRound(r)
		}
	})
	report.Remaining = g.Count(grid.PaperRoll)

	logger.Info("Removal finished.", "rounds", len(report.Rounds), "removed", report.Removed, "remaining", report.Remaining)
	return report
}
