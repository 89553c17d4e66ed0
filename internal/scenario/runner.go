package scenario

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/magtraj/internal/dynamo"
	"github.com/san-kum/magtraj/internal/trajectory"
)

// Grid is a set of panels sharing one set of defaults.
type Grid struct {
	Title    string
	Defaults Defaults
	Panels   []Panel
}

func DefaultGrid() Grid {
	return Grid{
		Title:    "Electron Trajectories in Magnetic Fields",
		Defaults: DefaultDefaults(),
		Panels:   DefaultPanels(),
	}
}

type SeriesResult struct {
	Series
	Trajectory *trajectory.Trajectory
}

type PanelResult struct {
	Panel  Panel
	Series []SeriesResult
}

// Runner integrates every series of a grid.
type Runner struct {
	// Options is copied for every series; its Metrics are replaced by
	// fresh instances from NewMetrics.
	Options trajectory.Options
	// Workers bounds concurrent integrations. Zero or less is unbounded.
	Workers int
	// NewMetrics, when set, supplies the metrics observed on each series.
	NewMetrics func() []dynamo.Metric
	// Log receives one progress line per panel.
	Log io.Writer
}

// Run integrates the grid and returns results in panel and series order.
// The first failing series cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context, grid Grid) ([]PanelResult, error) {
	resolved := make([][]Series, len(grid.Panels))
	for i, p := range grid.Panels {
		series, err := p.Series(grid.Defaults)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Title, err)
		}
		resolved[i] = series
	}

	g, gctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}

	results := make([]PanelResult, len(grid.Panels))
	for i, p := range grid.Panels {
		r.logf("Simulating %s...\n", p.Vary.Activity())
		results[i] = PanelResult{Panel: p, Series: make([]SeriesResult, len(resolved[i]))}
		out := results[i].Series
		for j, s := range resolved[i] {
			opts := r.Options
			if r.NewMetrics != nil {
				opts.Metrics = r.NewMetrics()
			} else {
				opts.Metrics = nil
			}
			g.Go(func() error {
				tr, err := trajectory.IntegrateContext(gctx, s.Particle, s.Field, opts)
				if err != nil {
					return fmt.Errorf("%s: %s: %w", p.Title, s.Label, err)
				}
				out[j] = SeriesResult{Series: s, Trajectory: tr}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log != nil {
		fmt.Fprintf(r.Log, format, args...)
	}
}
