// Package analysis runs level analyses: one private grid snapshot per
// request, optionally many in parallel, and re-analysis of watched files.
package analysis

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/litetux-lab/internal/fitness"
	"github.com/vovakirdan/litetux-lab/internal/levels"
	"github.com/vovakirdan/litetux-lab/internal/metrics"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// Result is the outcome of analysing one level.
type Result struct {
	Level      levels.Level
	TileSet    string
	Metrics    *metrics.Metrics
	Report     metrics.Report
	Fitness    float64
	HasFitness bool
	// Warning is set when the level failed validation; the report is
	// still computed.
	Warning error
	// Err is set when the level could not be analysed at all.
	Err     error
	Elapsed time.Duration
}

// Runner analyses levels with shared options. A Runner holds no mutable
// state and is safe for concurrent use.
type Runner struct {
	opts      metrics.Options
	evaluator fitness.Evaluator
	workers   int
	logger    *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithEvaluator scores every report with ev.
func WithEvaluator(ev fitness.Evaluator) Option {
	return func(r *Runner) { r.evaluator = ev }
}

// WithWorkers bounds parallel analyses. n <= 0 uses one worker per CPU.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a runner. opts.Tiles is the tile set for levels that
// do not name one; opts.Start is the start for levels that carry none.
func NewRunner(opts metrics.Options, options ...Option) *Runner {
	if opts.Tiles == nil {
		opts.Tiles = tiles.LiteTux()
	}
	r := &Runner{opts: opts, logger: log.Default()}
	for _, o := range options {
		o(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	return r
}

// Workers returns the parallelism used by AnalyzeAll.
func (r *Runner) Workers() int { return r.workers }

// Analyze runs both searches and all metrics over a snapshot of the level.
// The returned error is non-nil only when ctx ends; every other failure is
// reported in Result.Err.
func (r *Runner) Analyze(ctx context.Context, lvl levels.Level) (Result, error) {
	start := time.Now()
	res := Result{Level: lvl}

	opts := r.opts
	if lvl.TileSet != "" && lvl.TileSet != opts.Tiles.Name() {
		set, err := tiles.Lookup(lvl.TileSet)
		if err != nil {
			res.Err = err
			return res, nil
		}
		opts.Tiles = set
	}
	opts.Start = lvl.StartOr(opts.Start)
	res.TileSet = opts.Tiles.Name()

	if lvl.Grid == nil {
		res.Err = fmt.Errorf("level %s has no grid", lvl.ID)
		return res, nil
	}
	if err := levels.Validate(lvl, opts.Tiles, opts.Start); err != nil {
		res.Warning = err
		r.logger.Warn("level failed validation", "level", lvl.ID, "err", err)
	}

	m, err := metrics.NewContext(ctx, lvl.Snapshot(), opts)
	if err != nil {
		return res, err
	}
	res.Metrics = m
	res.Report = m.Report()

	if r.evaluator != nil {
		f, err := r.evaluator.Evaluate(ctx, res.Report.Bundle())
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			res.Err = fmt.Errorf("fitness of %s: %w", lvl.ID, err)
		} else {
			res.Fitness, res.HasFitness = f, true
		}
	}

	res.Elapsed = time.Since(start)
	r.logger.Debug("analysed level", "level", lvl.ID, "elapsed", res.Elapsed, "completable", res.Report.Completable)
	return res, nil
}

// AnalyzeAll analyses levels in parallel. Results keep the input order.
// The first context error stops the remaining work.
func (r *Runner) AnalyzeAll(ctx context.Context, lvls []levels.Level) ([]Result, error) {
	results := make([]Result, len(lvls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, lvl := range lvls {
		g.Go(func() error {
			res, err := r.Analyze(ctx, lvl)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
