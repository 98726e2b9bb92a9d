// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// estimator.go — trial scheduling and summary statistics.

package montecarlo

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/grid"
)

// Estimator holds the outcome of a completed set of percolation trials.
// It is immutable once returned and safe for concurrent reads.
type Estimator struct {
	n          int
	trials     []Trial
	thresholds []float64
	mean       float64
	stddev     float64
}

// New runs trials independent percolation experiments on an n×n grid and
// returns their summary. It is Run with context.Background().
func New(n, trials int, opts ...Option) (*Estimator, error) {
	return Run(context.Background(), n, trials, opts...)
}

// Run runs trials independent percolation experiments on an n×n grid.
//
// Errors:
//   - ErrInvalidSize if n <= 0, ErrInvalidTrials if trials <= 0.
//   - grid.ErrOutOfRange (wrapped) if a custom Source draws outside [1, n].
//   - ctx.Err() if ctx is cancelled before all trials have finished.
//
// Complexity: O(trials·n²·α(n²)) time, O(workers·n² + trials) memory.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Estimator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Run(n=%d): %w", n, ErrInvalidSize)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("Run(trials=%d): %w", trials, ErrInvalidTrials)
	}
	cfg := newConfig(opts...)
	base := cfg.seed
	if base == 0 {
		base = defaultSeed
	}
	log := cfg.logger.With("n", n, "trials", trials)
	log.Info("Starting percolation trials", "workers", cfg.workers, "seed", base)
	start := time.Now()

	// Every goroutine writes only its own slot; the slice is read after Wait.
	results := make([]Trial, trials)
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := 0; i < trials; i++ {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			t, err := runTrial(n, cfg.newSource(deriveSeed(base, uint64(i))))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			t.Index = i
			results[i] = t
			log.Debug("Trial complete", "trial", i, "threshold", t.Threshold, "open", t.OpenSites, "draws", t.Draws)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("Percolation trials aborted", "err", err)
		return nil, err
	}
	// errgroup only cancels egctx on a worker error; a parent cancellation
	// can stop the loop without any worker failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	est := newEstimator(n, results)
	log.Info("Percolation trials finished", "mean", est.mean, "stddev", est.stddev, "elapsed", time.Since(start))

	return est, nil
}

// runTrial opens random sites of a fresh n×n grid until it percolates.
func runTrial(n int, src Source) (Trial, error) {
	g, err := grid.New(n)
	if err != nil {
		return Trial{}, err
	}
	draws := 0
	for !g.Percolates() {
		row, col := src.UniformInt(1, n), src.UniformInt(1, n)
		draws++
		open, err := g.IsOpen(row, col)
		if err != nil {
			return Trial{}, err
		}
		if open {
			continue
		}
		if err = g.Open(row, col); err != nil {
			return Trial{}, err
		}
	}
	opened := g.NumberOfOpenSites()

	return Trial{
		Threshold: float64(opened) / float64(n*n),
		OpenSites: opened,
		Draws:     draws,
	}, nil
}

// newEstimator reduces joined trial results into summary statistics.
func newEstimator(n int, trials []Trial) *Estimator {
	thresholds := make([]float64, len(trials))
	for i, t := range trials {
		thresholds[i] = t.Threshold
	}
	stddev := math.NaN()
	if len(thresholds) > 1 {
		stddev = stat.StdDev(thresholds, nil)
	}

	return &Estimator{
		n:          n,
		trials:     trials,
		thresholds: thresholds,
		mean:       stat.Mean(thresholds, nil),
		stddev:     stddev,
	}
}

// N returns the grid side length.
func (e *Estimator) N() int {
	return e.n
}

// TrialCount returns the number of trials run.
func (e *Estimator) TrialCount() int {
	return len(e.trials)
}

// Trials returns a copy of the per-trial records in trial order.
func (e *Estimator) Trials() []Trial {
	out := make([]Trial, len(e.trials))
	copy(out, e.trials)

	return out
}

// Thresholds returns a copy of the per-trial thresholds in trial order.
func (e *Estimator) Thresholds() []float64 {
	out := make([]float64, len(e.thresholds))
	copy(out, e.thresholds)

	return out
}

// Mean returns the sample mean of the percolation thresholds.
func (e *Estimator) Mean() float64 {
	return e.mean
}

// StdDev returns the sample standard deviation of the thresholds
// (n−1 denominator). NaN for a single trial.
func (e *Estimator) StdDev() float64 {
	return e.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
// NaN for a single trial.
func (e *Estimator) ConfidenceLo() float64 {
	return e.mean - e.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
// NaN for a single trial.
func (e *Estimator) ConfidenceHi() float64 {
	return e.mean + e.halfWidth()
}

// Interval returns both 95% confidence endpoints, or ErrTooFewTrials when
// fewer than two trials were run.
func (e *Estimator) Interval() (lo, hi float64, err error) {
	if len(e.thresholds) < 2 {
		return 0, 0, ErrTooFewTrials
	}

	return e.ConfidenceLo(), e.ConfidenceHi(), nil
}

func (e *Estimator) halfWidth() float64 {
	return confidence95 * e.stddev / math.Sqrt(float64(len(e.thresholds)))
}
