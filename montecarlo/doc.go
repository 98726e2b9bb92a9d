// SPDX-License-Identifier: MIT

// Package montecarlo estimates the site-percolation threshold of an n×n grid
// by repeated randomized trials.
//
// Each trial starts from a fresh grid.Grid with every site blocked, draws
// uniformly random sites in [1,n]×[1,n] from a Source, opens those that are
// still blocked, and stops as soon as the grid percolates. The trial's
// threshold is the fraction of open sites at that moment.
//
// Summary statistics over all trials:
//
//   - Mean:          arithmetic mean of thresholds.
//   - StdDev:        sample standard deviation (n−1 denominator).
//   - ConfidenceLo:  Mean − 1.96·StdDev/√trials.
//   - ConfidenceHi:  Mean + 1.96·StdDev/√trials.
//
// With a single trial the standard deviation is undefined: StdDev and the
// confidence bounds return NaN and Interval returns ErrTooFewTrials.
//
// Determinism & concurrency:
//
// Trials are independent. With WithWorkers(w) they run on up to w goroutines;
// every trial owns its grid and its Source. The Source for trial i is seeded
// from the base seed and i alone, so a given seed yields the same thresholds
// in the same order for any worker count. Results are reduced only after all
// workers have joined.
//
// Example:
//
//	est, err := montecarlo.New(200, 100, montecarlo.WithSeed(7), montecarlo.WithWorkers(8))
//	if err != nil {
//		return err
//	}
//	fmt.Println(est.Mean(), est.StdDev(), est.ConfidenceLo(), est.ConfidenceHi())
package montecarlo
