// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// types.go — sentinel errors and the per-trial record.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Run/New wrap sentinels with the offending value using %w.
//   • Option constructors panic on meaningless input; Run never panics on
//     caller input.

package montecarlo

import "errors"

var (
	// ErrInvalidSize indicates a grid size n <= 0.
	ErrInvalidSize = errors.New("montecarlo: grid size n must be > 0")
	// ErrInvalidTrials indicates a trial count <= 0.
	ErrInvalidTrials = errors.New("montecarlo: trial count must be > 0")
	// ErrTooFewTrials indicates a statistic that needs at least two trials.
	ErrTooFewTrials = errors.New("montecarlo: at least 2 trials required")
)

// confidence95 is the two-sided z value for a 95% confidence interval.
const confidence95 = 1.96

// Trial records the outcome of one percolation run.
type Trial struct {
	// Index is the zero-based position of the trial.
	Index int
	// Threshold is OpenSites / n² at the moment the grid first percolated.
	Threshold float64
	// OpenSites is the number of open sites at that moment.
	OpenSites int
	// Draws counts random site draws, including draws of already open sites.
	Draws int
}
