// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)) and applied in order;
//     later options override earlier ones.
//   • Option constructors panic on meaningless input (nil factory, workers < 1).
//   • Defaults: seed 0 (⇒ defaultSeed), 1 worker, math/rand sources,
//     discarding logger.

package montecarlo

import (
	"io"
	"log/slog"
)

// Option customizes an estimation run.
type Option func(*config)

// config is the resolved set of knobs for one run.
type config struct {
	seed      int64
	workers   int
	newSource SourceFactory
	logger    *slog.Logger
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		seed:      0,
		workers:   1,
		newSource: NewSource,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the base seed. Per-trial streams are derived from it, so the
// same seed reproduces the same thresholds. 0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithWorkers runs trials on up to w goroutines. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("montecarlo: WithWorkers(w<1)")
	}
	return func(c *config) {
		c.workers = w
	}
}

// WithSourceFactory replaces the default math/rand Source. The factory is
// called once per trial with that trial's derived seed. Panics on nil.
func WithSourceFactory(fn SourceFactory) Option {
	if fn == nil {
		panic("montecarlo: WithSourceFactory(nil)")
	}
	return func(c *config) {
		c.newSource = fn
	}
}

// WithLogger attaches a structured logger for run and trial events. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("montecarlo: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
