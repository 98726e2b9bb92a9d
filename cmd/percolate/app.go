package main

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/percolate/montecarlo"
)

var errUsage = errors.New("usage: percolate [flags] <n> <trials>")

var (
	seedFlag = &cli.Int64Flag{
		Name:    "seed",
		Usage:   "Base seed for the random site source (0 = derive from the clock)",
		EnvVars: []string{"PERCOLATE_SEED"},
	}
	workersFlag = &cli.IntFlag{
		Name:    "workers",
		Usage:   "Number of trials run in parallel (0 = number of CPUs)",
		EnvVars: []string{"PERCOLATE_WORKERS"},
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   "Output format: text or table",
		Value:   formatText,
		EnvVars: []string{"PERCOLATE_FORMAT"},
	}
	verbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "Log level on stderr: debug, info, warn, error",
		Value:   "warn",
		EnvVars: []string{"PERCOLATE_VERBOSITY"},
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "percolate",
		Usage:     "Estimate the percolation threshold of an n-by-n grid",
		ArgsUsage: "<n> <trials>",
		Flags:     []cli.Flag{seedFlag, workersFlag, formatFlag, verbosityFlag},
		Action:    runEstimate,
	}
}

// settings is the validated command line.
type settings struct {
	n       int
	trials  int
	seed    int64
	workers int
	format  string
	level   slog.Level
}

func parseSettings(ctx *cli.Context) (settings, error) {
	args := ctx.Args().Slice()
	if len(args) != 2 {
		return settings{}, fmt.Errorf("%w: expected 2 arguments, got %d", errUsage, len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return settings{}, fmt.Errorf("invalid grid size %q: %w", args[0], err)
	}
	trials, err := strconv.Atoi(args[1])
	if err != nil {
		return settings{}, fmt.Errorf("invalid trial count %q: %w", args[1], err)
	}
	s := settings{
		n:       n,
		trials:  trials,
		seed:    ctx.Int64(seedFlag.Name),
		workers: ctx.Int(workersFlag.Name),
		format:  ctx.String(formatFlag.Name),
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	if s.workers < 0 {
		return settings{}, fmt.Errorf("invalid --%s %d: must be >= 0", workersFlag.Name, s.workers)
	}
	if s.workers == 0 {
		s.workers = runtime.NumCPU()
	}
	if s.format != formatText && s.format != formatTable {
		return settings{}, fmt.Errorf("invalid --%s %q: want %s or %s", formatFlag.Name, s.format, formatText, formatTable)
	}
	if err := s.level.UnmarshalText([]byte(ctx.String(verbosityFlag.Name))); err != nil {
		return settings{}, fmt.Errorf("invalid --%s: %w", verbosityFlag.Name, err)
	}

	return s, nil
}

func runEstimate(ctx *cli.Context) error {
	s, err := parseSettings(ctx)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: s.level}))

	est, err := montecarlo.Run(ctx.Context, s.n, s.trials,
		montecarlo.WithSeed(s.seed),
		montecarlo.WithWorkers(s.workers),
		montecarlo.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	return render(ctx.App.Writer, s.format, est)
}
