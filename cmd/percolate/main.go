// Command percolate estimates the site-percolation threshold of an n×n grid
// by Monte Carlo simulation.
//
// Usage:
//
//	percolate [flags] <n> <trials>
//
// It prints the sample mean, the sample standard deviation and the 95%
// confidence interval of the per-trial thresholds.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
}
