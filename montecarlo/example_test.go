package montecarlo_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/montecarlo"
)

// ExampleNew estimates the threshold of a 1×1 grid, where every trial opens
// the only site and percolates immediately.
func ExampleNew() {
	est, err := montecarlo.New(1, 4, montecarlo.WithSeed(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	lo, hi, _ := est.Interval()
	fmt.Printf("mean=%.3f stddev=%.3f ci=[%.3f, %.3f]\n", est.Mean(), est.StdDev(), lo, hi)

	// Output:
	// mean=1.000 stddev=0.000 ci=[1.000, 1.000]
}

// ExampleWithWorkers shows that the worker count does not change the result.
func ExampleWithWorkers() {
	seq, _ := montecarlo.New(20, 10, montecarlo.WithSeed(5))
	par, _ := montecarlo.New(20, 10, montecarlo.WithSeed(5), montecarlo.WithWorkers(4))

	fmt.Println(seq.Mean() == par.Mean())

	// Output:
	// true
}
