package montecarlo_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/percolate/montecarlo"
)

// BenchmarkRun compares sequential and parallel trial scheduling on a
// 128×128 grid with 64 trials.
func BenchmarkRun(b *testing.B) {
	for _, w := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := montecarlo.New(128, 64, montecarlo.WithSeed(1), montecarlo.WithWorkers(w)); err != nil {
					b.Fatalf("Run failed: %v", err)
				}
			}
		})
	}
}
