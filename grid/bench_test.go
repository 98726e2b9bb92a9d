package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/grid"
)

// BenchmarkOpenUntilPercolates opens sites of a 512×512 grid in a fixed
// random order until the grid percolates.
// Complexity: O(n²·α(n²)) per iteration.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 512
	order := rand.New(rand.NewSource(42)).Perm(n * n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := grid.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for _, idx := range order {
			_ = g.Open(idx/n+1, idx%n+1)
			if g.Percolates() {
				break
			}
		}
	}
}

// BenchmarkIsFull measures root lookups on a fully open 512×512 grid.
func BenchmarkIsFull(b *testing.B) {
	const n = 512
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			_ = g.Open(r, c)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.IsFull(i%n+1, (i/n)%n+1)
	}
}
