// Package percolate estimates percolation thresholds on square lattices.
//
// What is percolate?
//
//	A small, dependency-light toolkit that brings together:
//		• unionfind  – disjoint-set union with path compression and union by size
//		• grid       – an n×n site-percolation system (open / full / percolates)
//		• montecarlo – repeated randomized trials reduced to mean, stddev and a 95% CI
//		• cmd/percolate – command-line front end
//
// A site is full when an open path joins it to the top row; the system
// percolates when some open path joins the top row to the bottom row.
// The grid tracks top/bottom reachability as per-group status bits stored at
// union-find roots, so bottom-row sites never report full merely because the
// grid percolates elsewhere.
//
// Quick ASCII example (O = open):
//
//	O . O
//	O O .
//	. O .
//
// percolates through (1,1) → (2,1) → (2,2) → (3,2); (1,3) is full but not
// part of the percolating path.
//
//	go install github.com/katalvlaran/percolate/cmd/percolate@latest
//	percolate 200 100
package percolate
