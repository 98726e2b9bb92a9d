// SPDX-License-Identifier: MIT
// Package: percolate/grid
//
// grid.go — construction, site state and connectivity queries.

package grid

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// Operation names used when wrapping sentinel errors.
const (
	opOpen   = "Open"
	opIsOpen = "IsOpen"
	opIsFull = "IsFull"
	opStatus = "Status"
)

// Grid is an n×n percolation system. The zero value is not usable; call New.
type Grid struct {
	n          int
	status     []Status
	uf         *unionfind.DisjointSet
	percolates bool
}

// New creates an n×n grid with every site blocked. Row 1 is pre-tagged
// StatusTop and row n StatusBottom; for n == 1 the single site carries both.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	total := n * n
	uf, err := unionfind.New(total)
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", n, err)
	}
	status := make([]Status, total)
	for col := 0; col < n; col++ {
		status[col] |= StatusTop
		status[total-n+col] |= StatusBottom
	}

	return &Grid{n: n, status: status, uf: uf}, nil
}

// Size returns n, the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// Open opens the site (row, col) and merges it with every open orthogonal
// neighbour. Opening an already open site is a no-op.
// Returns ErrOutOfRange if row or col is outside [1, n].
//
// Each neighbour's group status is read through its root before the union,
// ORed into the running status, and written back onto both raw slots; once
// all neighbours are merged the final status is stored at the current root.
//
// Complexity: amortized O(α(n²)).
func (g *Grid) Open(row, col int) error {
	if err := g.validate(opOpen, row, col); err != nil {
		return err
	}
	site := g.index(row, col)
	if g.status[site].Has(StatusOpen) {
		return nil
	}

	g.status[site] |= StatusOpen
	merged := g.status[site]
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.inBounds(nr, nc) {
			continue
		}
		neighbor := g.index(nr, nc)
		if !g.status[neighbor].Has(StatusOpen) {
			continue
		}
		merged |= g.status[g.uf.Find(neighbor)]
		g.uf.Union(neighbor, site)
		g.status[neighbor] = merged
		g.status[site] = merged
	}
	g.status[g.uf.Find(site)] = merged

	// For n == 1 the site is already tagged top and bottom, so this fires on
	// the first Open.
	if merged.Has(statusPercolating) {
		g.percolates = true
	}

	return nil
}

// IsOpen reports whether (row, col) has been opened.
// The site's own StatusOpen bit never changes after Open, so no root lookup
// is needed.
// Returns ErrOutOfRange if row or col is outside [1, n].
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(opIsOpen, row, col); err != nil {
		return false, err
	}

	return g.status[g.index(row, col)].Has(StatusOpen), nil
}

// IsFull reports whether (row, col) is open and connected to row 1 through
// open sites. The answer is read at the root of the site's group.
// Returns ErrOutOfRange if row or col is outside [1, n].
// Complexity: amortized O(α(n²)).
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(opIsFull, row, col); err != nil {
		return false, err
	}

	return g.rootStatus(g.index(row, col)).Has(statusFull), nil
}

// Status returns the status of the group containing (row, col), read through
// its root. A blocked site is its own group.
// Returns ErrOutOfRange if row or col is outside [1, n].
func (g *Grid) Status(row, col int) (Status, error) {
	if err := g.validate(opStatus, row, col); err != nil {
		return 0, err
	}

	return g.rootStatus(g.index(row, col)), nil
}

// NumberOfOpenSites counts open sites with a linear scan.
// Complexity: O(n²).
func (g *Grid) NumberOfOpenSites() int {
	count := 0
	for _, s := range g.status {
		if s.Has(StatusOpen) {
			count++
		}
	}

	return count
}

// Percolates reports whether an open path joins row 1 and row n.
// Once true it stays true.
// Complexity: O(1).
func (g *Grid) Percolates() bool {
	return g.percolates
}

// rootStatus returns the authoritative status of idx's group.
func (g *Grid) rootStatus(idx int) Status {
	return g.status[g.uf.Find(idx)]
}

// validate wraps ErrOutOfRange with the operation and coordinates.
func (g *Grid) validate(op string, row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%s(%d,%d): %w", op, row, col, ErrOutOfRange)
	}

	return nil
}

// inBounds reports whether (row, col) lies within [1, n]×[1, n].
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps 1-indexed (row, col) to a row-major flat index.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}
