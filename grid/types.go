// SPDX-License-Identifier: MIT
// Package: percolate/grid
//
// types.go — status bits and sentinel errors.

package grid

import (
	"errors"
	"strings"
)

// Sentinel errors for grid operations. Callers match them with errors.Is;
// operations wrap them with the failing call, e.g. "Open(0,3): grid: ...".
var (
	// ErrInvalidSize indicates New was called with a non-positive n.
	ErrInvalidSize = errors.New("grid: size n must be > 0")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("grid: row and col must be in [1, n]")
)

// Status is the bit set recorded per site and, authoritatively, per group root.
type Status uint8

const (
	// StatusBottom marks a site or group that touches row n.
	StatusBottom Status = 1 << iota
	// StatusTop marks a site or group that touches row 1.
	StatusTop
	// StatusOpen marks an opened site. Set once, never cleared.
	StatusOpen

	// statusFull is what IsFull requires at the root.
	statusFull = StatusOpen | StatusTop
	// statusPercolating is what a merge must produce to set the percolates flag.
	statusPercolating = StatusOpen | StatusTop | StatusBottom
)

// Has reports whether every bit of mask is set in s.
func (s Status) Has(mask Status) bool {
	return s&mask == mask
}

// String renders s as "open|top|bottom" in that order, or "blocked" when empty.
func (s Status) String() string {
	if s == 0 {
		return "blocked"
	}
	parts := make([]string, 0, 3)
	if s.Has(StatusOpen) {
		parts = append(parts, "open")
	}
	if s.Has(StatusTop) {
		parts = append(parts, "top")
	}
	if s.Has(StatusBottom) {
		parts = append(parts, "bottom")
	}

	return strings.Join(parts, "|")
}

// neighborOffsets lists the orthogonal neighbours as {dRow, dCol}: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
