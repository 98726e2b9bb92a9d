// SPDX-License-Identifier: MIT

// Package grid models site percolation on an n×n lattice.
//
// What:
//
//   - Grid holds n×n sites, each blocked or open, addressed 1-indexed as (row, col).
//   - Open activates a site and merges it with its open orthogonal neighbours.
//   - IsFull reports whether an open site is connected to row 1 by open sites.
//   - Percolates reports whether some open path joins row 1 and row n.
//
// How:
//
// Connectivity is delegated to a unionfind.DisjointSet over the n² flat
// indices. There are no virtual top/bottom nodes. Instead every site carries
// a Status bit set (StatusOpen, StatusTop, StatusBottom): row 1 starts tagged
// StatusTop, row n starts tagged StatusBottom, and each Open ORs the statuses
// of all merged groups together and stores the result at the group's root.
//
// The authoritative status of a group lives at its root. Fullness is always
// decoded through Find, never from a member's own slot, because a member's
// slot goes stale as soon as its group is merged elsewhere. A member's own
// StatusOpen bit is the only thing safe to read without Find.
//
// Backwash:
//
// Because top-reachability is a propagated flag and not a transitive link
// through a shared virtual bottom node, open bottom-row sites that are not
// joined to row 1 never report full, even after the grid percolates through
// some other column.
//
// Complexity:
//
//   - Open, IsFull: amortized O(α(n²)); IsOpen, Percolates: O(1).
//   - NumberOfOpenSites: O(n²).
//   - Memory: O(n²).
//
// Errors:
//
//   - ErrInvalidSize: New called with n <= 0.
//   - ErrOutOfRange: row or col outside [1, n].
//
// A Grid is owned by one goroutine; it is not safe for concurrent use.
package grid
