// Package unionfind provides a disjoint-set (union-find) structure over a
// fixed range of integer elements [0, n).
//
// What:
//
//   - Find returns the canonical root of an element's group (path compressing).
//   - Union merges two groups, attaching the smaller tree under the larger root.
//   - Connected, Size and Count answer membership and cardinality queries.
//
// Why:
//
//   - Near-constant-time connectivity for grids, clustering and MST builders.
//
// Complexity:
//
//   - Find, Union: amortized O(α(n)), Memory: O(n).
//
// Indices are not re-validated: passing an element outside [0, n) panics the
// same way an out-of-range slice index does. Callers own bounds checking.
//
// A DisjointSet is not safe for concurrent use.
package unionfind
