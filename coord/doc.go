// Package coord provides the bounded coordinate space for sqgrid:
// grid dimensions, positions, and movement directions.
//
// What
//
//   - Dims: an immutable (width, height) grid configuration. It is the
//     only factory for Pos values, so every live Pos is known to be
//     inside its grid.
//   - Pos: an immutable (x, y) position with a total row-major order
//     and a bijective mapping to a linear index in [0, width×height).
//   - Dir: one of the 8 unit movement vectors N, NE, E, SE, S, SW, W,
//     NW, with inversion (Flip) and rotation (Rotate).
//   - Connectivity: selects the 4-cardinal or full 8-way direction set.
//
// Why
//
//   - Make illegal positions and moves unrepresentable: construction
//     outside the grid fails with ErrOutOfBounds, and Move reports a
//     blocked step instead of wrapping or clamping.
//   - Give the search packages a deterministic, allocation-free
//     vocabulary for grid nodes (Pos) and edges (Dir).
//
// Determinism
//
//	Dims.Iter walks positions in row-major order; Connectivity.Dirs
//	returns directions in clockwise order. Both orders are fixed, so
//	any algorithm built on them is fully reproducible.
//
// Complexity
//
//	All operations are O(1) except Dims.Iter, which is O(W×H) in total.
package coord
