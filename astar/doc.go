// Package astar implements A* search over a bounded grid.
//
// A* finds a fewest-move path from an origin to a fixed destination,
// expanding positions in order of f = g + h, where g is the number of
// moves accumulated from the origin and h is an admissible heuristic
// to the destination, chosen to match the configured direction set:
// Manhattan distance for 4-way movement, Chebyshev for 8-way. With an
// admissible h the first finalization of the destination is optimal.
//
// The caller supplies the move-evaluation function
// (position, direction) → (next position, ok); ok=false means the
// move is blocked. coord.Dims.Move is the unobstructed default.
//
// Complexity (n = W×H positions, d directions)
//
//   - Time:  O(n×d log n) — each position finalized at most once, each
//     relaxation may push a heap entry ("lazy decrease-key": stale
//     duplicates are skipped once a position is finalized).
//   - Memory: O(n) dense (default) or O(positions explored) sparse.
//
// Determinism
//
//	Equal-f frontier entries pop in insertion order, and directions
//	expand in fixed clockwise order, so the returned path is
//	reproducible across runs.
//
// Usage
//
//	dims := coord.MustDims(3, 3)
//	path, err := astar.Search(dims, dims.Move, dims.First(), dims.Last(),
//	    astar.WithDiagonals())
//	// path is [SE SE]
package astar
