// Package bfs provides lazy breadth-first iteration and goal-directed
// breadth-first search over a bounded grid.
//
// What
//
//   - Iterator: a pull-driven sequence of (position, direction) pairs
//     in non-decreasing distance from an origin, where the direction
//     is the one used to reach the position. Each reachable position
//     is yielded exactly once; the origin itself is not yielded.
//   - Search: wraps the iterator with a goal predicate, stops at the
//     first satisfying position, and reconstructs the direction path
//     from the came-from map built during traversal.
//
// The caller supplies the move-evaluation function
// (position, direction) → (next position, ok); returning ok=false
// means the move is blocked (by a wall, by the boundary, …). For an
// unobstructed grid, coord.Dims.Move is that function.
//
// Why
//
//   - Compute reachability, flood fill, and fewest-hop paths.
//   - The lazy iterator performs no work except when the next element
//     is pulled, so early termination costs nothing.
//
// Determinism
//
//	Directions are expanded in the fixed clockwise order of the
//	configured Connectivity, and the frontier is FIFO, so the yield
//	sequence is fully reproducible.
//
// Complexity (W×H positions, d directions)
//
//   - Time:   O(W×H × d) for a full traversal
//   - Memory: O(W×H) dense (default) or O(positions explored) sparse
//
// Usage
//
//	dims := coord.MustDims(3, 3)
//	res, err := bfs.Search(dims, dims.First(), dims.Move,
//	    func(p coord.Pos) bool { return p == dims.Last() },
//	    bfs.WithDiagonals(),
//	)
//	// res.Path is e.g. [SE SE]
package bfs
