// Package ucs implements uniform-cost search (Dijkstra's algorithm
// restricted to the grid model) over a bounded grid.
//
// UCS finds the lowest-total-cost path from an origin to a fixed
// destination, where the caller supplies a move-cost function
// (position, direction) → (next position, cost, ok): ok=false means
// the move is blocked, and cost is the non-negative price of entering
// the next position. Positions are expanded in order of accumulated
// cost (the A* discipline with h ≡ 0), so the first finalization of
// the destination is optimal.
//
// Costs must be non-negative: a negative cost returned by the move
// function aborts the search with ErrNegativeCost rather than silently
// mis-ordering the frontier. Zero costs are accepted as-is.
//
// Complexity (n = W×H positions, d directions)
//
//   - Time:  O(n×d log n) with lazy decrease-key (stale duplicates
//     skipped once a position is finalized).
//   - Memory: O(n) dense (default) or O(positions explored) sparse.
//
// Determinism
//
//	Equal-cost frontier entries pop in insertion order, and directions
//	expand in fixed clockwise order, so the returned path is
//	reproducible across runs.
//
// Usage
//
//	dims := coord.MustDims(3, 3)
//	moveCost := func(p coord.Pos, d coord.Dir) (coord.Pos, int, bool) {
//	    next, ok := dims.Move(p, d)
//	    return next, 1, ok
//	}
//	res, err := ucs.Search(dims, moveCost, dims.First(), dims.Last())
//	// res.Path is [E E S S] (cost 4) under 4-way movement
package ucs
