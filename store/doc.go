// Package store abstracts position-keyed storage for the sqgrid
// search engine.
//
// What
//
//   - Map[V]: a mapping from coord.Pos to V — Get, Put, and
//     deterministic iteration over entries.
//   - Set: a set of coord.Pos — Contains, Insert, and deterministic
//     iteration.
//   - Dense satisfactions (DenseMap, DenseSet) backed by grid.Grid and
//     grid.Bitgrid: O(1) access, O(W×H) memory, optimal for bounded
//     grids that get mostly explored.
//   - Sparse satisfactions (SparseMap, SparseSet) backed by Go maps:
//     O(positions touched) memory, better for very large or mostly
//     unvisited domains.
//   - CameFromPath: reconstruct an origin→destination direction path
//     from a came-from Map[coord.Dir] built during a search.
//
// Why
//
//	The search packages (bfs, astar, ucs) are written exclusively
//	against Map and Set, so the same algorithm runs over dense or
//	sparse backing without change. Using a dense backing is not always
//	feasible depending on the dimensions of the grid.
package store
