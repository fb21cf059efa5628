// Package sqgrid is a toolkit for deterministic, allocation-minimal
// pathfinding and flood-fill over fixed-size rectangular grids —
// puzzle solvers, game boards, maze and robot navigation.
//
// 🚀 What is sqgrid?
//
//	A small, focused library that brings together:
//		• Bounded coordinates: out-of-grid positions are unconstructible
//		• Directions: 8-way (or 4-way) unit movement vectors with inversion & rotation
//		• Dense containers: Grid[V] arrays and bit-packed Bitgrid, indexed by position
//		• Storage capability: search works over dense or sparse backings alike
//		• Search: lazy breadth-first iteration, BFS-to-goal, A*, uniform-cost search
//
// ✨ Why choose sqgrid?
//
//   - Deterministic – reproducible visit orders and tie-breaks, always
//   - Total – every search terminates on the finite grid domain
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – bring your own move/cost functions and storage backends
//
// Everything is organized under six subpackages:
//
//	coord/ — Dims (grid configuration), Pos (bounded position), Dir & Connectivity
//	grid/  — dense Grid[V] and bit-packed Bitgrid containers
//	store/ — position-keyed Map/Set capability + came-from path reconstruction
//	bfs/   — breadth-first iterator and goal-directed search
//	astar/ — A* search with per-connectivity admissible heuristics
//	ucs/   — uniform-cost (Dijkstra) search with caller-supplied costs
//
// Quick ASCII example:
//
//	(0,0) ── SE ──▶ (1,1) ── SE ──▶ (2,2)
//
// a path is an ordered sequence of directions from origin to destination.
//
// Dive into the package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/sqgrid
package sqgrid
