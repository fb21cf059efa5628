// Package grid provides position-indexed containers for sqgrid:
// a dense generic Grid[V] and a bit-packed Bitgrid.
//
// What
//
//   - Grid[V]: a fixed-length array of exactly width×height values,
//     one per linear position index, with O(1) Get/Set and row/column
//     slice access.
//   - Bitgrid: one bit per position, packed into uint64 words, with
//     O(1) Get/Set and full-domain iteration over true or false
//     entries.
//
// Why
//
//   - O(1) state storage for flood-fill and search bookkeeping
//     (visited sets, cost maps, came-from maps) with memory bounded by
//     the grid size rather than by the number of entries.
//   - Bitgrid trades iteration time for space: IterTrue and IterFalse
//     are always O(W×H) scans regardless of how many bits are set,
//     while point access stays O(1) and the whole structure occupies
//     one bit per position.
//
// Both containers are created from a coord.Dims and are indexed by
// coord.Pos, so an index can never be out of range. They follow a
// single-writer discipline: the caller serializes mutation; reads are
// safe to share once mutation stops.
package grid
