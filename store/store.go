// Package store defines the position-keyed storage capability and its
// dense and sparse satisfactions.
package store

import (
	"iter"
	"slices"

	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/grid"
)

// Map is a mapping from position to V. It is the keyed-store
// capability the search engine depends on for cost and came-from
// bookkeeping.
//
// All returns entries in row-major position order for every
// implementation in this package, so iteration is reproducible.
type Map[V any] interface {
	// Get returns the value recorded for p, and whether one exists.
	Get(p coord.Pos) (V, bool)
	// Put records v for p, overwriting any previous entry.
	Put(p coord.Pos, v V)
	// All iterates all (position, value) entries.
	All() iter.Seq2[coord.Pos, V]
}

// Set is a set of positions. It is the capability the search engine
// depends on for visited tracking.
type Set interface {
	// Contains reports whether p is in the set.
	Contains(p coord.Pos) bool
	// Insert adds p to the set.
	Insert(p coord.Pos)
	// All iterates the member positions.
	All() iter.Seq[coord.Pos]
}

// DenseMap satisfies Map with O(1) access and O(W×H) memory: a
// grid.Grid of values plus a grid.Bitgrid tracking which entries have
// been written.
type DenseMap[V any] struct {
	values  *grid.Grid[V]
	present *grid.Bitgrid
}

// NewDenseMap returns an empty dense Map for the given dimensions.
func NewDenseMap[V any](dims coord.Dims) *DenseMap[V] {
	var zero V
	return &DenseMap[V]{
		values:  grid.New(dims, zero),
		present: grid.NewBitgrid(dims),
	}
}

// Get returns the value recorded for p, and whether one exists.
func (m *DenseMap[V]) Get(p coord.Pos) (V, bool) {
	if !m.present.Get(p) {
		var zero V
		return zero, false
	}
	return m.values.Get(p), true
}

// Put records v for p.
func (m *DenseMap[V]) Put(p coord.Pos, v V) {
	m.values.Set(p, v)
	m.present.Set(p, true)
}

// All iterates present entries in row-major order. O(W×H) per full
// iteration regardless of the number of entries.
func (m *DenseMap[V]) All() iter.Seq2[coord.Pos, V] {
	return func(yield func(coord.Pos, V) bool) {
		for p := range m.present.IterTrue() {
			if !yield(p, m.values.Get(p)) {
				return
			}
		}
	}
}

// DenseSet satisfies Set with a grid.Bitgrid: O(1) access, one bit per
// position.
type DenseSet struct {
	bits *grid.Bitgrid
}

// NewDenseSet returns an empty dense Set for the given dimensions.
func NewDenseSet(dims coord.Dims) *DenseSet {
	return &DenseSet{bits: grid.NewBitgrid(dims)}
}

// Contains reports whether p is in the set.
func (s *DenseSet) Contains(p coord.Pos) bool { return s.bits.Get(p) }

// Insert adds p to the set.
func (s *DenseSet) Insert(p coord.Pos) { s.bits.Set(p, true) }

// All iterates members in row-major order; O(W×H) per full iteration.
func (s *DenseSet) All() iter.Seq[coord.Pos] { return s.bits.IterTrue() }

// SparseMap satisfies Map with a Go map: memory proportional to the
// number of entries, for grids too large (or too sparsely explored)
// for dense backing.
type SparseMap[V any] map[coord.Pos]V

// NewSparseMap returns an empty sparse Map.
func NewSparseMap[V any]() SparseMap[V] { return SparseMap[V]{} }

// Get returns the value recorded for p, and whether one exists.
func (m SparseMap[V]) Get(p coord.Pos) (V, bool) {
	v, ok := m[p]
	return v, ok
}

// Put records v for p.
func (m SparseMap[V]) Put(p coord.Pos, v V) { m[p] = v }

// All iterates entries in row-major order. The keys are sorted on
// each call (O(n log n)) to keep iteration deterministic.
func (m SparseMap[V]) All() iter.Seq2[coord.Pos, V] {
	return func(yield func(coord.Pos, V) bool) {
		for _, p := range sortedKeys(m) {
			if !yield(p, m[p]) {
				return
			}
		}
	}
}

// SparseSet satisfies Set with a Go map; memory proportional to the
// number of members.
type SparseSet map[coord.Pos]struct{}

// NewSparseSet returns an empty sparse Set.
func NewSparseSet() SparseSet { return SparseSet{} }

// Contains reports whether p is in the set.
func (s SparseSet) Contains(p coord.Pos) bool {
	_, ok := s[p]
	return ok
}

// Insert adds p to the set.
func (s SparseSet) Insert(p coord.Pos) { s[p] = struct{}{} }

// All iterates members in row-major order; keys are sorted per call.
func (s SparseSet) All() iter.Seq[coord.Pos] {
	return func(yield func(coord.Pos) bool) {
		for _, p := range sortedKeys(s) {
			if !yield(p) {
				return
			}
		}
	}
}

// sortedKeys returns the keys of m in row-major order.
func sortedKeys[V any](m map[coord.Pos]V) []coord.Pos {
	keys := make([]coord.Pos, 0, len(m))
	for p := range m {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, coord.Pos.Cmp)
	return keys
}
