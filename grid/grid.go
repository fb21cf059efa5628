// Package grid implements dense position-indexed containers
// for github.com/katalvlaran/sqgrid.
package grid

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/sqgrid/coord"
)

// ErrSizeMismatch is returned when a container is constructed from a
// source whose length differs from width×height.
var ErrSizeMismatch = errors.New("grid: source length does not match grid size")

// Grid is a dense map from position to V: a fixed-length array of
// exactly width×height entries, one per linear row-major index.
//
// Get and Set are O(1); memory is O(W×H) regardless of how many
// entries the caller touched.
type Grid[V any] struct {
	dims  coord.Dims
	cells []V
}

// New returns a Grid with every entry set to fill.
// Complexity: O(W×H) time and memory.
func New[V any](dims coord.Dims, fill V) *Grid[V] {
	g := &Grid[V]{dims: dims, cells: make([]V, dims.Size())}
	g.Fill(fill)
	return g
}

// FromValues returns a Grid backed by a copy of values, which must
// hold exactly width×height entries in row-major order.
// Returns ErrSizeMismatch otherwise.
func FromValues[V any](dims coord.Dims, values []V) (*Grid[V], error) {
	if len(values) != dims.Size() {
		return nil, fmt.Errorf("%w: got %d values for %s (%d cells)",
			ErrSizeMismatch, len(values), dims, dims.Size())
	}
	// Copy to prevent external mutation, as NewGridGraph does for rows.
	cells := make([]V, len(values))
	copy(cells, values)
	return &Grid[V]{dims: dims, cells: cells}, nil
}

// Dims returns the grid configuration this container was built for.
func (g *Grid[V]) Dims() coord.Dims { return g.dims }

// Get returns the value stored at p. Complexity: O(1).
func (g *Grid[V]) Get(p coord.Pos) V { return g.cells[g.dims.Index(p)] }

// Set stores v at p. Complexity: O(1).
func (g *Grid[V]) Set(p coord.Pos, v V) { g.cells[g.dims.Index(p)] = v }

// Fill sets every entry to v. Complexity: O(W×H).
func (g *Grid[V]) Fill(v V) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Line returns the backing slice of row y, left to right. The slice
// aliases the grid: writes through it are writes to the grid.
// Panics when y is not in [0, height).
func (g *Grid[V]) Line(y int) []V {
	if y < 0 || y >= g.dims.Height() {
		panic(fmt.Sprintf("grid: row %d not in [0,%d)", y, g.dims.Height()))
	}
	w := g.dims.Width()
	return g.cells[y*w : (y+1)*w]
}

// Column returns a copy of column x, top to bottom.
// Panics when x is not in [0, width).
func (g *Grid[V]) Column(x int) []V {
	if x < 0 || x >= g.dims.Width() {
		panic(fmt.Sprintf("grid: column %d not in [0,%d)", x, g.dims.Width()))
	}
	col := make([]V, g.dims.Height())
	for y := range col {
		col[y] = g.cells[y*g.dims.Width()+x]
	}
	return col
}

// Values returns the backing slice in row-major order, for bulk
// operations such as reversal or wholesale transforms. The slice
// aliases the grid.
func (g *Grid[V]) Values() []V { return g.cells }

// All returns a finite, restartable sequence of (position, value)
// pairs in row-major order.
func (g *Grid[V]) All() iter.Seq2[coord.Pos, V] {
	return func(yield func(coord.Pos, V) bool) {
		for i, v := range g.cells {
			p, _ := g.dims.PosAt(i)
			if !yield(p, v) {
				return
			}
		}
	}
}
