// Package astar provides tunable options and error definitions for A*
// search over a bounded grid.
package astar

import (
	"errors"

	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/store"
)

// Sentinel errors for A* execution.
var (
	// ErrNilMove is returned when a nil move function is passed.
	ErrNilMove = errors.New("astar: move function is nil")

	// ErrUnreachable is returned when the frontier exhausts before
	// reaching the destination.
	ErrUnreachable = errors.New("astar: destination unreachable")
)

// MoveFunc evaluates a single move: given a position and a direction,
// it returns the resulting position and true, or ok=false when the
// move is blocked. coord.Dims.Move is the unobstructed default.
type MoveFunc func(p coord.Pos, dir coord.Dir) (coord.Pos, bool)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing A* execution.
type Options struct {
	// Conn chooses 4- or 8-directional neighbor expansion; it also
	// selects the heuristic (Manhattan for Conn4, Chebyshev for Conn8)
	// so the estimate stays admissible for the movement model.
	Conn coord.Connectivity

	// Sparse selects map-backed cost/came-from storage instead of the
	// dense default.
	Sparse bool
}

// DefaultOptions returns Options with 4-way connectivity and dense
// storage.
func DefaultOptions() Options {
	return Options{Conn: coord.Conn4, Sparse: false}
}

// WithConnectivity selects the direction set used for expansion.
func WithConnectivity(c coord.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithDiagonals is shorthand for WithConnectivity(coord.Conn8).
func WithDiagonals() Option {
	return func(o *Options) { o.Conn = coord.Conn8 }
}

// WithSparseStorage selects sparse (map-backed) internal storage.
func WithSparseStorage() Option {
	return func(o *Options) { o.Sparse = true }
}

// heuristic returns the admissible remaining-distance estimate for the
// configured direction set.
func (o Options) heuristic() func(a, b coord.Pos) int {
	if o.Conn == coord.Conn8 {
		return coord.Chebyshev
	}
	return coord.Manhattan
}

// newCostMap returns the g-cost backing selected by the options.
func (o Options) newCostMap(dims coord.Dims) store.Map[int] {
	if o.Sparse {
		return store.NewSparseMap[int]()
	}
	return store.NewDenseMap[int](dims)
}

// newDirMap returns the came-from backing selected by the options.
func (o Options) newDirMap(dims coord.Dims) store.Map[coord.Dir] {
	if o.Sparse {
		return store.NewSparseMap[coord.Dir]()
	}
	return store.NewDenseMap[coord.Dir](dims)
}

// newSet returns the finalized-set backing selected by the options.
func (o Options) newSet(dims coord.Dims) store.Set {
	if o.Sparse {
		return store.NewSparseSet()
	}
	return store.NewDenseSet(dims)
}
