// Package ucs provides tunable options and error definitions for
// uniform-cost search over a bounded grid.
package ucs

import (
	"errors"

	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/store"
)

// Sentinel errors for UCS execution.
var (
	// ErrNilMove is returned when a nil move-cost function is passed.
	ErrNilMove = errors.New("ucs: move-cost function is nil")

	// ErrNegativeCost is returned when the move-cost function yields a
	// negative cost, which would break the frontier ordering.
	ErrNegativeCost = errors.New("ucs: negative move cost")

	// ErrUnreachable is returned when the frontier exhausts before
	// reaching the destination.
	ErrUnreachable = errors.New("ucs: destination unreachable")
)

// MoveCostFunc evaluates a single move and its price: given a position
// and a direction, it returns the resulting position, the non-negative
// cost of entering it, and true — or ok=false when the move is
// blocked.
type MoveCostFunc func(p coord.Pos, dir coord.Dir) (next coord.Pos, cost int, ok bool)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing UCS execution.
type Options struct {
	// Conn chooses 4- or 8-directional neighbor expansion.
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

// newCostMap returns the cost backing selected by the options.
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

// Result holds the outcome of a uniform-cost search:
//   - Path: directions from origin to destination; empty when they
//     coincide.
//   - Cost: the total accumulated cost of the path.
type Result struct {
	Path []coord.Dir
	Cost int
}
