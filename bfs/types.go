// Package bfs provides tunable options and error definitions for
// breadth-first traversal and search over a bounded grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/store"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilMove is returned when a nil move function is passed.
	ErrNilMove = errors.New("bfs: move function is nil")

	// ErrNilGoal is returned when a nil goal predicate is passed.
	ErrNilGoal = errors.New("bfs: goal predicate is nil")

	// ErrUnreachable is returned when the frontier exhausts without
	// any reachable position satisfying the goal.
	ErrUnreachable = errors.New("bfs: goal unreachable from origin")
)

// MoveFunc evaluates a single move: given a position and a direction,
// it returns the resulting position and true, or ok=false when the
// move is blocked. coord.Dims.Move is the unobstructed default.
type MoveFunc func(p coord.Pos, dir coord.Dir) (coord.Pos, bool)

// GoalFunc reports whether a position satisfies the search goal.
type GoalFunc func(p coord.Pos) bool

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing BFS execution.
type Options struct {
	// Conn chooses 4- or 8-directional neighbor expansion.
	Conn coord.Connectivity

	// Sparse selects map-backed visited/came-from storage instead of
	// the dense default. Useful when the grid is large and the
	// explored region small.
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

// newSet returns the visited-set backing selected by the options.
func (o Options) newSet(dims coord.Dims) store.Set {
	if o.Sparse {
		return store.NewSparseSet()
	}
	return store.NewDenseSet(dims)
}

// newDirMap returns the came-from backing selected by the options.
func (o Options) newDirMap(dims coord.Dims) store.Map[coord.Dir] {
	if o.Sparse {
		return store.NewSparseMap[coord.Dir]()
	}
	return store.NewDenseMap[coord.Dir](dims)
}

// Result holds the outcome of a goal-directed breadth-first search:
//   - Goal: the first yielded position satisfying the predicate.
//   - Path: directions from origin to Goal; empty when the origin
//     itself satisfies the goal.
//   - CameFrom: the direction map built during traversal, usable for
//     further path queries via store.CameFromPath.
type Result struct {
	Goal     coord.Pos
	Path     []coord.Dir
	CameFrom store.Map[coord.Dir]
}

// Dist returns the path length in moves.
func (r *Result) Dist() int { return len(r.Path) }
