// Package bfs implements breadth-first traversal and search over a
// bounded grid, generic over the storage backing.
package bfs

import (
	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/store"
)

// entry pairs a discovered position with the direction used to reach it.
type entry struct {
	pos coord.Pos
	dir coord.Dir
}

// Iterator yields reachable positions in non-decreasing distance from
// an origin, each exactly once, paired with the direction used to
// reach it. The origin itself is not yielded.
//
// An Iterator owns its frontier queue and visited set; nothing is
// shared between instances, so concurrent iterators over the same
// grid need no coordination. It is not restartable: create a fresh
// one to iterate again.
type Iterator struct {
	dims    coord.Dims
	move    MoveFunc
	dirs    []coord.Dir
	queue   []entry
	visited store.Set
}

// NewIterator creates a breadth-first iterator from origin using the
// provided move-evaluation function. Panics if move is nil — the
// iterator is unusable without it.
func NewIterator(dims coord.Dims, origin coord.Pos, move MoveFunc, opts ...Option) *Iterator {
	if move == nil {
		panic(ErrNilMove)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	it := &Iterator{
		dims:    dims,
		move:    move,
		dirs:    o.Conn.Dirs(),
		queue:   make([]entry, 0, len(o.Conn.Dirs())),
		visited: o.newSet(dims),
	}
	// The origin is visited but never yielded; its neighbors seed the
	// frontier.
	it.visited.Insert(origin)
	it.expand(origin)

	return it
}

// Next advances the iteration and returns the next (position,
// direction) pair, or ok=false when every reachable position has been
// yielded.
//
// Each call performs at most one frontier expansion, so the traversal
// does no work beyond what the caller pulls.
func (it *Iterator) Next() (coord.Pos, coord.Dir, bool) {
	if len(it.queue) == 0 {
		return coord.Pos{}, 0, false
	}
	e := it.queue[0]
	it.queue = it.queue[1:]
	it.expand(e.pos)

	return e.pos, e.dir, true
}

// expand evaluates every configured direction from p and enqueues the
// not-yet-visited successors, marking them visited immediately so each
// position is enqueued (and therefore yielded) at most once.
func (it *Iterator) expand(p coord.Pos) {
	for _, d := range it.dirs {
		next, ok := it.move(p, d)
		if !ok || it.visited.Contains(next) {
			continue
		}
		it.visited.Insert(next)
		it.queue = append(it.queue, entry{pos: next, dir: d})
	}
}

// Search runs a breadth-first search from origin, stopping at the
// first yielded position satisfying goal, and reconstructs the
// direction path from the came-from map built during traversal.
//
// When the origin itself satisfies goal, the Result carries an empty
// path. Returns ErrNilMove or ErrNilGoal for nil functions, and
// ErrUnreachable when the frontier exhausts without a match.
//
// The returned path has the fewest possible moves under the
// configured direction set.
func Search(dims coord.Dims, origin coord.Pos, move MoveFunc, goal GoalFunc, opts ...Option) (*Result, error) {
	if move == nil {
		return nil, ErrNilMove
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	camefrom := o.newDirMap(dims)
	if goal(origin) {
		return &Result{Goal: origin, Path: []coord.Dir{}, CameFrom: camefrom}, nil
	}

	it := NewIterator(dims, origin, move, opts...)
	for {
		pos, dir, ok := it.Next()
		if !ok {
			return nil, ErrUnreachable
		}
		camefrom.Put(pos, dir)
		if !goal(pos) {
			continue
		}
		path, err := store.CameFromPath(camefrom, dims, origin, pos)
		if err != nil {
			return nil, err
		}
		return &Result{Goal: pos, Path: path, CameFrom: camefrom}, nil
	}
}
