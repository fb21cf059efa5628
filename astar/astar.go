// Package astar implements A* shortest-move-path search over a
// bounded grid, generic over the storage backing.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/store"
)

// Search finds a fewest-move path from orig to dest using A*.
//
// Returns the path as an ordered sequence of directions (empty when
// orig == dest), ErrNilMove for a nil move function, or
// ErrUnreachable when the frontier exhausts before reaching dest.
func Search(dims coord.Dims, move MoveFunc, orig, dest coord.Pos, opts ...Option) ([]coord.Dir, error) {
	if move == nil {
		return nil, ErrNilMove
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		dims:     dims,
		move:     move,
		dirs:     o.Conn.Dirs(),
		dest:     dest,
		heur:     o.heuristic(),
		gcost:    o.newCostMap(dims),
		camefrom: o.newDirMap(dims),
		final:    o.newSet(dims),
	}
	r.init(orig)
	if !r.process() {
		return nil, ErrUnreachable
	}

	return store.CameFromPath(r.camefrom, dims, orig, dest)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	dims     coord.Dims
	move     MoveFunc
	dirs     []coord.Dir
	dest     coord.Pos
	heur     func(a, b coord.Pos) int
	gcost    store.Map[int]       // position → best-known move count from origin
	camefrom store.Map[coord.Dir] // position → direction used to reach it
	final    store.Set            // positions whose g-cost is finalized
	pq       frontier             // min-heap on f = g + h
	seq      int                  // insertion counter for deterministic tie-break
}

// init seeds the frontier with the origin at g=0.
func (r *runner) init(orig coord.Pos) {
	r.gcost.Put(orig, 0)
	heap.Init(&r.pq)
	r.push(orig, r.heur(orig, r.dest))
}

// push inserts a frontier entry, stamping it with the next insertion
// sequence number so equal-f entries pop FIFO.
func (r *runner) push(p coord.Pos, f int) {
	heap.Push(&r.pq, &node{pos: p, f: f, seq: r.seq})
	r.seq++
}

// process pops frontier entries in f order until dest is finalized or
// the frontier exhausts. Reports whether dest was reached.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*node)
		// Skip stale duplicates left behind by lazy decrease-key.
		if r.final.Contains(item.pos) {
			continue
		}
		r.final.Insert(item.pos)
		if item.pos == r.dest {
			return true
		}
		r.relax(item.pos)
	}

	return false
}

// relax evaluates every configured direction from p and records any
// strictly cheaper tentative cost found for a successor, pushing a new
// frontier entry. Assumes gcost[p] is finalized.
func (r *runner) relax(p coord.Pos) {
	g, _ := r.gcost.Get(p)
	for _, d := range r.dirs {
		next, ok := r.move(p, d)
		if !ok {
			continue
		}
		newg := g + 1
		// Strict < avoids duplicate pushes on equal-cost rediscovery.
		if cur, seen := r.gcost.Get(next); seen && newg >= cur {
			continue
		}
		r.gcost.Put(next, newg)
		r.camefrom.Put(next, d)
		r.push(next, newg+r.heur(next, r.dest))
	}
}

// node is a frontier entry: a position with its f priority and
// insertion sequence number.
type node struct {
	pos coord.Pos
	f   int
	seq int
}

// frontier is a min-heap of *node ordered by f ascending, breaking
// ties by insertion order. Stale entries are skipped on pop via the
// finalized set ("lazy decrease-key").
type frontier []*node

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence for determinism.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *node.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the minimum element.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
