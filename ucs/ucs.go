// Package ucs implements lowest-total-cost path search over a bounded
// grid, generic over the storage backing.
package ucs

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/store"
)

// Search finds a lowest-total-cost path from orig to dest.
//
// Returns ErrNilMove for a nil move-cost function, ErrNegativeCost if
// the function ever yields a negative cost, and ErrUnreachable when
// the frontier exhausts before reaching dest.
func Search(dims coord.Dims, move MoveCostFunc, orig, dest coord.Pos, opts ...Option) (*Result, error) {
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
		cost:     o.newCostMap(dims),
		camefrom: o.newDirMap(dims),
		final:    o.newSet(dims),
	}
	r.init(orig)
	reached, err := r.process()
	if err != nil {
		return nil, err
	}
	if !reached {
		return nil, ErrUnreachable
	}

	path, err := store.CameFromPath(r.camefrom, dims, orig, dest)
	if err != nil {
		return nil, err
	}
	total, _ := r.cost.Get(dest)

	return &Result{Path: path, Cost: total}, nil
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	dims     coord.Dims
	move     MoveCostFunc
	dirs     []coord.Dir
	dest     coord.Pos
	cost     store.Map[int]       // position → best-known total cost from origin
	camefrom store.Map[coord.Dir] // position → direction used to reach it
	final    store.Set            // positions whose cost is finalized
	pq       frontier             // min-heap on accumulated cost
	seq      int                  // insertion counter for deterministic tie-break
}

// init seeds the frontier with the origin at cost 0.
func (r *runner) init(orig coord.Pos) {
	r.cost.Put(orig, 0)
	heap.Init(&r.pq)
	r.push(orig, 0)
}

// push inserts a frontier entry, stamping it with the next insertion
// sequence number so equal-cost entries pop FIFO.
func (r *runner) push(p coord.Pos, c int) {
	heap.Push(&r.pq, &node{pos: p, cost: c, seq: r.seq})
	r.seq++
}

// process pops frontier entries in cost order until dest is finalized
// or the frontier exhausts. Reports whether dest was reached.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*node)
		// Skip stale duplicates left behind by lazy decrease-key.
		if r.final.Contains(item.pos) {
			continue
		}
		r.final.Insert(item.pos)
		if item.pos == r.dest {
			return true, nil
		}
		if err := r.relax(item.pos); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax evaluates every configured direction from p and records any
// strictly cheaper tentative cost found for a successor, pushing a new
// frontier entry. Assumes cost[p] is finalized.
func (r *runner) relax(p coord.Pos) error {
	g, _ := r.cost.Get(p)
	for _, d := range r.dirs {
		next, c, ok := r.move(p, d)
		if !ok {
			continue
		}
		if c < 0 {
			return fmt.Errorf("%w: %d entering %s via %s", ErrNegativeCost, c, next, d)
		}
		newcost := g + c
		// Strict < avoids duplicate pushes on equal-cost rediscovery.
		if cur, seen := r.cost.Get(next); seen && newcost >= cur {
			continue
		}
		r.cost.Put(next, newcost)
		r.camefrom.Put(next, d)
		r.push(next, newcost)
	}

	return nil
}

// node is a frontier entry: a position with its accumulated cost and
// insertion sequence number.
type node struct {
	pos  coord.Pos
	cost int
	seq  int
}

// frontier is a min-heap of *node ordered by cost ascending, breaking
// ties by insertion order. Stale entries are skipped on pop via the
// finalized set ("lazy decrease-key").
type frontier []*node

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by cost, then by insertion sequence for determinism.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
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
