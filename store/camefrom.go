package store

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sqgrid/coord"
)

// Sentinel errors for came-from path reconstruction.
var (
	// ErrUnreachable is returned when dest has no came-from entry,
	// i.e. the search never reached it.
	ErrUnreachable = errors.New("store: destination not present in came-from map")

	// ErrInvalidMove is returned when following the recorded
	// directions steps outside the grid or onto a position without an
	// entry — the map is not a valid came-from tree for orig.
	ErrInvalidMove = errors.New("store: came-from map walks off the tree")

	// ErrLoop is returned when the walk exceeds the position count,
	// which proves the came-from map contains a cycle.
	ErrLoop = errors.New("store: loop detected in came-from map")
)

// CameFromPath reconstructs the origin→destination direction path from
// a came-from map: for each reached position, m records the direction
// that was used to reach it.
//
// The walk starts at dest, and repeatedly steps backward by the flip
// of the recorded direction until it arrives at orig; the collected
// directions, reversed, are the path. The walk is bounded by
// W×H+1 steps; exceeding that proves a cycle and yields ErrLoop.
//
// Complexity: O(path length) time, O(path length) memory.
func CameFromPath(m Map[coord.Dir], dims coord.Dims, orig, dest coord.Pos) ([]coord.Dir, error) {
	if orig == dest {
		return []coord.Dir{}, nil
	}
	if _, ok := m.Get(dest); !ok {
		return nil, ErrUnreachable
	}

	path := make([]coord.Dir, 0, coord.Manhattan(orig, dest))
	pos := dest
	// Maximum iterations is the number of positions.
	maxiter := dims.Size() + 1
	for pos != orig {
		dir, ok := m.Get(pos)
		if !ok {
			return nil, fmt.Errorf("%w: no entry at %s", ErrInvalidMove, pos)
		}
		path = append(path, dir)
		prev, ok := dims.Move(pos, dir.Flip())
		if !ok {
			return nil, fmt.Errorf("%w: %s + %s leaves %s", ErrInvalidMove, pos, dir.Flip(), dims)
		}
		pos = prev
		maxiter--
		if maxiter == 0 {
			// More steps than positions exist: definitely a cycle.
			return nil, ErrLoop
		}
	}

	// Collected dest→orig; reverse into orig→dest order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
