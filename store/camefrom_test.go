package store_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/store"
)

// dirMaps instantiates every Map[coord.Dir] backing for a dims.
func dirMaps(d coord.Dims) map[string]store.Map[coord.Dir] {
	return map[string]store.Map[coord.Dir]{
		"dense":  store.NewDenseMap[coord.Dir](d),
		"sparse": store.NewSparseMap[coord.Dir](),
	}
}

// TestCameFromPath_Chain reconstructs a straight two-step path.
func TestCameFromPath_Chain(t *testing.T) {
	d := coord.MustDims(3, 3)
	for name, m := range dirMaps(d) {
		t.Run(name, func(t *testing.T) {
			// (0,0) -SE-> (1,1) -SE-> (2,2): each entry records the
			// direction used to reach the position.
			m.Put(d.MustPos(1, 1), coord.SE)
			m.Put(d.Last(), coord.SE)

			path, err := store.CameFromPath(m, d, d.First(), d.Last())
			if err != nil {
				t.Fatalf("CameFromPath: %v", err)
			}
			want := []coord.Dir{coord.SE, coord.SE}
			if len(path) != len(want) {
				t.Fatalf("path = %v; want %v", path, want)
			}
			for i := range want {
				if path[i] != want[i] {
					t.Errorf("path[%d] = %v; want %v", i, path[i], want[i])
				}
			}
		})
	}
}

// TestCameFromPath_SamePos verifies the degenerate origin==dest case.
func TestCameFromPath_SamePos(t *testing.T) {
	d := coord.MustDims(3, 3)
	m := store.NewSparseMap[coord.Dir]()
	path, err := store.CameFromPath(m, d, d.Center(), d.Center())
	if err != nil {
		t.Fatalf("CameFromPath: %v", err)
	}
	if len(path) != 0 {
		t.Errorf("path = %v; want empty", path)
	}
}

// TestCameFromPath_Unreachable verifies a missing destination entry.
func TestCameFromPath_Unreachable(t *testing.T) {
	d := coord.MustDims(3, 3)
	m := store.NewDenseMap[coord.Dir](d)
	if _, err := store.CameFromPath(m, d, d.First(), d.Last()); !errors.Is(err, store.ErrUnreachable) {
		t.Errorf("error = %v; want ErrUnreachable", err)
	}
}

// TestCameFromPath_BrokenTree verifies a walk onto a position without
// an entry fails.
func TestCameFromPath_BrokenTree(t *testing.T) {
	d := coord.MustDims(3, 3)
	m := store.NewSparseMap[coord.Dir]()
	// Dest has an entry, but its predecessor (1,1) has none.
	m.Put(d.Last(), coord.SE)
	if _, err := store.CameFromPath(m, d, d.First(), d.Last()); !errors.Is(err, store.ErrInvalidMove) {
		t.Errorf("error = %v; want ErrInvalidMove", err)
	}
}

// TestCameFromPath_Loop verifies cycle detection: two positions
// pointing at each other never reach the origin.
func TestCameFromPath_Loop(t *testing.T) {
	d := coord.MustDims(3, 3)
	m := store.NewSparseMap[coord.Dir]()
	a, b := d.MustPos(1, 1), d.MustPos(2, 1)
	m.Put(b, coord.E) // b reached from a by E
	m.Put(a, coord.W) // a reached from b by W — a cycle
	if _, err := store.CameFromPath(m, d, d.First(), b); !errors.Is(err, store.ErrLoop) {
		t.Errorf("error = %v; want ErrLoop", err)
	}
}
