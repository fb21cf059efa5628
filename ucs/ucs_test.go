package ucs_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqgrid/bfs"
	"github.com/katalvlaran/sqgrid/coord"
	"github.com/katalvlaran/sqgrid/ucs"
)

// unitCost wraps dims.Move with a constant cost of 1 per move.
func unitCost(d coord.Dims) ucs.MoveCostFunc {
	return func(p coord.Pos, dir coord.Dir) (coord.Pos, int, bool) {
		next, ok := d.Move(p, dir)
		return next, 1, ok
	}
}

// TestSearch_NilMove verifies nil-function rejection.
func TestSearch_NilMove(t *testing.T) {
	d := coord.MustDims(3, 3)
	if _, err := ucs.Search(d, nil, d.First(), d.Last()); !errors.Is(err, ucs.ErrNilMove) {
		t.Errorf("error = %v; want ErrNilMove", err)
	}
}

// TestSearch_RoughTerrain verifies the cheaper longer route wins: a
// 5×2 grid whose top row is rough in the middle, so the detour along
// the bottom row costs less than the direct line.
func TestSearch_RoughTerrain(t *testing.T) {
	d := coord.MustDims(5, 2)
	rough := map[coord.Pos]bool{
		d.MustPos(1, 0): true,
		d.MustPos(2, 0): true,
		d.MustPos(3, 0): true,
	}
	moveCost := func(p coord.Pos, dir coord.Dir) (coord.Pos, int, bool) {
		next, ok := d.Move(p, dir)
		if !ok {
			return coord.Pos{}, 0, false
		}
		if rough[next] {
			return next, 2, true
		}
		return next, 1, true
	}
	orig, dest := d.First(), d.MustPos(4, 0)

	res, err := ucs.Search(d, moveCost, orig, dest)
	require.NoError(t, err)
	// Direct E E E E costs 2+2+2+1 = 7; the detour S E E E E N costs 6.
	require.Equal(t, 6, res.Cost)
	require.Equal(t, []coord.Dir{coord.S, coord.E, coord.E, coord.E, coord.E, coord.N}, res.Path)

	// BFS takes the shortest-hop route (4 moves) regardless of cost;
	// UCS accepted two extra moves to save one cost unit.
	bres, err := bfs.Search(d, d.First(),
		func(p coord.Pos, dir coord.Dir) (coord.Pos, bool) {
			next, _, ok := moveCost(p, dir)
			return next, ok
		},
		func(p coord.Pos) bool { return p == dest },
	)
	require.NoError(t, err)
	require.Equal(t, 4, bres.Dist())
	require.Greater(t, len(res.Path), bres.Dist())
}

// TestSearch_UnitCostMatchesBFS cross-checks UCS against BFS: with a
// uniform cost of 1 the lowest-cost path has the fewest hops.
func TestSearch_UnitCostMatchesBFS(t *testing.T) {
	d := coord.MustDims(6, 4)
	for _, conn := range []coord.Connectivity{coord.Conn4, coord.Conn8} {
		t.Run(conn.String(), func(t *testing.T) {
			dest := d.MustPos(5, 2)
			res, err := ucs.Search(d, unitCost(d), d.First(), dest, ucs.WithConnectivity(conn))
			require.NoError(t, err)

			bres, err := bfs.Search(d, d.First(), d.Move,
				func(p coord.Pos) bool { return p == dest },
				bfs.WithConnectivity(conn),
			)
			require.NoError(t, err)
			require.Equal(t, bres.Dist(), len(res.Path))
			require.Equal(t, len(res.Path), res.Cost)
		})
	}
}

// TestSearch_SamePos verifies origin == destination yields an empty
// zero-cost path.
func TestSearch_SamePos(t *testing.T) {
	d := coord.MustDims(3, 3)
	res, err := ucs.Search(d, unitCost(d), d.Center(), d.Center())
	require.NoError(t, err)
	require.Empty(t, res.Path)
	require.Equal(t, 0, res.Cost)
}

// TestSearch_Wall covers the partitioned grid.
func TestSearch_Wall(t *testing.T) {
	d := coord.MustDims(3, 3)
	moveCost := func(p coord.Pos, dir coord.Dir) (coord.Pos, int, bool) {
		next, ok := d.Move(p, dir)
		if !ok || (p.X() == 0) != (next.X() == 0) {
			return coord.Pos{}, 0, false
		}
		return next, 1, true
	}
	_, err := ucs.Search(d, moveCost, d.First(), d.Last())
	require.ErrorIs(t, err, ucs.ErrUnreachable)
}

// TestSearch_NegativeCost verifies a negative cost aborts the search.
func TestSearch_NegativeCost(t *testing.T) {
	d := coord.MustDims(3, 3)
	moveCost := func(p coord.Pos, dir coord.Dir) (coord.Pos, int, bool) {
		next, ok := d.Move(p, dir)
		if dir == coord.S {
			return next, -1, ok
		}
		return next, 1, ok
	}
	_, err := ucs.Search(d, moveCost, d.First(), d.Last())
	require.ErrorIs(t, err, ucs.ErrNegativeCost)
}

// TestSearch_ZeroCost verifies zero-cost moves are accepted as-is:
// free travel along the top row makes the far corner cost only the
// final descent.
func TestSearch_ZeroCost(t *testing.T) {
	d := coord.MustDims(4, 2)
	moveCost := func(p coord.Pos, dir coord.Dir) (coord.Pos, int, bool) {
		next, ok := d.Move(p, dir)
		if !ok {
			return coord.Pos{}, 0, false
		}
		if next.Y() == 0 {
			return next, 0, true
		}
		return next, 1, true
	}
	res, err := ucs.Search(d, moveCost, d.First(), d.MustPos(3, 1))
	require.NoError(t, err)
	require.Equal(t, 1, res.Cost)
	require.Len(t, res.Path, 4) // three free E moves, one paid S
}

// TestSearch_SparseParity verifies dense and sparse storage return the
// same result.
func TestSearch_SparseParity(t *testing.T) {
	d := coord.MustDims(6, 6)
	dense, err := ucs.Search(d, unitCost(d), d.First(), d.Last())
	require.NoError(t, err)
	sparse, err := ucs.Search(d, unitCost(d), d.First(), d.Last(), ucs.WithSparseStorage())
	require.NoError(t, err)
	require.Equal(t, dense.Cost, sparse.Cost)
	require.True(t, slices.Equal(dense.Path, sparse.Path))
}
