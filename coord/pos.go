package coord

import "fmt"

// Pos is an immutable position inside a fixed-size grid.
//
// A Pos can only be obtained from a Dims (Pos, MustPos, PosAt, Move,
// Iter, …), which guarantees it lies inside that grid. The zero Pos is
// (0,0), the origin, which is valid in every grid.
//
// Pos is comparable and may be used as a map key.
type Pos struct {
	x, y int
}

// X returns the column coordinate.
func (p Pos) X() int { return p.x }

// Y returns the row coordinate.
func (p Pos) Y() int { return p.y }

// XY returns both coordinates as a tuple.
func (p Pos) XY() (x, y int) { return p.x, p.y }

// Cmp compares two positions in row-major order: first by y, then by
// x. It returns -1 when p sorts before q, 0 when equal, +1 otherwise.
// This is the total order used for deterministic iteration.
func (p Pos) Cmp(q Pos) int {
	switch {
	case p.y != q.y && p.y < q.y:
		return -1
	case p.y != q.y:
		return 1
	case p.x < q.x:
		return -1
	case p.x > q.x:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer as "(x,y)".
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }
