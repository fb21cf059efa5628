// Package coord defines grid dimensions, bounded positions and
// movement directions for github.com/katalvlaran/sqgrid.
package coord

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for coordinate construction.
var (
	// ErrOutOfBounds is returned when a coordinate or linear index
	// falls outside the configured dimensions.
	ErrOutOfBounds = errors.New("coord: position out of bounds")

	// ErrBadDims is returned when grid dimensions are not positive.
	ErrBadDims = errors.New("coord: width and height must be positive")
)

// Dims is an immutable grid configuration: a width and a height fixed
// at construction. It acts as the coordinate space — the only way to
// obtain a Pos is through a Dims, which validates bounds on every
// construction boundary.
//
// The zero Dims is invalid; use NewDims or MustDims.
type Dims struct {
	w, h int
}

// NewDims returns the configuration of a width×height grid.
// Returns ErrBadDims unless both dimensions are ≥ 1.
func NewDims(width, height int) (Dims, error) {
	if width < 1 || height < 1 {
		return Dims{}, fmt.Errorf("%w: %dx%d", ErrBadDims, width, height)
	}
	return Dims{w: width, h: height}, nil
}

// MustDims is NewDims that panics on invalid dimensions.
// Intended for constant-like configurations known good at compile time.
func MustDims(width, height int) Dims {
	d, err := NewDims(width, height)
	if err != nil {
		panic(err)
	}
	return d
}

// Width returns the configured width (number of columns).
func (d Dims) Width() int { return d.w }

// Height returns the configured height (number of rows).
func (d Dims) Height() int { return d.h }

// Size returns the total number of positions, width×height.
func (d Dims) Size() int { return d.w * d.h }

// String implements fmt.Stringer as "WxH".
func (d Dims) String() string { return fmt.Sprintf("%dx%d", d.w, d.h) }

// Contains reports whether (x,y) lies within the grid boundaries.
func (d Dims) Contains(x, y int) bool {
	return x >= 0 && x < d.w && y >= 0 && y < d.h
}

// Pos constructs the position (x,y).
// Returns ErrOutOfBounds if (x,y) is outside [0,width)×[0,height).
func (d Dims) Pos(x, y int) (Pos, error) {
	if !d.Contains(x, y) {
		return Pos{}, fmt.Errorf("%w: (%d,%d) not in %s", ErrOutOfBounds, x, y, d)
	}
	return Pos{x: x, y: y}, nil
}

// MustPos is Pos that panics on out-of-bounds coordinates.
func (d Dims) MustPos(x, y int) Pos {
	p, err := d.Pos(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Index returns the linear row-major index of p: y×width + x.
// Together with PosAt it forms a bijection over [0, Size()).
func (d Dims) Index(p Pos) int { return p.y*d.w + p.x }

// PosAt is the inverse of Index: it returns the position whose linear
// index is i. Returns ErrOutOfBounds when i is not in [0, Size()).
func (d Dims) PosAt(i int) (Pos, error) {
	if i < 0 || i >= d.Size() {
		return Pos{}, fmt.Errorf("%w: index %d not in [0,%d)", ErrOutOfBounds, i, d.Size())
	}
	return Pos{x: i % d.w, y: i / d.w}, nil
}

// First returns the first position in row-major order: (0,0), the
// top-left corner, also known as the origin.
func (d Dims) First() Pos { return Pos{} }

// Last returns the last position in row-major order: the bottom-right
// corner (width-1, height-1).
func (d Dims) Last() Pos { return Pos{x: d.w - 1, y: d.h - 1} }

// Center returns the approximate center position (width/2, height/2).
func (d Dims) Center() Pos { return Pos{x: d.w / 2, y: d.h / 2} }

// TopRight returns the top-right corner (width-1, 0).
func (d Dims) TopRight() Pos { return Pos{x: d.w - 1} }

// BottomLeft returns the bottom-left corner (0, height-1).
func (d Dims) BottomLeft() Pos { return Pos{y: d.h - 1} }

// IsCorner reports whether p is one of the four grid corners.
func (d Dims) IsCorner(p Pos) bool {
	return (p.x == 0 || p.x == d.w-1) && (p.y == 0 || p.y == d.h-1)
}

// IsSide reports whether p lies on the border of the grid.
// Corners are sides too.
func (d Dims) IsSide(p Pos) bool {
	return p.x == 0 || p.x == d.w-1 || p.y == 0 || p.y == d.h-1
}

// FlipH mirrors p horizontally: (x,y) → (width-1-x, y).
func (d Dims) FlipH(p Pos) Pos { return Pos{x: d.w - 1 - p.x, y: p.y} }

// FlipV mirrors p vertically: (x,y) → (x, height-1-y).
func (d Dims) FlipV(p Pos) Pos { return Pos{x: p.x, y: d.h - 1 - p.y} }

// Move returns the position one step from p in direction dir, and true,
// when the step stays inside the grid. When the step would leave the
// grid it returns the zero Pos and false; the move is blocked by the
// boundary, never wrapped or clamped.
//
// Move is the default move-evaluation function for the search
// packages on an unobstructed grid.
func (d Dims) Move(p Pos, dir Dir) (Pos, bool) {
	dx, dy := dir.Delta()
	x, y := p.x+dx, p.y+dy
	if !d.Contains(x, y) {
		return Pos{}, false
	}
	return Pos{x: x, y: y}, true
}

// Iter returns a finite, restartable sequence of all positions in
// row-major order: (0,0), (1,0), …, (width-1,height-1).
func (d Dims) Iter() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for y := 0; y < d.h; y++ {
			for x := 0; x < d.w; x++ {
				if !yield(Pos{x: x, y: y}) {
					return
				}
			}
		}
	}
}

// Manhattan returns the L1 distance |ax-bx| + |ay-by| between two
// positions. It is an admissible heuristic for 4-way movement.
func Manhattan(a, b Pos) int {
	return abs(a.x-b.x) + abs(a.y-b.y)
}

// Chebyshev returns the L∞ distance max(|ax-bx|, |ay-by|) between two
// positions. It is an admissible heuristic for 8-way movement.
func Chebyshev(a, b Pos) int {
	dx, dy := abs(a.x-b.x), abs(a.y-b.y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
