package coord_test

import (
	"testing"

	"github.com/katalvlaran/sqgrid/coord"
)

// TestDir_Deltas verifies every direction maps to a distinct unit
// vector.
func TestDir_Deltas(t *testing.T) {
	seen := make(map[[2]int]coord.Dir, coord.NumDirs)
	for _, d := range coord.Conn8.Dirs() {
		dx, dy := d.Delta()
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Errorf("%v delta = (%d,%d); want unit non-zero vector", d, dx, dy)
		}
		if prev, dup := seen[[2]int{dx, dy}]; dup {
			t.Errorf("%v and %v share delta (%d,%d)", prev, d, dx, dy)
		}
		seen[[2]int{dx, dy}] = d
	}
	if dx, dy := coord.N.Delta(); dx != 0 || dy != -1 {
		t.Errorf("N delta = (%d,%d); want (0,-1)", dx, dy)
	}
	if dx, dy := coord.SE.Delta(); dx != 1 || dy != 1 {
		t.Errorf("SE delta = (%d,%d); want (1,1)", dx, dy)
	}
}

// TestDir_Flip verifies 180° inversion pairs and involution.
func TestDir_Flip(t *testing.T) {
	want := map[coord.Dir]coord.Dir{
		coord.N: coord.S, coord.NE: coord.SW, coord.E: coord.W, coord.SE: coord.NW,
		coord.S: coord.N, coord.SW: coord.NE, coord.W: coord.E, coord.NW: coord.SE,
	}
	for d, flipped := range want {
		if got := d.Flip(); got != flipped {
			t.Errorf("%v.Flip() = %v; want %v", d, got, flipped)
		}
		if got := d.Flip().Flip(); got != d {
			t.Errorf("%v.Flip().Flip() = %v; want identity", d, got)
		}
		dx, dy := d.Delta()
		fx, fy := d.Flip().Delta()
		if dx+fx != 0 || dy+fy != 0 {
			t.Errorf("%v and its flip do not cancel: (%d,%d)+(%d,%d)", d, dx, dy, fx, fy)
		}
	}
}

// TestDir_Rotate covers the rotation table.
func TestDir_Rotate(t *testing.T) {
	cases := []struct {
		d, by, want coord.Dir
	}{
		{coord.N, coord.N, coord.N},   // identity
		{coord.N, coord.NE, coord.NE}, // 45° cw
		{coord.N, coord.E, coord.E},   // 90° cw
		{coord.E, coord.E, coord.S},   // 90° cw from E
		{coord.W, coord.S, coord.E},   // rotate by S == Flip
		{coord.NW, coord.NE, coord.N}, // wraps around
		{coord.SE, coord.SE, coord.W}, // diagonal by diagonal
	}
	for _, tc := range cases {
		if got := tc.d.Rotate(tc.by); got != tc.want {
			t.Errorf("%v.Rotate(%v) = %v; want %v", tc.d, tc.by, got, tc.want)
		}
	}
	for _, d := range coord.Conn8.Dirs() {
		if d.Rotate(coord.S) != d.Flip() {
			t.Errorf("%v.Rotate(S) != %v.Flip()", d, d)
		}
	}
}

// TestDir_IsDiagonal verifies the diagonal predicate.
func TestDir_IsDiagonal(t *testing.T) {
	diagonals := map[coord.Dir]bool{
		coord.NE: true, coord.SE: true, coord.SW: true, coord.NW: true,
	}
	for _, d := range coord.Conn8.Dirs() {
		if got := d.IsDiagonal(); got != diagonals[d] {
			t.Errorf("%v.IsDiagonal() = %v; want %v", d, got, diagonals[d])
		}
	}
}

// TestDir_Names covers String and Arrow.
func TestDir_Names(t *testing.T) {
	if coord.N.String() != "N" || coord.SW.String() != "SW" {
		t.Errorf("cardinal names wrong: %v %v", coord.N, coord.SW)
	}
	if coord.E.Arrow() != "→" || coord.NW.Arrow() != "↖" {
		t.Errorf("arrows wrong: %q %q", coord.E.Arrow(), coord.NW.Arrow())
	}
	if got := coord.Dir(12).String(); got != "Dir(12)" {
		t.Errorf("invalid Dir String = %q", got)
	}
}

// TestDir_InvalidPanics verifies an out-of-set Dir aborts: it is a
// library-usage defect, not a recoverable input.
func TestDir_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Delta on invalid Dir should panic")
		}
	}()
	coord.Dir(9).Delta()
}

// TestConnectivity_Dirs verifies the clockwise direction sets.
func TestConnectivity_Dirs(t *testing.T) {
	got4 := coord.Conn4.Dirs()
	want4 := []coord.Dir{coord.N, coord.E, coord.S, coord.W}
	if len(got4) != len(want4) {
		t.Fatalf("Conn4 has %d dirs; want 4", len(got4))
	}
	for i := range want4 {
		if got4[i] != want4[i] {
			t.Errorf("Conn4.Dirs()[%d] = %v; want %v", i, got4[i], want4[i])
		}
	}
	got8 := coord.Conn8.Dirs()
	if len(got8) != coord.NumDirs {
		t.Fatalf("Conn8 has %d dirs; want %d", len(got8), coord.NumDirs)
	}
	for i := 1; i < len(got8); i++ {
		if got8[i] != got8[i-1]+1 {
			t.Errorf("Conn8.Dirs() not clockwise at %d: %v after %v", i, got8[i], got8[i-1])
		}
	}
}

// TestPos_Cmp verifies the total row-major order.
func TestPos_Cmp(t *testing.T) {
	d := coord.MustDims(3, 3)
	cases := []struct {
		a, b coord.Pos
		want int
	}{
		{d.MustPos(0, 0), d.MustPos(0, 0), 0},
		{d.MustPos(2, 0), d.MustPos(0, 1), -1},
		{d.MustPos(0, 1), d.MustPos(2, 0), 1},
		{d.MustPos(1, 1), d.MustPos(2, 1), -1},
	}
	for _, tc := range cases {
		if got := tc.a.Cmp(tc.b); got != tc.want {
			t.Errorf("%v.Cmp(%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
