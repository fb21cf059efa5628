package coord

import "fmt"

// Dir is a relative movement of one square: an edge between two
// adjacent grid positions, while Pos represents the nodes.
//
// The eight values are laid out clockwise starting at N, so rotation
// and inversion are simple modular arithmetic on the underlying index.
type Dir uint8

// The eight directions, clockwise from north.
const (
	N Dir = iota // up
	NE
	E // right
	SE
	S // down
	SW
	W // left
	NW

	// NumDirs is the number of possible directions.
	NumDirs = 8
)

// deltas maps each Dir to its unit (dx,dy) movement vector.
// y grows downward, as in screen/grid coordinates.
var deltas = [NumDirs][2]int{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

var cardinalNames = [NumDirs]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var arrowNames = [NumDirs]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Valid reports whether d is one of the eight defined directions.
func (d Dir) Valid() bool { return d < NumDirs }

// check panics when d is outside the fixed direction set. A Dir that
// was not produced from the package constants indicates a defect in
// the calling code, not a recoverable input condition.
func (d Dir) check() {
	if !d.Valid() {
		panic(fmt.Sprintf("coord: invalid Dir(%d)", uint8(d)))
	}
}

// Delta returns the unit movement vector (dx, dy) of d,
// with dx, dy ∈ {-1, 0, 1} and (dx,dy) ≠ (0,0).
func (d Dir) Delta() (dx, dy int) {
	d.check()
	return deltas[d][0], deltas[d][1]
}

// Flip returns the 180°-rotated direction: N→S, NE→SW, E→W, etc.
// Flip is its own inverse, and stepping with d then Flip(d) returns
// to the starting position whenever both steps stay in bounds.
func (d Dir) Flip() Dir {
	d.check()
	return (d + NumDirs/2) % NumDirs
}

// Rotate rotates d clockwise by the angle of `by`: each step of `by`
// is 45°. Rotate(N) is the identity; Rotate(S) equals Flip.
func (d Dir) Rotate(by Dir) Dir {
	d.check()
	by.check()
	return (d + by) % NumDirs
}

// IsDiagonal reports whether d is one of the diagonals NE, SE, SW, NW.
func (d Dir) IsDiagonal() bool {
	d.check()
	return d%2 == 1
}

// String returns the cardinal name of the direction: "N", "NE", ….
func (d Dir) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dir(%d)", uint8(d))
	}
	return cardinalNames[d]
}

// Arrow returns the UTF-8 arrow corresponding to the direction,
// useful for compact path dumps.
func (d Dir) Arrow() string {
	d.check()
	return arrowNames[d]
}

// Connectivity selects the direction set used for neighbor expansion:
// orthogonal only (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	dirs4 = []Dir{N, E, S, W}
	dirs8 = []Dir{N, NE, E, SE, S, SW, W, NW}
)

// Dirs returns the directions of the set in clockwise order.
// The returned slice is shared and must not be mutated.
func (c Connectivity) Dirs() []Dir {
	if c == Conn8 {
		return dirs8
	}
	return dirs4
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}
	return "Conn4"
}
