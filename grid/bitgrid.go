package grid

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/katalvlaran/sqgrid/coord"
)

// wordBits is the width of a Bitgrid storage word. An implementation
// detail: only get/set/iteration correctness is part of the contract.
const wordBits = 64

// Bitgrid is a space-optimized grid of booleans: one bit per position,
// packed into uint64 words.
//
// Get and Set are O(1) bit arithmetic. IterTrue and IterFalse are full
// O(W×H) scans regardless of the number of set bits — Bitgrid trades
// iteration time for an 8× (vs. []bool) space reduction.
type Bitgrid struct {
	dims  coord.Dims
	words []uint64
}

// NewBitgrid returns an all-false Bitgrid for the given dimensions.
// Complexity: O(W×H / 64) time and memory.
func NewBitgrid(dims coord.Dims) *Bitgrid {
	return &Bitgrid{
		dims:  dims,
		words: make([]uint64, (dims.Size()+wordBits-1)/wordBits),
	}
}

// BitgridFromPositions returns a Bitgrid with exactly the given
// positions set to true.
func BitgridFromPositions(dims coord.Dims, positions []coord.Pos) *Bitgrid {
	b := NewBitgrid(dims)
	for _, p := range positions {
		b.Set(p, true)
	}
	return b
}

// BitgridFromBools returns a Bitgrid initialized from values, which
// must hold exactly width×height booleans in row-major order.
// Returns ErrSizeMismatch otherwise.
func BitgridFromBools(dims coord.Dims, values []bool) (*Bitgrid, error) {
	if len(values) != dims.Size() {
		return nil, fmt.Errorf("%w: got %d values for %s (%d cells)",
			ErrSizeMismatch, len(values), dims, dims.Size())
	}
	b := NewBitgrid(dims)
	for i, v := range values {
		if v {
			b.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}
	return b, nil
}

// Dims returns the grid configuration this container was built for.
func (b *Bitgrid) Dims() coord.Dims { return b.dims }

// wordBit maps a linear index to its word index and bit mask.
func wordBit(i int) (word int, bit uint64) {
	return i / wordBits, 1 << (i % wordBits)
}

// Get returns the bit at p. Complexity: O(1).
func (b *Bitgrid) Get(p coord.Pos) bool {
	word, bit := wordBit(b.dims.Index(p))
	return b.words[word]&bit != 0
}

// Set stores v at p. Complexity: O(1).
func (b *Bitgrid) Set(p coord.Pos, v bool) {
	word, bit := wordBit(b.dims.Index(p))
	if v {
		b.words[word] |= bit
	} else {
		b.words[word] &^= bit
	}
}

// SetAll sets every position to true. Complexity: O(W×H / 64).
func (b *Bitgrid) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.clearTail()
}

// Clear sets every position to false. Complexity: O(W×H / 64).
func (b *Bitgrid) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// clearTail zeroes the bits of the last word beyond Size, keeping
// Count exact after SetAll.
func (b *Bitgrid) clearTail() {
	if tail := b.dims.Size() % wordBits; tail != 0 {
		b.words[len(b.words)-1] &= (1 << tail) - 1
	}
}

// Count returns the number of true entries. Complexity: O(W×H / 64).
func (b *Bitgrid) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IterTrue returns a finite, restartable sequence of the positions
// whose bit is true, in row-major order.
//
// Complexity: O(W×H) per full iteration, independent of the number of
// true entries — a deliberate trade-off for the packed representation.
func (b *Bitgrid) IterTrue() iter.Seq[coord.Pos] { return b.iterate(true) }

// IterFalse returns a finite, restartable sequence of the positions
// whose bit is false, in row-major order.
//
// Complexity: O(W×H) per full iteration; see IterTrue.
func (b *Bitgrid) IterFalse() iter.Seq[coord.Pos] { return b.iterate(false) }

func (b *Bitgrid) iterate(want bool) iter.Seq[coord.Pos] {
	return func(yield func(coord.Pos) bool) {
		size := b.dims.Size()
		for i := 0; i < size; i++ {
			word, bit := wordBit(i)
			if (b.words[word]&bit != 0) != want {
				continue
			}
			p, _ := b.dims.PosAt(i)
			if !yield(p) {
				return
			}
		}
	}
}
