package set

import (
	"math"
	"math/bits"
)

// split decides how a node decomposes a key into a block index (high part)
// and an in-block offset (low part). A power-of-two universe is split with
// pure shift/mask arithmetic, any other universe divides by the block
// size. The policy is fixed per node at construction; the tree operations
// are policy-agnostic.
type split struct {
	size  int  // block size B
	shift uint // log2(B), meaningful only for the power-of-two policy
	pow2  bool
}

// newSplit picks the policy for a universe and returns it together with
// the number of blocks it produces. Power-of-two universes take
// B = 2^(bits/2) so the summary covers exactly universe/B blocks; all
// others take B = ceil(sqrt(universe)) and the smallest block count whose
// product covers the universe.
func newSplit(universe int) (split, int) {
	if universe&(universe-1) == 0 {
		lg := uint(bits.Len(uint(universe)) - 1)
		half := lg >> 1
		return split{size: 1 << half, shift: half, pow2: true}, 1 << (lg - half)
	}
	b := int(math.Sqrt(float64(universe)))
	for b*b < universe {
		b++
	}
	return split{size: b}, (universe + b - 1) / b
}

// high extracts the block index of x.
func (s split) high(x int) int {
	if s.pow2 {
		return x >> s.shift
	}
	return x / s.size
}

// low extracts the offset of x inside its block.
func (s split) low(x int) int {
	if s.pow2 {
		return x & (s.size - 1)
	}
	return x % s.size
}

// index recombines a block index and an offset into a key.
func (s split) index(i, j int) int {
	if s.pow2 {
		return i<<s.shift | j
	}
	return i*s.size + j
}
