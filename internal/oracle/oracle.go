// Package oracle provides a deliberately simple reference set: one
// presence bit per key and linear-scan queries. The real structures are
// cross-checked against it in tests and in the vebbench check command.
package oracle

import (
	"github.com/hideo55/go-popcount"
)

// None is reported when a query has no answer.
const None = -1

// Table is a flat presence table over the universe {0, .., U-1}.
type Table struct {
	universe int
	words    []uint64
}

// New returns an empty table covering {0, .., universe-1}.
func New(universe int) *Table {
	return &Table{
		universe: universe,
		words:    make([]uint64, (universe+63)>>6),
	}
}

func (t *Table) Universe() int {
	return t.universe
}

// Add marks x as a member. Adding a member again is a no-op.
func (t *Table) Add(x int) {
	t.words[x>>6] |= 1 << uint(x&0x3F)
}

// Del clears x. Deleting a non-member is a no-op.
func (t *Table) Del(x int) {
	t.words[x>>6] &^= 1 << uint(x&0x3F)
}

func (t *Table) Has(x int) bool {
	return t.words[x>>6]>>uint(x&0x3F)&1 == 1
}

// Len counts the members by summing word popcounts.
func (t *Table) Len() int {
	var cnt uint64
	for _, w := range t.words {
		cnt += popcount.Count(w)
	}
	return int(cnt)
}

// Successor scans for the smallest member strictly greater than x.
// x may be None, which yields the minimum.
func (t *Table) Successor(x int) int {
	for i := x + 1; i < t.universe; i++ {
		if t.Has(i) {
			return i
		}
	}
	return None
}

// Min returns the smallest member, or None when the table is empty.
func (t *Table) Min() int {
	return t.Successor(None)
}

// Max scans downwards for the greatest member, or None when empty.
func (t *Table) Max() int {
	for i := t.universe - 1; i >= 0; i-- {
		if t.Has(i) {
			return i
		}
	}
	return None
}
