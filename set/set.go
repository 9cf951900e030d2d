package set

import "fmt"

// None is the value reported when a query has no answer: the minimum or
// maximum of an empty set, or a key with no successor.
const None = -1

// smallUniverse is the threshold below which a node keeps its members in
// a single bitmask word instead of recursing further.
const smallUniverse = 32

// node is one level of the recursive structure. The minimum of a
// non-empty node lives out of band: it is never stored in mask or in the
// blocks, only keys above it descend. The maximum is cached too but, min
// aside, is also stored below.
type node struct {
	u        int // universe size covered by this node
	min, max int
	mask     uint32 // leaf membership bits, only when u < smallUniverse
	split
	summary *node   // members are the indices of the non-empty blocks
	blocks  []*node // each covers split.size consecutive keys
}

// newNode allocates the full recursive structure for a universe eagerly,
// so the tree operations never allocate.
func newNode(u int) *node {
	n := &node{u: u, min: None, max: None}
	if u < smallUniverse {
		return n
	}
	s, blocks := newSplit(u)
	n.split = s
	n.summary = newNode(blocks)
	n.blocks = make([]*node, blocks)
	for i := range n.blocks {
		n.blocks[i] = newNode(s.size)
	}
	return n
}

// insert assumes x is in range and not yet a member.
func (n *node) insert(x int) {
	if n.min == None {
		n.min, n.max = x, x
		return
	}
	if x < n.min {
		// the new key takes the out-of-band slot, the old
		// minimum descends in its place
		x, n.min = n.min, x
	}
	if x > n.max {
		n.max = x
	}
	if n.u < smallUniverse {
		n.mask |= 1 << x
		return
	}
	i, j := n.high(x), n.low(x)
	if n.blocks[i].min == None {
		n.summary.insert(i)
	}
	n.blocks[i].insert(j)
}

// erase assumes x is in range and a member.
func (n *node) erase(x int) {
	if n.u < smallUniverse {
		if x == n.min {
			n.min = None
		}
		if x == n.max {
			n.max = n.min
		}
		n.mask &^= 1 << x
		// rescan the word: the smallest surviving bit is promoted
		// into the out-of-band minimum, the largest becomes max
		for i := 0; i < n.u; i++ {
			if n.mask>>i&1 == 1 {
				if n.min == None {
					n.min = i
					n.mask &^= 1 << i
				}
				n.max = i
			}
		}
		return
	}

	if x == n.min {
		i := n.summary.min
		if i == None {
			// x was the only member
			n.min, n.max = None, None
			return
		}
		// the minimum is not stored below; promote the next
		// smallest member and erase that one instead
		x = n.index(i, n.blocks[i].min)
		n.min = x
	}

	i := n.high(x)
	n.blocks[i].erase(n.low(x))
	if n.blocks[i].min == None {
		n.summary.erase(i)
	}

	if x == n.max {
		if i := n.summary.max; i == None {
			n.max = n.min
		} else {
			n.max = n.index(i, n.blocks[i].max)
		}
	}
}

// successor returns the smallest member strictly greater than x, or None.
func (n *node) successor(x int) int {
	if x < n.min {
		return n.min
	}
	if n.u < smallUniverse {
		for i := x + 1; i < n.u; i++ {
			if n.mask>>i&1 == 1 {
				return i
			}
		}
		return None
	}

	i, j := n.high(x), n.low(x)
	if j < n.blocks[i].max {
		// the answer sits in x's own block
		j = n.blocks[i].successor(j)
	} else {
		i = n.summary.successor(i)
		if i == None {
			return None
		}
		j = n.blocks[i].min
	}
	return n.index(i, j)
}

func (n *node) contains(x int) bool {
	if x == n.min {
		return true
	}
	if n.u < smallUniverse {
		return n.mask>>x&1 == 1
	}
	return n.blocks[n.high(x)].contains(n.low(x))
}

// reset empties the subtree. Empty nodes are skipped wholesale: an empty
// node implies every structure below it is empty as well.
func (n *node) reset() {
	if n.min == None {
		return
	}
	n.min, n.max = None, None
	n.mask = 0
	if n.summary != nil {
		for _, b := range n.blocks {
			b.reset()
		}
		n.summary.reset()
	}
}

// Set is an ordered set of integer keys drawn from the fixed universe
// {0, .., U-1} chosen at construction. Add, Del, Has and Successor all
// run in O(log log U).
//
// A Set is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Set struct {
	root *node
	size int
}

// NewSet returns an empty set over the universe {0, .., universe-1}.
// The whole recursive structure is allocated up front, so construction
// costs O(universe) time and space. Panics unless universe >= 1.
func NewSet(universe int) *Set {
	if universe < 1 {
		panic(fmt.Sprintf("set: universe %d is not positive", universe))
	}
	return &Set{root: newNode(universe)}
}

// NewPow2 returns an empty set over the universe {0, .., 2^bits - 1}.
// Every level of the resulting tree splits with shift/mask arithmetic.
// Panics unless bits is in [0, 30].
func NewPow2(bits int) *Set {
	if bits < 0 || bits > 30 {
		panic(fmt.Sprintf("set: exponent %d outside [0, 30]", bits))
	}
	return &Set{root: newNode(1 << bits)}
}

func (t *Set) check(x int) {
	if x < 0 || x >= t.root.u {
		panic(fmt.Sprintf("set: key %d outside universe [0, %d)", x, t.root.u))
	}
}

// Universe returns the number of representable keys.
func (t *Set) Universe() int {
	return t.root.u
}

// Len returns the number of members.
func (t *Set) Len() int {
	return t.size
}

func (t *Set) Empty() bool {
	return t.size == 0
}

// Has reports whether x is a member. Panics if x is outside the universe.
func (t *Set) Has(x int) bool {
	t.check(x)
	return t.root.contains(x)
}

// Add inserts x and reports whether it was absent; adding an existing
// member is a no-op. Panics if x is outside the universe.
func (t *Set) Add(x int) bool {
	t.check(x)
	if t.root.contains(x) {
		return false
	}
	t.root.insert(x)
	t.size++
	return true
}

// Del removes x and reports whether it was a member; deleting an absent
// key is a no-op. Panics if x is outside the universe.
func (t *Set) Del(x int) bool {
	t.check(x)
	if !t.root.contains(x) {
		return false
	}
	t.root.erase(x)
	t.size--
	return true
}

// Successor returns the smallest member strictly greater than x, or None
// when no member qualifies. x == None is accepted and yields the minimum.
// Panics if x is outside [None, universe).
func (t *Set) Successor(x int) int {
	if x == None {
		return t.root.min
	}
	t.check(x)
	return t.root.successor(x)
}

// Min returns the smallest member, or None when the set is empty.
func (t *Set) Min() int {
	return t.root.min
}

// Max returns the largest member, or None when the set is empty.
func (t *Set) Max() int {
	return t.root.max
}

// Keys returns all members in ascending order.
func (t *Set) Keys() []int {
	keys := make([]int, 0, t.size)
	for x := t.root.min; x != None; x = t.root.successor(x) {
		keys = append(keys, x)
	}
	return keys
}

// Clear removes every member in place, keeping the allocated structure
// around for reuse.
func (t *Set) Clear() {
	t.root.reset()
	t.size = 0
}
