// Package critbit implements an ordered set of integer keys as a
// crit-bit binary trie with per-branch min/max caching. It has no fixed
// universe and every operation is O(w) for w = 31 key bits, which makes
// it the natural comparison baseline for the Van Emde Boas set.
package critbit

import "fmt"

// None is reported when a query has no answer.
const None = -1

// maxKey bounds the keys: they are branched on as 31-bit values.
const maxKey = 1<<31 - 1

// Ref holds either a leaf Key or a Node pointer
type Ref struct {
	Key  int
	node *Node
}

// Node is an inner branch. Besides the crit bit it caches the smallest
// and largest key stored below it, which is what keeps ordered queries
// (Min, Max, Successor) correct under path compression.
type Node struct {
	child [2]Ref
	// bit contains the single crit bit the children differ at
	bit      uint32
	min, max int
}

type Set struct {
	size int
	root Ref
}

// min returns the smallest key reachable through the ref.
func (r Ref) min() int {
	if r.node != nil {
		return r.node.min
	}
	return r.Key
}

// max returns the largest key reachable through the ref.
func (r Ref) max() int {
	if r.node != nil {
		return r.node.max
	}
	return r.Key
}

// dir calculates the direction for the given key
func (n *Node) dir(key int) byte {
	if uint32(key)&n.bit != 0 {
		return 1
	}
	return 0
}

func check(key int) {
	if key < 0 || key > maxKey {
		panic(fmt.Sprintf("critbit: key %d outside [0, 2^31)", key))
	}
}

func InitSet(set *Set, keys ...int) *Set {
	*set = Set{}
	for _, key := range keys {
		set.Add(key)
	}
	return set
}

func NewSet(keys ...int) *Set {
	return InitSet(&Set{}, keys...)
}

// Len returns the number of keys in the tree.
func (t *Set) Len() int {
	return t.size
}

func (t *Set) Empty() bool {
	return t.size == 0
}

// Has reports whether the key is a member.
func (t *Set) Has(key int) bool {
	check(key)
	// test for empty tree
	if t.Empty() {
		return false
	}
	// walk for best member
	p := t.root
	for p.node != nil {
		// try next node
		p = p.node.child[p.node.dir(key)]
	}
	return p.Key == key
}

// Add inserts the key and reports whether it was absent.
func (t *Set) Add(key int) bool {
	check(key)
	// test for empty tree
	if t.Empty() {
		t.root.Key = key
		t.size++
		return true
	}
	// walk for best member
	p := &t.root
	for p.node != nil {
		// try next node
		p = &p.node.child[p.node.dir(key)]
	}
	if p.Key == key {
		// key exists
		return false
	}
	// find the differing bit
	bit := uint32(p.Key ^ key)
	bit |= bit >> 1
	bit |= bit >> 2
	bit |= bit >> 4
	bit |= bit >> 8
	bit |= bit >> 16
	bit = bit &^ (bit >> 1)
	var ndir byte
	if uint32(p.Key)&bit != 0 {
		ndir++
	}
	// insert new node
	nn := Node{bit: bit}
	nn.child[1-ndir].Key = key

	// walk for best insertion node, refreshing bounds along the way
	wp := &t.root
	for wp.node != nil {
		n := wp.node
		if n.bit < bit {
			break
		}
		if key < n.min {
			n.min = key
		}
		if key > n.max {
			n.max = key
		}
		// try next node
		wp = &n.child[n.dir(key)]
	}
	nn.child[ndir] = *wp
	nn.min = nn.child[0].min()
	nn.max = nn.child[1].max()
	wp.node = &nn
	wp.Key = 0
	t.size++

	return true
}

// Del removes the key and reports whether it was a member.
func (t *Set) Del(key int) bool {
	check(key)
	// test for empty tree
	if t.Empty() {
		return false
	}
	// walk for best member, remembering the path
	var (
		dir   byte
		wp    *Ref
		path  [32]*Node
		depth int
	)
	p := &t.root
	for p.node != nil {
		wp = p
		path[depth] = p.node
		depth++
		// try next node
		dir = p.node.dir(key)
		p = &p.node.child[dir]
	}
	// check for membership
	if p.Key != key {
		return false
	}
	// delete from the tree
	t.size--
	if wp == nil {
		t.root = Ref{}
		return true
	}
	*wp = wp.node.child[1-dir]
	// restore bounds on the surviving path
	for i := depth - 2; i >= 0; i-- {
		n := path[i]
		n.min = n.child[0].min()
		n.max = n.child[1].max()
	}
	return true
}

// Successor returns the smallest member strictly greater than key, or
// None when no member qualifies. key == None is accepted and yields the
// minimum.
func (t *Set) Successor(key int) int {
	if t.Empty() {
		return None
	}
	if key == None {
		return t.root.min()
	}
	check(key)
	return successor(t.root, key)
}

// successor routes on cached bounds: every key under child[0] precedes
// every key under child[1], so two comparisons pick the subtree.
func successor(p Ref, key int) int {
	if p.node == nil {
		if p.Key > key {
			return p.Key
		}
		return None
	}
	n := p.node
	if key >= n.max {
		return None
	}
	if key < n.min {
		return n.min
	}
	m := n.child[1].min()
	if key >= m {
		return successor(n.child[1], key)
	}
	if key < n.child[0].max() {
		return successor(n.child[0], key)
	}
	return m
}

// Min returns the smallest member, or None when the set is empty.
func (t *Set) Min() int {
	if t.Empty() {
		return None
	}
	return t.root.min()
}

// Max returns the largest member, or None when the set is empty.
func (t *Set) Max() int {
	if t.Empty() {
		return None
	}
	return t.root.max()
}

// Iter calls the handler for every member in ascending order.
// The handler can continue the process by returning true or abort with false.
func (t *Set) Iter(handler func(int) bool) bool {
	// test empty tree
	if t.Empty() {
		return true
	}
	return t.iterate(t.root, handler)
}

// iterate calls the key handler or traverses both node children unless aborted.
func (t *Set) iterate(p Ref, h func(int) bool) bool {
	if p.node != nil {
		return t.iterate(p.node.child[0], h) && t.iterate(p.node.child[1], h)
	}
	return h(p.Key)
}

// Keys returns all members, in a sorted order.
func (t *Set) Keys() []int {
	keys := make([]int, 0, t.size)

	// empty tree?
	if t.Empty() {
		return keys
	}

	// Walk the tree without function recursion
	to_visit := make([]*Ref, 1)

	p := &t.root
	to_visit[0] = p

	for l := len(to_visit); l > 0; l = len(to_visit) {
		// shift the list to get the first item
		p = to_visit[l-1]
		to_visit = to_visit[:l-1]

		// leaf?
		if p.node == nil {
			keys = append(keys, p.Key)
		} else {
			// unshift the children and continue
			to_visit = append(to_visit, &p.node.child[1], &p.node.child[0])
		}
	}
	return keys
}
