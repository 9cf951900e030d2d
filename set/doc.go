// Package set implements a Van Emde Boas tree: an ordered set of integer
// keys drawn from a fixed universe {0, .., U-1}, with Add, Del, Has and
// Successor in O(log log U) time at the price of O(U) space.
//
// Structure
// ---------
//
// A node covering U keys partitions them into blocks of B consecutive
// keys, where B is roughly sqrt(U). Each block is a child node over the
// universe {0, .., B-1}, holding the offsets of the keys that fall into
// it. A summary child over the block indices records which blocks are
// non-empty, so locating the next occupied block is itself a Successor
// query one level up:
//
//	             [ U=1024  min=3  max=990 ]
//	                |
//	                +-- summary: node over {0..31},
//	                |   member i <=> block i non-empty
//	                |
//	    +-----------+-----------+--- ... ---+
//	    |           |           |           |
//	[ block 0 ] [ block 1 ] [ block 2 ] [ block 31 ]    each over {0..31}
//
// Universes below 32 stop recursing: a leaf keeps its members in a single
// 32-bit mask and answers queries by scanning it.
//
// The recursion is what buys the double-log bound. A query at a node
// either finishes in its own block or restarts as a summary query, never
// both, and each hop roughly halves the number of bits in play:
// 1024 -> 32 -> 5.
//
// Minimum out of band
// -------------------
//
// The smallest member of a node is cached in the node itself and is NOT
// stored in its blocks. Inserting into an empty node just sets that
// cache, so the recursive call chain stops there. Combined with the
// swap-on-insert step (a key below the current minimum trades places with
// it and the old minimum descends instead), every Add and Del does real
// work in at most one child per level. The maximum is cached as well, but
// other than the minimum it also lives down in the blocks, unless the
// node holds a single key and min == max.
//
// Split policies
// --------------
//
// A power-of-two universe 2^k splits with shift/mask arithmetic:
// B = 2^(k/2), and the high/low parts of a key are literally its bit
// halves. Any other universe takes B = ceil(sqrt(U)) and splits with
// div/mod. The policy is picked per node at construction; both produce
// the same set semantics and differ only in the cost of the key
// arithmetic.
//
// The whole structure for a universe is allocated eagerly by NewSet, so
// the operations themselves never allocate and never touch the heap.
package set
