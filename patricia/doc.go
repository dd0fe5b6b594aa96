package patricia

/*

# Patricia primitives for persistent integer-keyed maps

This package provides a persistent (immutable) big-endian Patricia trie, a
compressed binary radix tree, over fixed-width unsigned integer keys, plus the
bit-level helpers its branching discipline is built from.

It follows the same "functional primitives" style as the rest of this family:

- small, composable functions
- index/bit arithmetic where possible
- pure operations over immutable values

## Shape

A trie value is one of three cases:

- Empty: no keys (represented by a nil root, shared by every empty trie)
- Leaf(key, value): exactly one binding
- Branch(prefix, mask, left, right): an interior fan-out

`mask` is a power of two naming a single bit position. `prefix` holds the bits
every key below the branch agrees on, with the bit at `mask` and everything
below it cleared. Keys with a zero at `mask` live in `left`, keys with a one in
`right`; in unsigned key order, everything in `left` precedes everything in
`right`.

The trie is compressed: a branch never has an empty child, and every branch
fans out at the highest bit where its two sides first disagree. Depth is
therefore bounded by the key width and by the sparsity of the stored key set,
not by the raw bit count.

## Persistence

No operation mutates a node. An update rebuilds only the path from the root to
the touched leaf and shares every other subtree by pointer with the previous
version, so updates cost O(key width) allocations and any number of versions
coexist cheaply. Because nodes are immutable, any number of goroutines may
hold and traverse any number of versions concurrently without locks; writers
never race because each produces its own new version.

## Ordering

Traversal order is branching-bit order, which for unsigned keys coincides with
ascending numeric order. The leftmost leaf is the minimum key and the
rightmost the maximum, which is what lets layered structures (the LRU cache's
recency index) find their oldest entry in O(key width).

*/
