package patricia

type nodeKind uint8

const (
	kindLeaf   nodeKind = 1
	kindBranch nodeKind = 2
)

// node is one case of the trie variant. A nil *node is the empty trie.
//
// For a leaf, prefix holds the full key and value the binding; mask is zero
// and both children are nil. For a branch, mask is the single branching bit,
// prefix the shared bits above it, and the children are never nil.
//
// Nodes are immutable once constructed. Unchanged subtrees are shared by
// pointer across trie versions, which is the whole basis of persistence here.
type node[K Uint, V any] struct {
	kind   nodeKind
	prefix K
	mask   K
	value  V
	left   *node[K, V]
	right  *node[K, V]
}

func newLeaf[K Uint, V any](key K, value V) *node[K, V] {
	return &node[K, V]{kind: kindLeaf, prefix: key, value: value}
}

func newBranch[K Uint, V any](prefix, mask K, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{kind: kindBranch, prefix: prefix, mask: mask, left: left, right: right}
}

// branch rebuilds a Branch from possibly-empty children, hoisting the
// surviving child when the other is empty so that no branch ever carries an
// empty arm.
func branch[K Uint, V any](prefix, mask K, left, right *node[K, V]) *node[K, V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return newBranch(prefix, mask, left, right)
}

// join fans two tries with unrelated prefixes out of a new branch at their
// branching bit, ordering the children by which side has a zero there.
func join[K Uint, V any](p0 K, t0 *node[K, V], p1 K, t1 *node[K, V]) *node[K, V] {
	m := BranchingBit(p0, p1)
	p := Mask(p0, m)
	if ZeroBit(p0, m) {
		return newBranch(p, m, t0, t1)
	}
	return newBranch(p, m, t1, t0)
}
