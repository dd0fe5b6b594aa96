package patricia

// Merge returns a trie holding every binding from the receiver and from u.
// Where both bind the same key, u's value wins. The result shares whole
// subtrees with both operands wherever their key ranges do not interleave, so
// merging a large trie with a small one touches only the small trie's paths.
func (t Trie[K, V]) Merge(u Trie[K, V]) Trie[K, V] {
	return Trie[K, V]{root: mergeNodes(t.root, u.root)}
}

// mergeNodes pairs branches by prefix coarseness. Masks are single set bits,
// so unsigned comparison orders them by bit position: a larger mask means a
// shorter, coarser prefix. Bindings in b take precedence.
func mergeNodes[K Uint, V any](a, b *node[K, V]) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.kind == kindLeaf {
		return insertNode(b, a.prefix, a.value, false)
	}
	if b.kind == kindLeaf {
		return insertNode(a, b.prefix, b.value, true)
	}
	switch {
	case a.mask == b.mask && a.prefix == b.prefix:
		// Same branch point in both: merge arms pairwise.
		left := mergeNodes(a.left, b.left)
		right := mergeNodes(a.right, b.right)
		if left == a.left && right == a.right {
			return a
		}
		if left == b.left && right == b.right {
			return b
		}
		return newBranch(a.prefix, a.mask, left, right)
	case a.mask > b.mask && MatchPrefix(b.prefix, a.prefix, a.mask):
		// b sits wholly inside one arm of a.
		if ZeroBit(b.prefix, a.mask) {
			left := mergeNodes(a.left, b)
			if left == a.left {
				return a
			}
			return newBranch(a.prefix, a.mask, left, a.right)
		}
		right := mergeNodes(a.right, b)
		if right == a.right {
			return a
		}
		return newBranch(a.prefix, a.mask, a.left, right)
	case b.mask > a.mask && MatchPrefix(a.prefix, b.prefix, b.mask):
		// a sits wholly inside one arm of b.
		if ZeroBit(a.prefix, b.mask) {
			left := mergeNodes(a, b.left)
			if left == b.left {
				return b
			}
			return newBranch(b.prefix, b.mask, left, b.right)
		}
		right := mergeNodes(a, b.right)
		if right == b.right {
			return b
		}
		return newBranch(b.prefix, b.mask, b.left, right)
	default:
		// Prefixes disagree above both branch points.
		return join(a.prefix, a, b.prefix, b)
	}
}

// Intersect returns a trie holding the bindings of the receiver whose keys are
// also present in u. Values come from the receiver; u contributes only its key
// set. Subtrees of the receiver that survive intact are shared by reference.
func (t Trie[K, V]) Intersect(u Trie[K, V]) Trie[K, V] {
	return Trie[K, V]{root: intersectNodes(t.root, u.root)}
}

func intersectNodes[K Uint, V any](a, b *node[K, V]) *node[K, V] {
	if a == nil || b == nil {
		return nil
	}
	if a.kind == kindLeaf {
		if _, ok := lookupNode(b, a.prefix); ok {
			return a
		}
		return nil
	}
	if b.kind == kindLeaf {
		// Keep a's leaf for b's key, preserving a's value.
		return leafNode(a, b.prefix)
	}
	switch {
	case a.mask == b.mask && a.prefix == b.prefix:
		left := intersectNodes(a.left, b.left)
		right := intersectNodes(a.right, b.right)
		if left == a.left && right == a.right {
			return a
		}
		return branch(a.prefix, a.mask, left, right)
	case a.mask > b.mask && MatchPrefix(b.prefix, a.prefix, a.mask):
		if ZeroBit(b.prefix, a.mask) {
			return intersectNodes(a.left, b)
		}
		return intersectNodes(a.right, b)
	case b.mask > a.mask && MatchPrefix(a.prefix, b.prefix, b.mask):
		if ZeroBit(a.prefix, b.mask) {
			return intersectNodes(a, b.left)
		}
		return intersectNodes(a, b.right)
	default:
		return nil
	}
}

// leafNode returns the leaf of n holding k, or nil when k is absent.
func leafNode[K Uint, V any](n *node[K, V], k K) *node[K, V] {
	for n != nil {
		if n.kind == kindLeaf {
			if n.prefix == k {
				return n
			}
			return nil
		}
		if !MatchPrefix(k, n.prefix, n.mask) {
			return nil
		}
		if ZeroBit(k, n.mask) {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Difference returns a trie holding the bindings of the receiver whose keys
// are absent from u. Removing nothing from a subtree returns that subtree's
// original pointer.
func (t Trie[K, V]) Difference(u Trie[K, V]) Trie[K, V] {
	return Trie[K, V]{root: differenceNodes(t.root, u.root)}
}

func differenceNodes[K Uint, V any](a, b *node[K, V]) *node[K, V] {
	if a == nil || b == nil {
		return a
	}
	if a.kind == kindLeaf {
		if _, ok := lookupNode(b, a.prefix); ok {
			return nil
		}
		return a
	}
	if b.kind == kindLeaf {
		return removeNode(a, b.prefix)
	}
	switch {
	case a.mask == b.mask && a.prefix == b.prefix:
		left := differenceNodes(a.left, b.left)
		right := differenceNodes(a.right, b.right)
		if left == a.left && right == a.right {
			return a
		}
		return branch(a.prefix, a.mask, left, right)
	case a.mask > b.mask && MatchPrefix(b.prefix, a.prefix, a.mask):
		// b can only erase keys from one arm of a.
		if ZeroBit(b.prefix, a.mask) {
			left := differenceNodes(a.left, b)
			if left == a.left {
				return a
			}
			return branch(a.prefix, a.mask, left, a.right)
		}
		right := differenceNodes(a.right, b)
		if right == a.right {
			return a
		}
		return branch(a.prefix, a.mask, a.left, right)
	case b.mask > a.mask && MatchPrefix(a.prefix, b.prefix, b.mask):
		if ZeroBit(a.prefix, b.mask) {
			return differenceNodes(a, b.left)
		}
		return differenceNodes(a, b.right)
	default:
		return a
	}
}
