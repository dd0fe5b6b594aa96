package patricia

// Trie is a persistent big-endian Patricia trie mapping fixed-width unsigned
// integer keys to values. The zero value is an empty trie ready for use.
//
// Every operation that changes content returns a new Trie and leaves the
// receiver untouched; subtrees unaffected by a change are shared by reference
// between versions. Any number of goroutines may hold and traverse any number
// of versions without synchronization.
type Trie[K Uint, V any] struct {
	root *node[K, V]
}

// Singleton returns a trie holding exactly one binding.
func Singleton[K Uint, V any](key K, value V) Trie[K, V] {
	return Trie[K, V]{root: newLeaf(key, value)}
}

// IsEmpty reports whether the trie holds no keys.
func (t Trie[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Lookup returns the value bound to k. O(w) for w-bit keys.
func (t Trie[K, V]) Lookup(k K) (V, bool) {
	return lookupNode(t.root, k)
}

// ContainsKey reports whether k is bound.
func (t Trie[K, V]) ContainsKey(k K) bool {
	_, ok := lookupNode(t.root, k)
	return ok
}

func lookupNode[K Uint, V any](n *node[K, V], k K) (V, bool) {
	for n != nil {
		if n.kind == kindLeaf {
			if n.prefix == k {
				return n.value, true
			}
			break
		}
		if !MatchPrefix(k, n.prefix, n.mask) {
			break
		}
		if ZeroBit(k, n.mask) {
			n = n.left
		} else {
			n = n.right
		}
	}
	var zero V
	return zero, false
}

// Insert returns a trie with k bound to v, replacing any existing binding for
// k. Only the path from the root to the touched leaf is rebuilt; every sibling
// subtree along the way is shared with the receiver.
func (t Trie[K, V]) Insert(k K, v V) Trie[K, V] {
	return Trie[K, V]{root: insertNode(t.root, k, v, true)}
}

// insertNode binds k to v under n. When overwrite is false an existing binding
// for k survives and the node is returned unchanged; the merge path uses this
// to give one operand precedence.
func insertNode[K Uint, V any](n *node[K, V], k K, v V, overwrite bool) *node[K, V] {
	if n == nil {
		return newLeaf(k, v)
	}
	switch n.kind {
	case kindLeaf:
		if n.prefix == k {
			if !overwrite {
				return n
			}
			return newLeaf(k, v)
		}
		return join(k, newLeaf(k, v), n.prefix, n)
	default:
		if !MatchPrefix(k, n.prefix, n.mask) {
			// The insertion point is above this branch entirely.
			return join(k, newLeaf(k, v), n.prefix, n)
		}
		if ZeroBit(k, n.mask) {
			left := insertNode(n.left, k, v, overwrite)
			if left == n.left {
				return n
			}
			return newBranch(n.prefix, n.mask, left, n.right)
		}
		right := insertNode(n.right, k, v, overwrite)
		if right == n.right {
			return n
		}
		return newBranch(n.prefix, n.mask, n.left, right)
	}
}

// Remove returns a trie without k. Removing an absent key returns the receiver
// unchanged, same root pointer, no allocation.
func (t Trie[K, V]) Remove(k K) Trie[K, V] {
	return Trie[K, V]{root: removeNode(t.root, k)}
}

func removeNode[K Uint, V any](n *node[K, V], k K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch n.kind {
	case kindLeaf:
		if n.prefix == k {
			return nil
		}
		return n
	default:
		if !MatchPrefix(k, n.prefix, n.mask) {
			return n
		}
		if ZeroBit(k, n.mask) {
			left := removeNode(n.left, k)
			if left == n.left {
				return n
			}
			// branch hoists the right child when the removal emptied the left
			// arm, so no one-armed branch survives.
			return branch(n.prefix, n.mask, left, n.right)
		}
		right := removeNode(n.right, k)
		if right == n.right {
			return n
		}
		return branch(n.prefix, n.mask, n.left, right)
	}
}
