package patricia

import "iter"

// Count returns the number of bindings. It visits every node, so it is O(n);
// callers that need a cheap length should track one alongside the trie.
func (t Trie[K, V]) Count() int {
	if t.root == nil {
		return 0
	}
	count := 0
	stack := []*node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.kind == kindLeaf {
			count++
			continue
		}
		stack = append(stack, n.left, n.right)
	}
	return count
}

// MinKey returns the smallest key in unsigned order. Branches discriminate on
// the highest differing bit, so the minimum is always the leftmost leaf.
func (t Trie[K, V]) MinKey() (K, bool) {
	n := t.root
	if n == nil {
		var zero K
		return zero, false
	}
	for n.kind == kindBranch {
		n = n.left
	}
	return n.prefix, true
}

// MaxKey returns the largest key in unsigned order, the rightmost leaf.
func (t Trie[K, V]) MaxKey() (K, bool) {
	n := t.root
	if n == nil {
		var zero K
		return zero, false
	}
	for n.kind == kindBranch {
		n = n.right
	}
	return n.prefix, true
}

// Walk applies fn to each binding in ascending unsigned key order, stopping
// early when fn returns false.
func (t Trie[K, V]) Walk(fn func(K, V) bool) {
	walkNodes(t.root, fn)
}

// All ranges over every binding in ascending unsigned key order.
func (t Trie[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walkNodes(t.root, yield)
	}
}

// Backward ranges over every binding in descending unsigned key order.
func (t Trie[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walkNodesBack(t.root, yield)
	}
}

// walkNodes visits leaves left to right with an explicit stack. The right arm
// is pushed first so the left pops first.
func walkNodes[K Uint, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	stack := []*node[K, V]{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.kind == kindLeaf {
			if !yield(n.prefix, n.value) {
				return false
			}
			continue
		}
		stack = append(stack, n.right, n.left)
	}
	return true
}

func walkNodesBack[K Uint, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	stack := []*node[K, V]{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.kind == kindLeaf {
			if !yield(n.prefix, n.value) {
				return false
			}
			continue
		}
		stack = append(stack, n.left, n.right)
	}
	return true
}

// Fold threads an accumulator through the bindings in ascending key order.
// It is a package function rather than a method so the accumulator may be any
// type.
func Fold[K Uint, V, A any](t Trie[K, V], init A, fn func(A, K, V) A) A {
	acc := init
	for k, v := range t.All() {
		acc = fn(acc, k, v)
	}
	return acc
}

// FoldBack threads an accumulator through the bindings in descending key
// order. The binding comes first in the callback to mirror the traversal
// direction.
func FoldBack[K Uint, V, A any](t Trie[K, V], init A, fn func(K, V, A) A) A {
	acc := init
	for k, v := range t.Backward() {
		acc = fn(k, v, acc)
	}
	return acc
}
