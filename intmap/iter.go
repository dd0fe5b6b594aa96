package intmap

import "iter"

// All ranges over the bindings in traversal order: non-negative keys
// ascending, then negative keys ascending.
func (m Map[V]) All() iter.Seq2[int32, V] {
	return func(yield func(int32, V) bool) {
		for k, v := range m.trie.All() {
			if !yield(int32(k), v) {
				return
			}
		}
	}
}

// Backward ranges over the bindings in reverse traversal order.
func (m Map[V]) Backward() iter.Seq2[int32, V] {
	return func(yield func(int32, V) bool) {
		for k, v := range m.trie.Backward() {
			if !yield(int32(k), v) {
				return
			}
		}
	}
}

// Walk applies fn to each binding in traversal order, stopping early when fn
// returns false.
func (m Map[V]) Walk(fn func(int32, V) bool) {
	for k, v := range m.All() {
		if !fn(k, v) {
			return
		}
	}
}

// Fold threads an accumulator through the bindings in traversal order.
func Fold[V, A any](m Map[V], init A, fn func(A, int32, V) A) A {
	acc := init
	for k, v := range m.All() {
		acc = fn(acc, k, v)
	}
	return acc
}

// ToSlice returns the bindings as entries in traversal order.
func (m Map[V]) ToSlice() []Entry[V] {
	out := make([]Entry[V], 0, m.size)
	for k, v := range m.All() {
		out = append(out, Entry[V]{Key: k, Value: v})
	}
	return out
}

// OfSlice builds a map from entries. Later entries win on duplicate keys.
func OfSlice[V any](entries []Entry[V]) Map[V] {
	var m Map[V]
	for _, e := range entries {
		m = m.Add(e.Key, e.Value)
	}
	return m
}
