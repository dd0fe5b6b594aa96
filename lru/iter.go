package lru

import "iter"

// All ranges over the entries from least to most recently used. Traversal
// never refreshes recency.
func (c Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range c.recency.All() {
			e, ok := c.entries.Get(k)
			if !ok {
				continue
			}
			if !yield(k, e.value) {
				return
			}
		}
	}
}

// Backward ranges over the entries from most to least recently used.
func (c Cache[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range c.recency.Backward() {
			e, ok := c.entries.Get(k)
			if !ok {
				continue
			}
			if !yield(k, e.value) {
				return
			}
		}
	}
}

// ToSlice returns the entries oldest to newest.
func (c Cache[K, V]) ToSlice() []Entry[K, V] {
	out := make([]Entry[K, V], 0, c.Count())
	for k, v := range c.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// OfSlice builds a cache by adding the entries in order, so the last entry
// ends up most recently used and a ToSlice round trip reproduces both content
// and eviction order. Entries beyond capacity evict as they would live.
func OfSlice[K comparable, V any](entries []Entry[K, V], capacity uint64, opts ...Option) Cache[K, V] {
	c := New[K, V](capacity, opts...)
	for _, e := range entries {
		c = c.Add(e.Key, e.Value)
	}
	return c
}

// Fold threads an accumulator through the entries oldest to newest.
func Fold[K comparable, V, A any](c Cache[K, V], init A, fn func(A, K, V) A) A {
	acc := init
	for k, v := range c.All() {
		acc = fn(acc, k, v)
	}
	return acc
}

// FoldBack threads an accumulator through the entries newest to oldest.
func FoldBack[K comparable, V, A any](c Cache[K, V], init A, fn func(K, V, A) A) A {
	acc := init
	for k, v := range c.Backward() {
		acc = fn(k, v, acc)
	}
	return acc
}

// TryPick applies fn to the entries oldest to newest and returns the first
// accepted result. Picking is a query, not an access: recency is unchanged.
func TryPick[K comparable, V, U any](c Cache[K, V], fn func(K, V) (U, bool)) (U, bool) {
	for k, v := range c.All() {
		if u, ok := fn(k, v); ok {
			return u, true
		}
	}
	var zero U
	return zero, false
}

// Pick is the raising form of TryPick: when fn accepts no entry it returns an
// error wrapping ErrNoMatch.
func Pick[K comparable, V, U any](c Cache[K, V], fn func(K, V) (U, bool)) (U, error) {
	u, ok := TryPick(c, fn)
	if !ok {
		return u, ErrNoMatch
	}
	return u, nil
}
