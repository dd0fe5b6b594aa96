package intmap

import (
	"fmt"

	"github.com/forestrie/go-ptrie/patricia"
)

// Map is a persistent map from int32 keys to values of type V. The zero value
// is an empty map. Updates return new maps and never touch the receiver, so
// any number of versions may be shared freely across goroutines.
type Map[V any] struct {
	trie patricia.Trie[uint32, V]
	size int
}

// Singleton returns a map holding exactly one binding.
func Singleton[V any](k int32, v V) Map[V] {
	return Map[V]{trie: patricia.Singleton(uint32(k), v), size: 1}
}

// IsEmpty reports whether the map holds no keys.
func (m Map[V]) IsEmpty() bool {
	return m.size == 0
}

// Count returns the number of bindings. The size rides on the map value, so
// this is O(1) where the trie's own count is a full traversal.
func (m Map[V]) Count() int {
	return m.size
}

// Get returns the value bound to k.
func (m Map[V]) Get(k int32) (V, bool) {
	return m.trie.Lookup(uint32(k))
}

// Find is the raising form of Get: absent keys yield an error wrapping
// ErrKeyNotFound instead of a false flag.
func (m Map[V]) Find(k int32) (V, error) {
	v, ok := m.trie.Lookup(uint32(k))
	if !ok {
		return v, fmt.Errorf("%w: %d", ErrKeyNotFound, k)
	}
	return v, nil
}

// ContainsKey reports whether k is bound.
func (m Map[V]) ContainsKey(k int32) bool {
	return m.trie.ContainsKey(uint32(k))
}

// Add returns a map with k bound to v, replacing any existing binding.
func (m Map[V]) Add(k int32, v V) Map[V] {
	size := m.size
	if !m.trie.ContainsKey(uint32(k)) {
		size++
	}
	return Map[V]{trie: m.trie.Insert(uint32(k), v), size: size}
}

// Remove returns a map without k. Removing an absent key returns the receiver
// unchanged.
func (m Map[V]) Remove(k int32) Map[V] {
	if !m.trie.ContainsKey(uint32(k)) {
		return m
	}
	return Map[V]{trie: m.trie.Remove(uint32(k)), size: m.size - 1}
}

// Merge returns a map holding every binding from the receiver and from u. On
// key conflict u's value wins. The merged size cannot be derived from the
// operand sizes when key sets overlap, so it is recounted from the result.
func (m Map[V]) Merge(u Map[V]) Map[V] {
	if m.size == 0 {
		return u
	}
	if u.size == 0 {
		return m
	}
	t := m.trie.Merge(u.trie)
	return Map[V]{trie: t, size: t.Count()}
}

// MinKey returns the first key in traversal order. With the unsigned
// reinterpretation that is the smallest non-negative key when any exists,
// otherwise the most negative key.
func (m Map[V]) MinKey() (int32, bool) {
	k, ok := m.trie.MinKey()
	return int32(k), ok
}

// MaxKey returns the last key in traversal order. Negative bit patterns sort
// above all non-negative ones, so this is the greatest negative key when any
// exists, otherwise the largest non-negative key.
func (m Map[V]) MaxKey() (int32, bool) {
	k, ok := m.trie.MaxKey()
	return int32(k), ok
}
