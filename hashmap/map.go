package hashmap

import (
	"iter"

	"github.com/forestrie/go-ptrie/patricia"
)

// entry is one key binding inside a collision bucket.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket holds the entries sharing one 64-bit hash. Buckets are immutable;
// updates copy. A bucket is never empty inside the trie.
type bucket[K comparable, V any] []entry[K, V]

func (b bucket[K, V]) get(k K) (V, bool) {
	for i := range b {
		if b[i].key == k {
			return b[i].value, true
		}
	}
	var zero V
	return zero, false
}

// put returns a bucket with k bound to v and reports whether k is new.
func (b bucket[K, V]) put(k K, v V) (bucket[K, V], bool) {
	for i := range b {
		if b[i].key == k {
			nb := make(bucket[K, V], len(b))
			copy(nb, b)
			nb[i].value = v
			return nb, false
		}
	}
	nb := make(bucket[K, V], len(b)+1)
	copy(nb, b)
	nb[len(b)] = entry[K, V]{key: k, value: v}
	return nb, true
}

// drop returns a bucket without k and reports whether k was present.
func (b bucket[K, V]) drop(k K) (bucket[K, V], bool) {
	for i := range b {
		if b[i].key != k {
			continue
		}
		if len(b) == 1 {
			return nil, true
		}
		nb := make(bucket[K, V], 0, len(b)-1)
		nb = append(nb, b[:i]...)
		nb = append(nb, b[i+1:]...)
		return nb, true
	}
	return b, false
}

// Map is a persistent hash map. The zero value is an empty map using the
// HasherFor default; New configures a different hasher. Updates return new
// maps and never touch the receiver.
type Map[K comparable, V any] struct {
	hash Hasher[K]
	trie patricia.Trie[uint64, bucket[K, V]]
	size int
}

// New returns an empty map using h. A nil h selects the HasherFor default.
func New[K comparable, V any](h Hasher[K]) Map[K, V] {
	if h == nil {
		h = HasherFor[K]()
	}
	return Map[K, V]{hash: h}
}

// Hasher returns the hasher the map was built with, nil for a zero value that
// has not defaulted yet. Callers rebuilding a related map at a different value
// type pass it back through New so both maps agree on hashes.
func (m Map[K, V]) Hasher() Hasher[K] {
	return m.hash
}

// IsEmpty reports whether the map holds no keys.
func (m Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Count returns the number of bindings, O(1).
func (m Map[K, V]) Count() int {
	return m.size
}

// Get returns the value bound to k.
func (m Map[K, V]) Get(k K) (V, bool) {
	if m.size == 0 {
		var zero V
		return zero, false
	}
	b, ok := m.trie.Lookup(m.hash(k))
	if !ok {
		var zero V
		return zero, false
	}
	return b.get(k)
}

// ContainsKey reports whether k is bound.
func (m Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Add returns a map with k bound to v, replacing any existing binding.
func (m Map[K, V]) Add(k K, v V) Map[K, V] {
	if m.hash == nil {
		m.hash = HasherFor[K]()
	}
	h := m.hash(k)
	b, _ := m.trie.Lookup(h)
	nb, added := b.put(k, v)
	size := m.size
	if added {
		size++
	}
	return Map[K, V]{hash: m.hash, trie: m.trie.Insert(h, nb), size: size}
}

// Remove returns a map without k. Removing an absent key returns the receiver
// unchanged.
func (m Map[K, V]) Remove(k K) Map[K, V] {
	if m.size == 0 {
		return m
	}
	h := m.hash(k)
	b, ok := m.trie.Lookup(h)
	if !ok {
		return m
	}
	nb, removed := b.drop(k)
	if !removed {
		return m
	}
	t := m.trie
	if len(nb) > 0 {
		// Other keys still share the hash; keep the trimmed bucket.
		t = t.Insert(h, nb)
	} else {
		t = t.Remove(h)
	}
	return Map[K, V]{hash: m.hash, trie: t, size: m.size - 1}
}

// All ranges over every binding. The order follows the hash values:
// deterministic for a given hasher and key set, otherwise unspecified.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range m.trie.All() {
			for i := range b {
				if !yield(b[i].key, b[i].value) {
					return
				}
			}
		}
	}
}

// Fold threads an accumulator through the bindings in All order.
func Fold[K comparable, V, A any](m Map[K, V], init A, fn func(A, K, V) A) A {
	acc := init
	for k, v := range m.All() {
		acc = fn(acc, k, v)
	}
	return acc
}
