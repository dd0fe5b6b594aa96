package lru

import (
	"github.com/forestrie/go-ptrie/hashmap"
	"github.com/forestrie/go-ptrie/patricia"
)

// The transforms rebuild both maps in one pass over the recency order. Each
// retained entry keeps its original recency index: transformation is not an
// access, so relative age is preserved exactly. Capacity and the recency
// counter carry over to the result.

// Filter returns a cache holding only the entries pred accepts.
func (c Cache[K, V]) Filter(pred func(K, V) bool) Cache[K, V] {
	entries := hashmap.New[K, entry[V]](c.entries.Hasher())
	var recency patricia.Trie[uint64, K]
	for idx, k := range c.recency.All() {
		e, ok := c.entries.Get(k)
		if !ok || !pred(k, e.value) {
			continue
		}
		entries = entries.Add(k, e)
		recency = recency.Insert(idx, k)
	}
	c.entries = entries
	c.recency = recency
	return c
}

// Partition splits the cache into the entries pred accepts and the entries it
// rejects. Both halves keep the original capacity and counter.
func (c Cache[K, V]) Partition(pred func(K, V) bool) (Cache[K, V], Cache[K, V]) {
	yesEntries := hashmap.New[K, entry[V]](c.entries.Hasher())
	noEntries := hashmap.New[K, entry[V]](c.entries.Hasher())
	var yesRecency, noRecency patricia.Trie[uint64, K]
	for idx, k := range c.recency.All() {
		e, ok := c.entries.Get(k)
		if !ok {
			continue
		}
		if pred(k, e.value) {
			yesEntries = yesEntries.Add(k, e)
			yesRecency = yesRecency.Insert(idx, k)
		} else {
			noEntries = noEntries.Add(k, e)
			noRecency = noRecency.Insert(idx, k)
		}
	}
	yes, no := c, c
	yes.entries, yes.recency = yesEntries, yesRecency
	no.entries, no.recency = noEntries, noRecency
	return yes, no
}

// Map returns a cache with every value replaced by fn's result. It is a
// package function because the value type changes.
func Map[K comparable, V, U any](c Cache[K, V], fn func(K, V) U) Cache[K, U] {
	entries := hashmap.New[K, entry[U]](c.entries.Hasher())
	var recency patricia.Trie[uint64, K]
	for idx, k := range c.recency.All() {
		e, ok := c.entries.Get(k)
		if !ok {
			continue
		}
		entries = entries.Add(k, entry[U]{index: idx, value: fn(k, e.value)})
		recency = recency.Insert(idx, k)
	}
	return Cache[K, U]{
		entries:  entries,
		recency:  recency,
		capacity: c.capacity,
		next:     c.next,
	}
}

// Choose maps and filters in one pass: entries for which fn reports false are
// dropped, the rest carry fn's mapped value.
func Choose[K comparable, V, U any](c Cache[K, V], fn func(K, V) (U, bool)) Cache[K, U] {
	entries := hashmap.New[K, entry[U]](c.entries.Hasher())
	var recency patricia.Trie[uint64, K]
	for idx, k := range c.recency.All() {
		e, ok := c.entries.Get(k)
		if !ok {
			continue
		}
		u, keep := fn(k, e.value)
		if !keep {
			continue
		}
		entries = entries.Add(k, entry[U]{index: idx, value: u})
		recency = recency.Insert(idx, k)
	}
	return Cache[K, U]{
		entries:  entries,
		recency:  recency,
		capacity: c.capacity,
		next:     c.next,
	}
}

// MapPartition maps every entry to one of two caches: when fn's flag is true
// the first result value lands in the first cache, otherwise the second value
// lands in the second. Relative age is preserved within and across both.
func MapPartition[K comparable, V, U1, U2 any](c Cache[K, V], fn func(K, V) (U1, U2, bool)) (Cache[K, U1], Cache[K, U2]) {
	firstEntries := hashmap.New[K, entry[U1]](c.entries.Hasher())
	secondEntries := hashmap.New[K, entry[U2]](c.entries.Hasher())
	var firstRecency, secondRecency patricia.Trie[uint64, K]
	for idx, k := range c.recency.All() {
		e, ok := c.entries.Get(k)
		if !ok {
			continue
		}
		u1, u2, first := fn(k, e.value)
		if first {
			firstEntries = firstEntries.Add(k, entry[U1]{index: idx, value: u1})
			firstRecency = firstRecency.Insert(idx, k)
		} else {
			secondEntries = secondEntries.Add(k, entry[U2]{index: idx, value: u2})
			secondRecency = secondRecency.Insert(idx, k)
		}
	}
	return Cache[K, U1]{
			entries:  firstEntries,
			recency:  firstRecency,
			capacity: c.capacity,
			next:     c.next,
		}, Cache[K, U2]{
			entries:  secondEntries,
			recency:  secondRecency,
			capacity: c.capacity,
			next:     c.next,
		}
}
