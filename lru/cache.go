package lru

import (
	"fmt"
	"math"

	"github.com/forestrie/go-ptrie/hashmap"
	"github.com/forestrie/go-ptrie/patricia"
)

// Cache is a persistent LRU cache. The zero value is an empty cache with
// capacity zero, which discards every add; New configures a usable capacity.
// Operations return new caches and never touch the receiver.
type Cache[K comparable, V any] struct {
	entries  hashmap.Map[K, entry[V]]
	recency  patricia.Trie[uint64, K]
	capacity uint64
	next     uint64
}

// New returns an empty cache bounded to capacity entries.
func New[K comparable, V any](capacity uint64, opts ...Option) Cache[K, V] {
	o := &cacheOptions[K]{}
	for _, opt := range opts {
		opt(o)
	}
	return Cache[K, V]{
		entries:  hashmap.New[K, entry[V]](o.hasher),
		capacity: capacity,
	}
}

// Capacity returns the bound the cache was configured with.
func (c Cache[K, V]) Capacity() uint64 {
	return c.capacity
}

// Count returns the number of live entries, O(1).
func (c Cache[K, V]) Count() int {
	return c.entries.Count()
}

// IsEmpty reports whether the cache holds no entries.
func (c Cache[K, V]) IsEmpty() bool {
	return c.entries.IsEmpty()
}

// issue returns the next recency index. Indices start at 1 and only grow. The
// index space cannot be exhausted in any realistic lifetime, so exhaustion
// fails fast rather than wrapping, which would scramble the eviction order.
func (c *Cache[K, V]) issue() uint64 {
	if c.next == math.MaxUint64 {
		panic("lru: recency index space exhausted")
	}
	c.next++
	return c.next
}

// Peek returns the value cached for k without refreshing its recency.
func (c Cache[K, V]) Peek(k K) (V, bool) {
	e, ok := c.entries.Get(k)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// ContainsKey reports whether k is cached, without refreshing its recency.
func (c Cache[K, V]) ContainsKey(k K) bool {
	_, ok := c.entries.Get(k)
	return ok
}

// Get returns the value cached for k and the cache with k refreshed to most
// recently used. On a miss the receiver is returned unchanged. A refresh
// leaves the entry count alone, so it can never evict.
func (c Cache[K, V]) Get(k K) (V, Cache[K, V], bool) {
	e, ok := c.entries.Get(k)
	if !ok {
		var zero V
		return zero, c, false
	}
	idx := c.issue()
	c.entries = c.entries.Add(k, entry[V]{index: idx, value: e.value})
	c.recency = c.recency.Remove(e.index).Insert(idx, k)
	return e.value, c, true
}

// Find is the raising form of Get: absent keys yield an error wrapping
// ErrKeyNotFound, and the receiver comes back unchanged.
func (c Cache[K, V]) Find(k K) (V, Cache[K, V], error) {
	v, refreshed, ok := c.Get(k)
	if !ok {
		return v, c, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return v, refreshed, nil
}

// Add returns a cache with k bound to v as the most recently used entry. An
// existing binding for k is replaced and refreshed. If the insert pushes the
// cache over capacity, exactly the single oldest entry is evicted. Add is
// total: with capacity zero it returns the receiver.
func (c Cache[K, V]) Add(k K, v V) Cache[K, V] {
	if c.capacity == 0 {
		return c
	}
	if old, ok := c.entries.Get(k); ok {
		idx := c.issue()
		c.entries = c.entries.Add(k, entry[V]{index: idx, value: v})
		c.recency = c.recency.Remove(old.index).Insert(idx, k)
		return c
	}
	idx := c.issue()
	c.entries = c.entries.Add(k, entry[V]{index: idx, value: v})
	c.recency = c.recency.Insert(idx, k)
	if uint64(c.entries.Count()) > c.capacity {
		c = c.evictOldest()
	}
	return c
}

// evictOldest drops the least recently used entry. Recency indices only grow,
// so the oldest entry is the minimum key of the recency trie.
func (c Cache[K, V]) evictOldest() Cache[K, V] {
	idx, ok := c.recency.MinKey()
	if !ok {
		return c
	}
	k, _ := c.recency.Lookup(idx)
	c.recency = c.recency.Remove(idx)
	c.entries = c.entries.Remove(k)
	return c
}

// Remove returns a cache without k. Removing an absent key returns the
// receiver unchanged. Remove does not advance the recency counter.
func (c Cache[K, V]) Remove(k K) Cache[K, V] {
	e, ok := c.entries.Get(k)
	if !ok {
		return c
	}
	c.entries = c.entries.Remove(k)
	c.recency = c.recency.Remove(e.index)
	return c
}

// ChangeCapacity returns a cache bounded to capacity. Shrinking below the
// current count evicts oldest first until the bound holds. A capacity of zero
// returns the canonical empty cache, keeping only the hasher.
func (c Cache[K, V]) ChangeCapacity(capacity uint64) Cache[K, V] {
	if capacity == 0 {
		return Cache[K, V]{entries: hashmap.New[K, entry[V]](c.entries.Hasher())}
	}
	c.capacity = capacity
	for uint64(c.entries.Count()) > c.capacity {
		c = c.evictOldest()
	}
	return c
}
