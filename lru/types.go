package lru

import "errors"

// Entry is one cached binding, used by the slice conversions. Slices of
// entries are ordered oldest to newest.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// entry is the internal form: the value plus the recency index that positions
// the key in the eviction order.
type entry[V any] struct {
	index uint64
	value V
}

var (
	ErrKeyNotFound = errors.New("lru: key not found")
	ErrNoMatch     = errors.New("lru: no entry matches")
)
