package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps keys to the 64-bit values that index the underlying trie. A
// Hasher must be pure: equal keys must hash equal for the life of the map.
type Hasher[K any] func(K) uint64

// seed is shared by every HasherFor instance so that maps built separately
// from zero values still agree on hash values within a process.
var seed = maphash.MakeSeed()

// HasherFor returns the default hasher for any comparable key type.
func HasherFor[K comparable]() Hasher[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHasher hashes strings with xxhash, a cheaper choice than the generic
// default when keys are known to be strings.
var StringHasher Hasher[string] = xxhash.Sum64String

// Uint64Hasher is the identity. Integer keys are already well distributed for
// the trie, which branches on bits rather than buckets.
var Uint64Hasher Hasher[uint64] = func(k uint64) uint64 { return k }

// Uint32Hasher widens without mixing, for the same reason.
var Uint32Hasher Hasher[uint32] = func(k uint32) uint64 { return uint64(k) }
