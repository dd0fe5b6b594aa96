package hashmap

/*

# Persistent hash map

A Map binds comparable keys of any type to values, with the same persistence
contract as the trie it is built on: updates return new maps, old versions stay
valid, and unchanged structure is shared by reference.

The representation is a `patricia.Trie[uint64, bucket]` keyed by the 64-bit
hash of each key. Keys that collide at the full 64 bits share a bucket, a small
immutable slice that is copied on update. With any reasonable hasher such
buckets hold one entry essentially always, so operations cost one trie walk
plus a scan of a tiny slice.

Hashing is the caller's choice. New takes a Hasher, and the package provides
ready ones: HasherFor covers every comparable type through hash/maphash,
StringHasher is xxhash for string-heavy workloads, and the integer hashers are
identity spreads. The zero Map value is empty and uses the HasherFor default.

Iteration order follows the hash values, so it is deterministic for a given
hasher and key set but otherwise meaningless. Callers that need a meaningful
order should sort, or keep an ordered structure alongside as the lru package
does.

*/
