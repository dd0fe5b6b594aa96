package lru

/*

# Persistent LRU cache

A Cache is a bounded map with exact least-recently-used eviction, built as a
pure value: every operation returns a new cache, old versions stay valid, and
structure is shared between versions through the persistent maps underneath.
That combination is what distinguishes it from the usual mutable LRU; a cache
can be captured at any point, speculated on, and rolled back by keeping the
old value.

## Representation

Two inverse maps carry the state:

  - entries: key -> (recency index, value), a persistent hash map
  - recency: recency index -> key, a Patricia trie over uint64 indices

Recency indices come from a counter that only grows, so the trie's minimum key
is always the least recently used entry and eviction is a minimum lookup. The
counter is 64 bits wide; at one update per nanosecond it outlasts five
centuries, and rather than ever wrapping (which would silently scramble the
eviction order) the cache fails fast on exhaustion.

## Recency semantics

Get refreshes: a hit reassigns the entry the newest index and returns the
reordered cache alongside the value. Peek and the traversals do not refresh.
Add always assigns the newest index, whether the key is new or replaced, and
evicts exactly the single oldest entry if the insert pushed the cache over
capacity. A refresh alone never changes the entry count, so it can never
trigger an eviction.

A capacity of zero is a degenerate but total cache: every add is discarded.

## Traversal order

All and ToSlice enumerate oldest to newest; Backward enumerates newest to
oldest. Rebuilding through OfSlice therefore reproduces both the content and
the eviction order of the cache it came from.

*/
