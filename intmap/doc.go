package intmap

/*

# Persistent integer map

This package is the signed-key facade over `patricia`. A Map binds int32 keys
to values by reinterpreting each key as its two's-complement uint32 bit
pattern, so the trie below never sees a sign.

Two consequences of the reinterpretation are worth internalizing:

  - Traversal order is unsigned order on the bit patterns: non-negative keys
    first in ascending order, then negative keys in ascending order. MinKey and
    MaxKey report the extremes of that order, not of signed comparison.

  - No truncation or normalization happens. Distinct int32 keys are distinct
    trie keys, always.

The facade also carries the binding count on the Map value itself, so Count is
O(1) where the trie's own Count walks every node.

Like the trie, a Map value is immutable: every update returns a new Map sharing
structure with the old one, and the zero value is an empty map ready for use.

*/
