package patricia

import "math/bits"

// Uint constrains trie keys to the fixed-width unsigned integers the
// branching-bit arithmetic is defined over.
type Uint interface {
	~uint32 | ~uint64
}

// LowestBit returns the lowest set bit of x as a standalone power of two, or
// zero when x is zero.
func LowestBit[K Uint](x K) K {
	return x & -x
}

// HighestBit returns the largest power of two that is <= x after clearing all
// bits below floor, or zero when no set bit remains.
//
// floor must itself be a power of two. The classic formulation repeatedly
// strips LowestBit until one bit remains, which is O(popcount); this uses the
// leading-zeros intrinsic instead for O(1) with identical results.
func HighestBit[K Uint](x, floor K) K {
	x &^= floor - 1
	if x == 0 {
		return 0
	}
	return K(1) << (bits.Len64(uint64(x)) - 1)
}

// BranchingBit returns the highest bit position at which p0 and p1 disagree,
// as a standalone power of two, or zero when they are equal. This is the bit a
// new branch fans out at when two unrelated prefixes must share an ancestor.
func BranchingBit[K Uint](p0, p1 K) K {
	return HighestBit(p0^p1, 1)
}

// Mask clears all bits of k at and below the branching bit m, producing the
// canonical prefix for a branch fanning out at m.
//
// m<<1 overflows to zero when m is the top bit; the unsigned wraparound of the
// following subtraction then yields an all-ones clear mask, which is exactly
// the required result (a branch at the top bit shares no prefix bits).
func Mask[K Uint](k, m K) K {
	return k &^ (m<<1 - 1)
}

// MatchPrefix reports whether k belongs under a branch carrying the given
// prefix and branching bit.
func MatchPrefix[K Uint](k, p, m K) bool {
	return Mask(k, m) == p
}

// ZeroBit reports whether bit m of k is zero, which routes k into the left
// subtree of a branch with mask m.
func ZeroBit[K Uint](k, m K) bool {
	return k&m == 0
}
