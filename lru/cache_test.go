package lru

import (
	"testing"

	"github.com/forestrie/go-ptrie/hashmap"
	"github.com/forestrie/go-ptrie/trietesting"
	"github.com/stretchr/testify/require"
)

func TestZeroValueDiscardsAdds(t *testing.T) {
	var c Cache[string, int]

	require.True(t, c.IsEmpty())
	require.Equal(t, uint64(0), c.Capacity())

	c = c.Add("a", 1)
	require.True(t, c.IsEmpty(), "capacity zero must discard adds")
}

func TestNewEmptyCache(t *testing.T) {
	c := New[string, int](10)
	checkCacheInvariants(t, c)

	require.True(t, c.IsEmpty())
	require.Equal(t, uint64(10), c.Capacity())
	require.Equal(t, 0, c.Count())

	v, after, ok := c.Get("missing")
	require.False(t, ok)
	require.Zero(t, v)
	require.True(t, after.IsEmpty())
	require.Zero(t, after.next, "a miss must not advance the recency counter")

	_, _, err := c.Find("missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestAddAndPeekWithinCapacity(t *testing.T) {
	c := New[string, int](5)
	for i, k := range []string{"a", "b", "c"} {
		c = c.Add(k, i)
	}
	checkCacheInvariants(t, c)
	require.Equal(t, 3, c.Count())

	for i, k := range []string{"a", "b", "c"} {
		v, ok := c.Peek(k)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, c.ContainsKey("a"))
	require.False(t, c.ContainsKey("z"))
}

func TestCapacityBoundHolds(t *testing.T) {
	g := trietesting.NewTestGenerator(t, trietesting.TestConfig{Seed: 51, TestLabelPrefix: "lru"})
	keys := g.StringKeys(40)

	c := New[string, int](8, WithHasher(hashmap.StringHasher))
	for i, k := range keys {
		c = c.Add(k, i)
		require.LessOrEqual(t, c.Count(), 8, "capacity must hold after every add")
		checkCacheInvariants(t, c)
	}

	// Exactly the newest eight survive.
	for i, k := range keys {
		want := i >= len(keys)-8
		require.Equal(t, want, c.ContainsKey(k), "key %d survival", i)
	}
}

func TestExactEvictionOrder(t *testing.T) {
	c := New[string, int](3)
	c = c.Add("a", 1).Add("b", 2).Add("c", 3)

	c = c.Add("d", 4)
	checkCacheInvariants(t, c)
	require.False(t, c.ContainsKey("a"), "the single oldest entry must be evicted")
	require.True(t, c.ContainsKey("b"))
	require.True(t, c.ContainsKey("c"))
	require.True(t, c.ContainsKey("d"))

	c = c.Add("e", 5)
	require.False(t, c.ContainsKey("b"))
	require.Equal(t, 3, c.Count())
}

func TestGetRefreshesRecency(t *testing.T) {
	c := New[string, int](3)
	c = c.Add("a", 1).Add("b", 2).Add("c", 3)

	v, c, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	checkCacheInvariants(t, c)
	require.Equal(t, 3, c.Count(), "a refresh must not change the count")

	// "a" was refreshed, so "b" is now oldest.
	c = c.Add("d", 4)
	require.True(t, c.ContainsKey("a"))
	require.False(t, c.ContainsKey("b"))
}

func TestPeekDoesNotRefresh(t *testing.T) {
	c := New[string, int](3)
	c = c.Add("a", 1).Add("b", 2).Add("c", 3)

	_, ok := c.Peek("a")
	require.True(t, ok)

	// Peek is not an access: "a" is still oldest.
	c = c.Add("d", 4)
	require.False(t, c.ContainsKey("a"))
}

func TestAddExistingRefreshesAndReplaces(t *testing.T) {
	c := New[string, int](3)
	c = c.Add("a", 1).Add("b", 2).Add("c", 3)

	c = c.Add("a", 11)
	checkCacheInvariants(t, c)
	require.Equal(t, 3, c.Count(), "re-adding must not grow the cache")

	v, ok := c.Peek("a")
	require.True(t, ok)
	require.Equal(t, 11, v)

	// "a" is newest now, so "b" evicts next.
	c = c.Add("d", 4)
	require.True(t, c.ContainsKey("a"))
	require.False(t, c.ContainsKey("b"))
}

func TestReAddSameValueAdvancesRecency(t *testing.T) {
	c := New[string, int](2)
	c = c.Add("a", 1).Add("b", 2)

	// Content-idempotent, recency not: "a" becomes newest.
	c = c.Add("a", 1)
	require.Equal(t, 2, c.Count())

	c = c.Add("c", 3)
	require.True(t, c.ContainsKey("a"))
	require.False(t, c.ContainsKey("b"))
}

func TestFindRefreshesOnHit(t *testing.T) {
	c := New[string, int](3)
	c = c.Add("a", 1).Add("b", 2).Add("c", 3)

	v, refreshed, err := c.Find("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	refreshed = refreshed.Add("d", 4)
	require.True(t, refreshed.ContainsKey("a"))
	require.False(t, refreshed.ContainsKey("b"))

	// The original order is untouched in the receiver.
	c = c.Add("d", 4)
	require.False(t, c.ContainsKey("a"))
}

func TestRemove(t *testing.T) {
	c := New[string, int](3)
	c = c.Add("a", 1).Add("b", 2).Add("c", 3)
	before := c.next

	c = c.Remove("b")
	checkCacheInvariants(t, c)
	require.Equal(t, 2, c.Count())
	require.False(t, c.ContainsKey("b"))
	require.Equal(t, before, c.next, "remove must not advance the recency counter")

	// Absent removal is a no-op.
	c = c.Remove("zz")
	require.Equal(t, 2, c.Count())

	// The freed slot admits a new entry without evicting.
	c = c.Add("d", 4)
	require.Equal(t, 3, c.Count())
	require.True(t, c.ContainsKey("a"))
}

func TestChangeCapacityGrowKeepsEntries(t *testing.T) {
	c := New[string, int](2).Add("a", 1).Add("b", 2)

	c = c.ChangeCapacity(10)
	checkCacheInvariants(t, c)
	require.Equal(t, uint64(10), c.Capacity())
	require.Equal(t, 2, c.Count())

	for i := 0; i < 8; i++ {
		c = c.Add(string(rune('c'+i)), i)
	}
	require.Equal(t, 10, c.Count())
	require.True(t, c.ContainsKey("a"))
}

func TestChangeCapacityShrinkEvictsOldestFirst(t *testing.T) {
	c := New[string, int](5)
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		c = c.Add(k, i)
	}

	c = c.ChangeCapacity(2)
	checkCacheInvariants(t, c)
	require.Equal(t, 2, c.Count())
	require.True(t, c.ContainsKey("d"))
	require.True(t, c.ContainsKey("e"))
	for _, k := range []string{"a", "b", "c"} {
		require.False(t, c.ContainsKey(k))
	}
}

func TestChangeCapacityZeroEmpties(t *testing.T) {
	c := New[string, int](3).Add("a", 1).Add("b", 2)

	c = c.ChangeCapacity(0)
	require.True(t, c.IsEmpty())
	require.Equal(t, uint64(0), c.Capacity())

	// Capacity zero discards adds until the capacity changes again.
	c = c.Add("x", 1)
	require.True(t, c.IsEmpty())

	c = c.ChangeCapacity(3).Add("x", 1)
	require.Equal(t, 1, c.Count())
}

func TestOldVersionsSurviveUpdates(t *testing.T) {
	v1 := New[string, int](3).Add("a", 1).Add("b", 2).Add("c", 3)

	v2 := v1.Add("d", 4).Remove("c")
	_, v3, _ := v1.Get("a")

	// v1 still holds its original content and order.
	require.Equal(t, 3, v1.Count())
	require.True(t, v1.ContainsKey("a"))
	require.True(t, v1.ContainsKey("c"))
	require.False(t, v1.ContainsKey("d"))
	evicted := v1.Add("x", 9)
	require.False(t, evicted.ContainsKey("a"), "v1's own order must be unaffected by v2/v3")

	require.False(t, v2.ContainsKey("a"))
	require.False(t, v2.ContainsKey("c"))
	require.True(t, v2.ContainsKey("d"))

	refreshed := v3.Add("x", 9)
	require.True(t, refreshed.ContainsKey("a"), "v3 carries the refresh")

	checkCacheInvariants(t, v1)
	checkCacheInvariants(t, v2)
	checkCacheInvariants(t, v3)
}

func TestTraversalOrder(t *testing.T) {
	c := New[string, int](5)
	for i, k := range []string{"a", "b", "c", "d"} {
		c = c.Add(k, i)
	}

	var forward []string
	for k := range c.All() {
		forward = append(forward, k)
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, forward)

	var backward []string
	for k := range c.Backward() {
		backward = append(backward, k)
	}
	require.Equal(t, []string{"d", "c", "b", "a"}, backward)

	// A refresh moves the entry to the newest end.
	_, c, _ = c.Get("b")
	forward = forward[:0]
	for k := range c.All() {
		forward = append(forward, k)
	}
	require.Equal(t, []string{"a", "c", "d", "b"}, forward)
}

func TestSliceRoundTrip(t *testing.T) {
	g := trietesting.NewTestGenerator(t, trietesting.TestConfig{Seed: 52, TestLabelPrefix: "lru"})
	keys := g.StringKeys(20)

	c := New[string, int](32, WithHasher(hashmap.StringHasher))
	for i, k := range keys {
		c = c.Add(k, i)
	}
	// Mix the order up with a couple of refreshes.
	_, c, _ = c.Get(keys[3])
	_, c, _ = c.Get(keys[11])

	entries := c.ToSlice()
	require.Len(t, entries, 20)

	back := OfSlice(entries, c.Capacity(), WithHasher(hashmap.StringHasher))
	checkCacheInvariants(t, back)
	require.Equal(t, c.Count(), back.Count())
	require.Equal(t, entries, back.ToSlice(), "round trip must preserve content and order")
}

func TestFoldAndFoldBack(t *testing.T) {
	c := New[string, int](5)
	c = c.Add("a", 1).Add("b", 2).Add("c", 3)

	oldestFirst := Fold(c, []string(nil), func(acc []string, k string, _ int) []string {
		return append(acc, k)
	})
	require.Equal(t, []string{"a", "b", "c"}, oldestFirst)

	newestFirst := FoldBack(c, []string(nil), func(k string, _ int, acc []string) []string {
		return append(acc, k)
	})
	require.Equal(t, []string{"c", "b", "a"}, newestFirst)

	sum := Fold(c, 0, func(acc int, _ string, v int) int { return acc + v })
	require.Equal(t, 6, sum)
}

func TestEvictionWithCollidingHasher(t *testing.T) {
	// Hash collisions must not confuse eviction, which orders by recency
	// index, not by hash.
	collide := func(string) uint64 { return 7 }
	c := New[string, int](2, WithHasher[string](collide))

	c = c.Add("a", 1).Add("b", 2).Add("c", 3)
	checkCacheInvariants(t, c)
	require.Equal(t, 2, c.Count())
	require.False(t, c.ContainsKey("a"))
	require.True(t, c.ContainsKey("b"))
	require.True(t, c.ContainsKey("c"))
}

func TestLongWorkloadAgainstModel(t *testing.T) {
	g := trietesting.NewTestGenerator(t, trietesting.TestConfig{Seed: 53, TestLabelPrefix: "lru"})
	keys := g.StringKeys(16)

	const capacity = 8
	c := New[string, int](capacity, WithHasher(hashmap.StringHasher))

	// Model: ordered list of keys, oldest first, plus a value map.
	var order []string
	values := map[string]int{}
	touch := func(k string) {
		for i, live := range order {
			if live == k {
				order = append(order[:i], order[i+1:]...)
				break
			}
		}
		order = append(order, k)
	}

	for step := 0; step < 2000; step++ {
		k := keys[g.Rng.Intn(len(keys))]
		switch g.Rng.Intn(4) {
		case 0: // Add
			v := step
			c = c.Add(k, v)
			if _, live := values[k]; !live {
				if len(order) == capacity {
					evict := order[0]
					order = order[1:]
					delete(values, evict)
				}
			}
			values[k] = v
			touch(k)
		case 1: // Get
			v, after, ok := c.Get(k)
			_, live := values[k]
			require.Equal(t, live, ok, "step %d: presence of %q", step, k)
			if ok {
				require.Equal(t, values[k], v, "step %d", step)
				touch(k)
			}
			c = after
		case 2: // Peek
			v, ok := c.Peek(k)
			_, live := values[k]
			require.Equal(t, live, ok, "step %d", step)
			if ok {
				require.Equal(t, values[k], v, "step %d", step)
			}
		case 3: // Remove
			c = c.Remove(k)
			if _, live := values[k]; live {
				delete(values, k)
				for i, kept := range order {
					if kept == k {
						order = append(order[:i], order[i+1:]...)
						break
					}
				}
			}
		}

		require.Equal(t, len(values), c.Count(), "step %d", step)
	}

	checkCacheInvariants(t, c)
	var got []string
	for k := range c.All() {
		got = append(got, k)
	}
	require.Equal(t, order, got, "final recency order must match the model")
}

// checkCacheInvariants verifies the structural rules every operation must
// preserve: the entry and recency maps are exact inverses, the capacity bound
// holds, and no recency index exceeds the counter.
func checkCacheInvariants[K comparable, V any](t *testing.T, c Cache[K, V]) {
	t.Helper()

	require.Equal(t, c.entries.Count(), c.recency.Count(),
		"entry and recency maps must be the same size")
	if c.capacity == 0 {
		require.Zero(t, c.entries.Count(), "capacity zero means perpetually empty")
	} else {
		require.LessOrEqual(t, uint64(c.entries.Count()), c.capacity)
	}

	for idx, k := range c.recency.All() {
		e, ok := c.entries.Get(k)
		require.Truef(t, ok, "recency index %d names key %v missing from entries", idx, k)
		require.Equalf(t, idx, e.index, "key %v recency index mismatch", k)
		require.LessOrEqual(t, idx, c.next, "no index may exceed the counter")
	}
	for k, e := range c.entries.All() {
		back, ok := c.recency.Lookup(e.index)
		require.Truef(t, ok, "entry %v index %d missing from recency", k, e.index)
		require.Equalf(t, k, back, "recency index %d points at the wrong key", e.index)
	}
}
