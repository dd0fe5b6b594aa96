package trietesting

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated workload is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

type TestGenerator struct {
	T   *testing.T
	Cfg TestConfig
	Rng *rand.Rand
}

func NewTestGenerator(t *testing.T, cfg TestConfig) TestGenerator {
	return TestGenerator{
		T:   t,
		Cfg: cfg,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// DistinctKeys32 returns n distinct uint32 keys in the order drawn.
func (g *TestGenerator) DistinctKeys32(n int) []uint32 {
	seen := make(map[uint32]bool, n)
	keys := make([]uint32, 0, n)
	for len(keys) < n {
		k := g.Rng.Uint32()
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// DistinctKeys64 returns n distinct uint64 keys in the order drawn.
func (g *TestGenerator) DistinctKeys64(n int) []uint64 {
	seen := make(map[uint64]bool, n)
	keys := make([]uint64, 0, n)
	for len(keys) < n {
		k := g.Rng.Uint64()
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// ClusteredKeys32 returns n distinct keys of the form base|delta with delta <
// spread. Keys drawn this way share their high bits, which forces long common
// prefixes and deep branch chains rather than the shallow spread of uniform
// draws. spread must be at least n.
func (g *TestGenerator) ClusteredKeys32(n int, base uint32, spread uint32) []uint32 {
	if uint32(n) > spread {
		g.T.Fatalf("%s: cannot draw %d distinct keys from a spread of %d", g.Cfg.TestLabelPrefix, n, spread)
	}
	seen := make(map[uint32]bool, n)
	keys := make([]uint32, 0, n)
	for len(keys) < n {
		k := base | uint32(g.Rng.Int63n(int64(spread)))
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// StringKeys returns n distinct uuid strings drawn from the seeded source.
func (g *TestGenerator) StringKeys(n int) []string {
	seen := make(map[string]bool, n)
	keys := make([]string, 0, n)
	for len(keys) < n {
		u, err := uuid.NewRandomFromReader(g.Rng)
		if err != nil {
			g.T.Fatalf("%s: failed to generate uuid: %v", g.Cfg.TestLabelPrefix, err)
		}
		s := u.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		keys = append(keys, s)
	}
	return keys
}

// Shuffled returns a copy of keys in an order drawn from the seeded source.
func Shuffled[K any](g *TestGenerator, keys []K) []K {
	out := make([]K, len(keys))
	copy(out, keys)
	g.Rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
