package checkpoint

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/go-ptrie/lru"
)

// Codec encodes and decodes cache snapshots. Construct with NewCodec; the
// zero value has no encode or decode modes and is unusable.
type Codec[K comparable, V any] struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
	opts    []lru.Option
}

// NewCodec returns a codec using deterministic core CBOR encoding, so equal
// caches encode to equal bytes. The options are applied when Decode rebuilds
// a cache, which is where a non-default hasher is threaded back in.
func NewCodec[K comparable, V any](opts ...lru.Option) (Codec[K, V], error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec[K, V]{}, err
	}
	decMode, err := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		return Codec[K, V]{}, err
	}
	return Codec[K, V]{encMode: encMode, decMode: decMode, opts: opts}, nil
}

func (c Codec[K, V]) snapshot(cache lru.Cache[K, V]) snapshotV1[K, V] {
	s := snapshotV1[K, V]{
		Magic:    MagicV1,
		Version:  VersionV1,
		Capacity: cache.Capacity(),
	}
	for k, v := range cache.All() {
		s.Records = append(s.Records, recordV1[K, V]{Key: k, Value: v})
	}
	return s
}

// Encode returns the snapshot bytes for cache.
func (c Codec[K, V]) Encode(cache lru.Cache[K, V]) ([]byte, error) {
	return c.encMode.Marshal(c.snapshot(cache))
}

// EncodeTo writes the snapshot for cache to w.
func (c Codec[K, V]) EncodeTo(w io.Writer, cache lru.Cache[K, V]) error {
	return c.encMode.NewEncoder(w).Encode(c.snapshot(cache))
}

// Decode rebuilds a cache from snapshot bytes. The header is validated before
// any entries are touched. The rebuild goes through the public cache
// operations, so the result is bounded by the snapshot's capacity even if the
// record list is not.
func (c Codec[K, V]) Decode(data []byte) (lru.Cache[K, V], error) {
	var s snapshotV1[K, V]
	if err := c.decMode.Unmarshal(data, &s); err != nil {
		return lru.Cache[K, V]{}, fmt.Errorf("checkpoint: decoding snapshot: %w", err)
	}
	return c.rebuild(s)
}

// DecodeFrom rebuilds a cache from the snapshot read off r.
func (c Codec[K, V]) DecodeFrom(r io.Reader) (lru.Cache[K, V], error) {
	var s snapshotV1[K, V]
	if err := c.decMode.NewDecoder(r).Decode(&s); err != nil {
		return lru.Cache[K, V]{}, fmt.Errorf("checkpoint: decoding snapshot: %w", err)
	}
	return c.rebuild(s)
}

func (c Codec[K, V]) rebuild(s snapshotV1[K, V]) (lru.Cache[K, V], error) {
	if s.Magic != MagicV1 {
		return lru.Cache[K, V]{}, fmt.Errorf("%w: %q", ErrBadMagic, s.Magic)
	}
	if s.Version != VersionV1 {
		return lru.Cache[K, V]{}, fmt.Errorf("%w: %d", ErrBadVersion, s.Version)
	}
	cache := lru.New[K, V](s.Capacity, c.opts...)
	for _, rec := range s.Records {
		cache = cache.Add(rec.Key, rec.Value)
	}
	return cache, nil
}
