package checkpoint

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/forestrie/go-ptrie/lru"
)

// RestorerConfig configures how a cache is rebuilt from a record stream.
type RestorerConfig struct {
	// Capacity bounds the rebuilt cache. Record streams carry no header, so
	// the bound comes from configuration.
	Capacity uint64

	// Strict aborts the restore on the first unreadable record. The default
	// skips such records and restores everything readable.
	Strict bool
}

// Restorer rebuilds caches from streams of fallible records, for sources
// where each record can fail independently, a row scan or a paged fetch.
type Restorer[K comparable, V any] struct {
	cfg  RestorerConfig
	log  *zap.Logger
	opts []lru.Option
}

// NewRestorer returns a restorer logging to log. A nil log discards output.
// The options are applied to the rebuilt cache.
func NewRestorer[K comparable, V any](cfg RestorerConfig, log *zap.Logger, opts ...lru.Option) Restorer[K, V] {
	if log == nil {
		log = zap.NewNop()
	}
	return Restorer[K, V]{cfg: cfg, log: log, opts: opts}
}

// RestoreSeq rebuilds a cache from src, consuming records oldest first so the
// stream order becomes the recency order. Failed records are skipped and
// logged, or abort the restore with ErrRestoreAborted under Strict.
func (r Restorer[K, V]) RestoreSeq(src iter.Seq2[lru.Entry[K, V], error]) (lru.Cache[K, V], error) {
	cache := lru.New[K, V](r.cfg.Capacity, r.opts...)
	restored, skipped := 0, 0
	for e, err := range src {
		if err != nil {
			if r.cfg.Strict {
				r.log.Error("restore aborted on unreadable record",
					zap.Int("restored", restored),
					zap.Error(err),
				)
				return lru.Cache[K, V]{}, fmt.Errorf("%w: %v", ErrRestoreAborted, err)
			}
			skipped++
			r.log.Warn("skipping unreadable record",
				zap.Int("position", restored+skipped),
				zap.Error(err),
			)
			continue
		}
		cache = cache.Add(e.Key, e.Value)
		restored++
	}
	r.log.Info("cache restored",
		zap.Int("restored", restored),
		zap.Int("skipped", skipped),
		zap.Int("live", cache.Count()),
		zap.Uint64("capacity", r.cfg.Capacity),
	)
	return cache, nil
}

// RestoreSlice rebuilds a cache from in-memory records, a convenience over
// RestoreSeq for sources that cannot fail per record.
func (r Restorer[K, V]) RestoreSlice(records []lru.Entry[K, V]) lru.Cache[K, V] {
	cache, _ := r.RestoreSeq(func(yield func(lru.Entry[K, V], error) bool) {
		for _, e := range records {
			if !yield(e, nil) {
				return
			}
		}
	})
	return cache
}
