package lru

import "github.com/forestrie/go-ptrie/hashmap"

// Option is a generic option type for cache construction. Options type assert
// to the config they understand and ignore anything else.
type Option func(any)

type cacheOptions[K comparable] struct {
	hasher hashmap.Hasher[K]
}

// WithHasher selects the hash function for the cache's key map. Without it the
// hashmap package default is used.
func WithHasher[K comparable](h hashmap.Hasher[K]) Option {
	return func(opts any) {
		if o, ok := opts.(*cacheOptions[K]); ok {
			o.hasher = h
		}
	}
}
