package intmap

import "errors"

// Entry is one key binding, used by the slice conversions.
type Entry[V any] struct {
	Key   int32
	Value V
}

var ErrKeyNotFound = errors.New("intmap: key not found")
