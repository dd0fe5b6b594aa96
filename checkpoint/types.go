package checkpoint

import "errors"

const (
	MagicV1   = "LRU1"
	VersionV1 uint8 = 1
)

var (
	ErrBadMagic       = errors.New("checkpoint: snapshot magic invalid")
	ErrBadVersion     = errors.New("checkpoint: snapshot version unsupported")
	ErrRestoreAborted = errors.New("checkpoint: restore aborted")
)

// snapshotV1 is the wire form of a cache. Records are ordered oldest to
// newest, the same order ToSlice reports and Add consumes.
type snapshotV1[K comparable, V any] struct {
	Magic    string           `cbor:"1,keyasint"`
	Version  uint8            `cbor:"2,keyasint"`
	Capacity uint64           `cbor:"3,keyasint"`
	Records  []recordV1[K, V] `cbor:"4,keyasint,omitempty"`
}

type recordV1[K comparable, V any] struct {
	Key   K `cbor:"1,keyasint"`
	Value V `cbor:"2,keyasint"`
}
