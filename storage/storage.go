// Package storage persists finalized merkle trees in a key-value store.
// The tree itself stays an in-memory structure; only the inputs needed to
// rebuild it (leaf values) and the root digest to check the rebuild
// against are written out.
package storage

import "fmt"

var (
	ErrNotFound      = fmt.Errorf("not found")
	ErrEmpty         = fmt.Errorf("empty")
	ErrInvalidDigest = fmt.Errorf("invalid digest")
	ErrNotFinalized  = fmt.Errorf("tree not finalized")
)

// KvStore is the minimal key-value surface the tree store runs on.
type KvStore interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Close() error
}
