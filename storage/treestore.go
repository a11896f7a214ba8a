package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"canopy/merkle"
)

// TreeStore saves and restores one finalized tree per database.
type TreeStore struct {
	db KvStore
}

func NewTreeStore(db KvStore) *TreeStore {
	return &TreeStore{db: db}
}

// Save writes the tree's leaf values and root digest. A later Save
// replaces the previous tree wholesale; stale leaf slots beyond the new
// count are removed.
func (s *TreeStore) Save(tree *merkle.Tree) error {
	if !tree.Finalized() {
		return ErrNotFinalized
	}

	root, err := tree.RootDigest()
	if err != nil {
		return err
	}

	prevCount := uint64(0)
	if raw, err := s.db.Get([]byte(leafCountKey)); err == nil {
		prevCount = binary.BigEndian.Uint64(raw)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	count := uint64(tree.LeafCount())
	for i := uint64(0); i < count; i++ {
		leaf, err := tree.Leaf(i)
		if err != nil {
			return err
		}

		if err := s.db.Put(leafKey(i), leaf.Value()); err != nil {
			return err
		}
	}

	for i := count; i < prevCount; i++ {
		if err := s.db.Delete(leafKey(i)); err != nil {
			return err
		}
	}

	if err := s.db.Put([]byte(rootKey), root); err != nil {
		return err
	}

	return s.db.Put([]byte(leafCountKey), leafCountValue(count))
}

// Load rebuilds the saved tree from its leaf values. The recomputed root
// must match the stored digest; a mismatch means the stored leaves were
// altered and fails with ErrInvalidDigest.
func (s *TreeStore) Load() (*merkle.Tree, error) {
	raw, err := s.db.Get([]byte(leafCountKey))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}

	count := binary.BigEndian.Uint64(raw)
	values := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		value, err := s.db.Get(leafKey(i))
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	tree, err := merkle.New(values)
	if err != nil {
		return nil, err
	}

	stored, err := s.db.Get([]byte(rootKey))
	if err != nil {
		return nil, err
	}

	root, err := tree.RootDigest()
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(root, stored) {
		return nil, fmt.Errorf("%w: stored root does not match rebuilt tree", ErrInvalidDigest)
	}

	return tree, nil
}
