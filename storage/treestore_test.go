package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"canopy/merkle"
)

func testValues(n int) [][]byte {
	values := make([][]byte, n)
	for i := range values {
		values[i] = []byte(fmt.Sprintf("leaf-%d", i))
	}

	return values
}

func openTestStore(t *testing.T) (*TreeStore, *LevelDB, string) {
	t.Helper()
	r := require.New(t)

	path := filepath.Join(os.TempDir(), testDB)
	r.NoError(os.RemoveAll(path))

	db, err := NewLevelDB(path)
	r.NoError(err)

	return NewTreeStore(db), db, path
}

func TestTreeStoreEmpty(t *testing.T) {
	r := require.New(t)

	store, db, path := openTestStore(t)

	_, err := store.Load()
	r.True(errors.Is(err, ErrEmpty))

	r.NoError(db.Close())
	r.NoError(os.RemoveAll(path))
}

func TestTreeStoreRoundTrip(t *testing.T) {
	r := require.New(t)

	store, db, path := openTestStore(t)

	tree, err := merkle.New(testValues(8))
	r.NoError(err)
	r.NoError(store.Save(tree))

	loaded, err := store.Load()
	r.NoError(err)
	r.Equal(tree.Size(), loaded.Size())

	want, err := tree.RootDigest()
	r.NoError(err)
	got, err := loaded.RootDigest()
	r.NoError(err)
	r.Equal(want, got)

	for i := uint64(0); i < 8; i++ {
		wantLeaf, err := tree.Leaf(i)
		r.NoError(err)
		gotLeaf, err := loaded.Leaf(i)
		r.NoError(err)
		r.Equal(wantLeaf.Value(), gotLeaf.Value())
	}

	r.NoError(db.Close())
	r.NoError(os.RemoveAll(path))
}

func TestTreeStoreReplace(t *testing.T) {
	r := require.New(t)

	store, db, path := openTestStore(t)

	big, err := merkle.New(testValues(16))
	r.NoError(err)
	r.NoError(store.Save(big))

	small, err := merkle.New(testValues(4))
	r.NoError(err)
	r.NoError(store.Save(small))

	loaded, err := store.Load()
	r.NoError(err)
	r.Equal(4, loaded.LeafCount())

	// Stale leaf slots from the bigger tree are gone.
	_, err = db.Get(leafKey(4))
	r.True(errors.Is(err, ErrNotFound))
	_, err = db.Get(leafKey(15))
	r.True(errors.Is(err, ErrNotFound))

	r.NoError(db.Close())
	r.NoError(os.RemoveAll(path))
}

func TestTreeStoreRejectsUnfinalized(t *testing.T) {
	r := require.New(t)

	store, db, path := openTestStore(t)

	tree := merkle.NewEmpty()
	_, err := tree.AddLeaf([]byte("leaf-0"))
	r.NoError(err)

	r.True(errors.Is(store.Save(tree), ErrNotFinalized))

	r.NoError(db.Close())
	r.NoError(os.RemoveAll(path))
}

func TestTreeStoreDetectsTampering(t *testing.T) {
	r := require.New(t)

	store, db, path := openTestStore(t)

	tree, err := merkle.New(testValues(4))
	r.NoError(err)
	r.NoError(store.Save(tree))

	// Flip one stored leaf behind the store's back.
	r.NoError(db.Put(leafKey(2), []byte("leaf-evil")))

	_, err = store.Load()
	r.True(errors.Is(err, ErrInvalidDigest))

	r.NoError(db.Close())
	r.NoError(os.RemoveAll(path))
}
