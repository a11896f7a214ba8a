package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeSize(t *testing.T) {
	r := require.New(t)

	sizes := map[uint64]uint64{1: 1, 2: 3, 4: 7, 8: 15, 16: 31, 1024: 2047}
	for leaves, want := range sizes {
		r.Equal(want, TreeSize(leaves))
	}
}

func TestTreeSizeMatchesFormula(t *testing.T) {
	r := require.New(t)

	// 2n - 1 for every power-of-two leaf count.
	for n := uint64(1); n <= 1<<20; n <<= 1 {
		r.Equal(2*n-1, TreeSize(n))
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	r := require.New(t)

	for n := uint64(1); n <= 1<<20; n <<= 1 {
		r.True(IsPowerOfTwo(n))
	}

	for _, n := range []uint64{0, 3, 5, 6, 7, 9, 12, 1023, 1025} {
		r.False(IsPowerOfTwo(n), "n=%d", n)
	}
}
