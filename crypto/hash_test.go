package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	r := require.New(t)

	inputs := []string{"canopy", "merkle root", "flat index arena"}
	expects := []string{
		"fee5dfd46b125f371923dfd73b33fa40ecec5025f643991b6be24ad89546cab9",
		"799a04ec1676eb17f6792c74bbd3482bb9063e1274a084903d0bef83c5414231",
		"a6919b60150b352b2979bb75474d3fd507c661aae9c12b1735283c3b091008e3",
	}

	for i, input := range inputs {
		hash := Hash([]byte(input))
		r.Len(hash, DigestSize)
		r.Equal(expects[i], hex.EncodeToString(hash))
	}
}

func TestHashNodes(t *testing.T) {
	r := require.New(t)

	a := Hash([]byte("canopy"))
	b := Hash([]byte("merkle root"))

	inputs := []struct {
		left  []byte
		right []byte
	}{{a, b}, {b, a}, {a, a}}
	expects := []string{
		"42823bad79a50c61c9789031e48346ef66681c7500f3f6e52dec5fa1f272387f",
		"1da300f44bafa810e31f3920d85f349157b0479721d40052c3256852f1861246",
		"7a2da09e298fafa7c38cc841a20a7ec3791a7f5446b4b470d2592b2c253086da",
	}

	for i, input := range inputs {
		hash := HashNodes(input.left, input.right)
		r.Equal(expects[i], hex.EncodeToString(hash))
	}
}

func TestHashNodesOrderSensitive(t *testing.T) {
	r := require.New(t)

	left := Hash([]byte("canopy"))
	right := Hash([]byte("merkle root"))

	r.NotEqual(HashNodes(left, right), HashNodes(right, left))

	// Combining must equal hashing the plain concatenation.
	r.Equal(Hash(append(append([]byte{}, left...), right...)), HashNodes(left, right))
}
