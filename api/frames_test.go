package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFramesRoundTrip(t *testing.T) {
	r := require.New(t)

	values := [][]byte{[]byte("a"), []byte(""), []byte("longer value"), {0x00, 0xff}}
	decoded, err := DecodeValues(EncodeValues(values))
	r.NoError(err)
	r.Equal(values, decoded)

	decoded, err = DecodeValues(EncodeValues(nil))
	r.NoError(err)
	r.Empty(decoded)
}

func TestDecodeValuesMalformed(t *testing.T) {
	r := require.New(t)

	raw := EncodeValues([][]byte{[]byte("a"), []byte("b")})

	for _, bad := range [][]byte{
		nil,
		raw[:3],
		raw[:len(raw)-1],
		append(append([]byte(nil), raw...), 0x01),
	} {
		_, err := DecodeValues(bad)
		r.True(errors.Is(err, ErrMalformedFrames))
	}
}
