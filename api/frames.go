package api

import (
	"encoding/binary"
	"fmt"
)

// Leaf batches cross the wire as one blob: a big-endian value count
// followed by a length-prefixed record per value.

var ErrMalformedFrames = fmt.Errorf("malformed frames")

// EncodeValues packs an ordered value list into a single byte slice.
func EncodeValues(values [][]byte) []byte {
	size := 4
	for _, value := range values {
		size += 4 + len(value)
	}

	buf := make([]byte, 4, size)
	binary.BigEndian.PutUint32(buf, uint32(len(values)))

	for _, value := range values {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(value)))
		buf = append(buf, length[:]...)
		buf = append(buf, value...)
	}

	return buf
}

// DecodeValues unpacks a blob produced by EncodeValues.
func DecodeValues(raw []byte) ([][]byte, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("%w: short header", ErrMalformedFrames)
	}

	count := binary.BigEndian.Uint32(raw)
	raw = raw[4:]

	values := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(raw) < 4 {
			return nil, fmt.Errorf("%w: short length in record %d", ErrMalformedFrames, i)
		}

		length := binary.BigEndian.Uint32(raw)
		raw = raw[4:]

		if uint64(len(raw)) < uint64(length) {
			return nil, fmt.Errorf("%w: short value in record %d", ErrMalformedFrames, i)
		}

		values = append(values, append(make([]byte, 0, length), raw[:length]...))
		raw = raw[length:]
	}

	if len(raw) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedFrames, len(raw))
	}

	return values, nil
}
