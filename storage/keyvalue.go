package storage

import "encoding/binary"

const (
	leafCountKey = "s"
	rootKey      = "r"
	leafPrefix   = "l"
)

func leafKey(i uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, i)

	return append([]byte(leafPrefix), key...)
}

func leafCountValue(n uint64) []byte {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, n)

	return value
}
