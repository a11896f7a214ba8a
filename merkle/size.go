package merkle

import "math/bits"

// TreeSize returns the total node count of a complete tree over leaves
// leaf values. Defined only for power-of-two leaf counts; callers
// validate with IsPowerOfTwo before sizing storage.
func TreeSize(leaves uint64) uint64 {
	if leaves == 1 {
		return leaves
	}

	return leaves + TreeSize(leaves/2)
}

// IsPowerOfTwo reports whether n is a power of two. Zero is not.
func IsPowerOfTwo(n uint64) bool {
	return bits.OnesCount64(n) == 1
}
