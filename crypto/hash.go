// Package crypto provides the hash primitive the merkle core is built on.
// The combination rule for internal nodes is fixed here: left digest
// concatenated before right, no separator.
package crypto

import "crypto/sha256"

// DigestSize is the byte length of every digest produced by this package.
const DigestSize = sha256.Size

// Hash hashes bytes by SHA256
func Hash(value []byte) []byte {
	hash := sha256.Sum256(value)
	return hash[:]
}

// HashNodes hashes two child digests into their parent digest
func HashNodes(left []byte, right []byte) []byte {
	h := sha256.New()
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}
