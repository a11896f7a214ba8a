package merkle

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"

	"canopy/crypto"
)

// ProofStep is one hop of an inclusion proof: the digest of the sibling
// passed on the way up, and which side of the running digest it sits on.
type ProofStep struct {
	// Left is true when the sibling is the left operand of the
	// combination at this level.
	Left bool

	// Digest is the sibling's content hash.
	Digest []byte
}

// Proof is the ordered sibling path from a leaf to the root.
type Proof []ProofStep

// Proof returns the inclusion proof for the leaf at input position i.
func (t *Tree) Proof(i uint64) (Proof, error) {
	if !t.built {
		return nil, ErrNotFinalized
	}
	if i >= uint64(t.leaves) {
		return nil, fmt.Errorf("%w: leaf %d of %d", ErrOutOfRange, i, t.leaves)
	}

	// A single-node tree proves itself: the leaf digest is the root.
	if t.leaves == 1 {
		return Proof{}, nil
	}

	proof := make(Proof, 0, bits.TrailingZeros64(uint64(t.leaves)))
	id := NodeID(i) + 1

	for id != RootID {
		node := t.store.get(id)
		parent := t.store.get(node.parent)

		if parent.childLeft == id {
			proof = append(proof, ProofStep{Digest: t.store.get(parent.childRight).digest})
		} else {
			proof = append(proof, ProofStep{Left: true, Digest: t.store.get(parent.childLeft).digest})
		}

		id = node.parent
	}

	return proof, nil
}

// VerifyProof reports whether value is committed by root according to
// proof. It is pure: it recomputes the leaf digest and folds each step's
// sibling onto it in the recorded order, so a verifier needs no tree at
// all, only the value, the proof and the expected root digest.
func VerifyProof(value []byte, proof Proof, root []byte) bool {
	digest := crypto.Hash(value)

	for _, step := range proof {
		if step.Left {
			digest = crypto.HashNodes(step.Digest, digest)
		} else {
			digest = crypto.HashNodes(digest, step.Digest)
		}
	}

	return bytes.Equal(digest, root)
}

const proofSideLeft = byte(1)

// Marshal encodes the proof as a big-endian step count followed by one
// (side byte, digest length, digest) record per step.
func (p Proof) Marshal() []byte {
	buf := make([]byte, 4, 4+len(p)*(5+crypto.DigestSize))
	binary.BigEndian.PutUint32(buf, uint32(len(p)))

	for _, step := range p {
		side := byte(0)
		if step.Left {
			side = proofSideLeft
		}

		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(step.Digest)))

		buf = append(buf, side)
		buf = append(buf, size[:]...)
		buf = append(buf, step.Digest...)
	}

	return buf
}

// UnmarshalProof decodes a proof produced by Marshal.
func UnmarshalProof(raw []byte) (Proof, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("%w: short header", ErrMalformedProof)
	}

	count := binary.BigEndian.Uint32(raw)
	raw = raw[4:]

	proof := make(Proof, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(raw) < 5 {
			return nil, fmt.Errorf("%w: short step %d", ErrMalformedProof, i)
		}

		side := raw[0]
		size := binary.BigEndian.Uint32(raw[1:5])
		raw = raw[5:]

		if uint64(len(raw)) < uint64(size) {
			return nil, fmt.Errorf("%w: short digest in step %d", ErrMalformedProof, i)
		}

		proof = append(proof, ProofStep{
			Left:   side == proofSideLeft,
			Digest: append([]byte(nil), raw[:size]...),
		})
		raw = raw[size:]
	}

	if len(raw) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedProof, len(raw))
	}

	return proof, nil
}
