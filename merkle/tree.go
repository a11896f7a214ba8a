// Package merkle builds a binary hash tree over an ordered, fixed input
// collection and serves membership proofs against its root digest.
//
// The tree is an arena: one flat node store addressed by NodeID, with
// parent, child and sibling links held as indices. The root always lives
// at slot 0, leaves occupy slots 1..n in input order, and parent rows
// follow bottom-up. A tree is built once and is immutable afterwards;
// a finalized tree is safe for concurrent readers.
package merkle

import (
	"fmt"

	"canopy/crypto"
)

var (
	ErrInvalidInputSize = fmt.Errorf("invalid input size")
	ErrOutOfRange       = fmt.Errorf("out of range")
	ErrCapacityMismatch = fmt.Errorf("capacity mismatch")
	ErrFinalized        = fmt.Errorf("tree already finalized")
	ErrNotFinalized     = fmt.Errorf("tree not finalized")
	ErrMalformedProof   = fmt.Errorf("malformed proof")
)

// Tree owns its node store exclusively. Indices are stable for the
// tree's lifetime; there is no deletion or reindexing.
type Tree struct {
	store  *nodeStore
	leaves int
	built  bool
}

// New builds a complete tree over values, computes every digest and
// returns the finalized tree. The input length must be a power of two;
// anything else fails with ErrInvalidInputSize before any allocation.
func New(values [][]byte) (*Tree, error) {
	if err := validLeafCount(uint64(len(values))); err != nil {
		return nil, err
	}

	t := &Tree{store: newNodeStore(int(TreeSize(uint64(len(values)))))}

	if len(values) == 1 {
		// The sole leaf is the root, no pairing.
		root := newNode()
		root.value = append([]byte(nil), values[0]...)
		t.store.append(root)
		t.leaves = 1
		t.finalize()

		return t, nil
	}

	// Slot 0 is reserved for the eventual root.
	t.store.append(newNode())

	for _, value := range values {
		t.addLeaf(value)
	}

	if err := t.buildParents(); err != nil {
		return nil, err
	}

	return t, nil
}

// NewEmpty returns a tree holding only the reserved root slot. Populate
// it with AddLeaf and finish with BuildParents.
func NewEmpty() *Tree {
	t := &Tree{store: newNodeStore(0)}
	t.store.append(newNode())

	return t
}

// AddLeaf appends one leaf in input order and links it into the leaf row.
// It fails with ErrFinalized once BuildParents has run.
func (t *Tree) AddLeaf(value []byte) (NodeID, error) {
	if t.built {
		return NilID, ErrFinalized
	}

	return t.addLeaf(value), nil
}

func (t *Tree) addLeaf(value []byte) NodeID {
	id := NodeID(t.store.len())

	node := newNode()
	node.value = append([]byte(nil), value...)

	// Slot 0 is the root; the first leaf has no left neighbor.
	if id > 1 {
		node.siblingLeft = id - 1
		t.store.get(id - 1).siblingRight = id
	}

	t.store.append(node)
	t.leaves++

	return id
}

// BuildParents pairs the leaf row bottom-up into parent rows, writes the
// root into slot 0, computes digests and freezes the tree. The leaf count
// must be a power of two >= 1.
func (t *Tree) BuildParents() error {
	if t.built {
		return ErrFinalized
	}
	if err := validLeafCount(uint64(t.leaves)); err != nil {
		return err
	}

	t.store.capacity = int(TreeSize(uint64(t.leaves)))

	if t.leaves == 1 {
		// Promote the sole leaf into the root slot.
		leaf := *t.store.get(1)
		t.store.set(RootID, leaf)
		t.store.nodes = t.store.nodes[:1]
		t.finalize()

		return nil
	}

	return t.buildParents()
}

// buildParents consumes rows two nodes at a time. Row boundaries are
// explicit loop state: rowStart is the id of the row's leftmost node and
// rowLen its width, halving per row until the final pair becomes the root.
func (t *Tree) buildParents() error {
	rowStart := NodeID(1)
	rowLen := t.leaves

	for rowLen > 1 {
		nextStart := NodeID(t.store.len())

		for i := 0; i < rowLen; i += 2 {
			leftID := rowStart + NodeID(i)
			rightID := leftID + 1

			if rowLen == 2 {
				// Final pairing: the parent is the root and goes
				// into the reserved slot instead of a new one.
				root := newNode()
				root.childLeft = leftID
				root.childRight = rightID
				t.store.set(RootID, root)

				t.store.get(leftID).parent = RootID
				t.store.get(rightID).parent = RootID

				continue
			}

			parent := newNode()
			parent.childLeft = leftID
			parent.childRight = rightID
			if i > 0 {
				parent.siblingLeft = NodeID(t.store.len() - 1)
			}

			parentID := t.store.append(parent)
			if i > 0 {
				t.store.get(parentID - 1).siblingRight = parentID
			}

			t.store.get(leftID).parent = parentID
			t.store.get(rightID).parent = parentID
		}

		rowStart = nextStart
		rowLen /= 2
	}

	if t.store.len() != t.store.capacity {
		return fmt.Errorf("%w: built %d nodes, reserved %d",
			ErrCapacityMismatch, t.store.len(), t.store.capacity)
	}

	t.finalize()

	return nil
}

// finalize runs the digest pass. Children always occupy lower slots than
// their parent, root excepted, so one ascending sweep from slot 1 has both
// child digests ready before every internal node; the root goes last.
func (t *Tree) finalize() {
	for id := 1; id < t.store.len(); id++ {
		t.hashNode(NodeID(id))
	}
	t.hashNode(RootID)

	t.built = true
}

func (t *Tree) hashNode(id NodeID) {
	node := t.store.get(id)
	if node.IsLeaf() {
		node.digest = crypto.Hash(node.value)
		return
	}

	node.digest = crypto.HashNodes(
		t.store.get(node.childLeft).digest,
		t.store.get(node.childRight).digest,
	)
}

// Size returns the total node count.
func (t *Tree) Size() int {
	return t.store.len()
}

// LeafCount returns the number of leaves added so far.
func (t *Tree) LeafCount() int {
	return t.leaves
}

// Finalized reports whether BuildParents has completed.
func (t *Tree) Finalized() bool {
	return t.built
}

// Node returns the node stored at id. An out-of-range id panics.
func (t *Tree) Node(id NodeID) *Node {
	return t.store.get(id)
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.store.get(RootID)
}

// RootDigest returns the digest committing the whole input collection.
func (t *Tree) RootDigest() ([]byte, error) {
	if !t.built {
		return nil, ErrNotFinalized
	}

	return t.store.get(RootID).digest, nil
}

// Leaf returns the node holding the i-th input value.
func (t *Tree) Leaf(i uint64) (*Node, error) {
	if i >= uint64(t.leaves) {
		return nil, fmt.Errorf("%w: leaf %d of %d", ErrOutOfRange, i, t.leaves)
	}
	if t.store.len() == 1 {
		return t.store.get(RootID), nil
	}

	return t.store.get(NodeID(i) + 1), nil
}

func validLeafCount(n uint64) error {
	if n == 0 || !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d leaves", ErrInvalidInputSize, n)
	}

	return nil
}
