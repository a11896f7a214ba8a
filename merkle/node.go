package merkle

// NodeID is the position of a node in the tree's flat store. It is the
// node's identity for the lifetime of the tree; nodes are never moved or
// reindexed.
type NodeID int

const (
	// RootID is the slot reserved for the root before construction
	// determines its content.
	RootID NodeID = 0

	// NilID marks an absent link: no parent on the root, no sibling at a
	// row boundary, no children on a leaf.
	NilID NodeID = -1
)

// Node is one tree vertex, leaf or internal. All links are store indices,
// not references.
type Node struct {
	parent       NodeID
	siblingLeft  NodeID
	siblingRight NodeID
	childLeft    NodeID
	childRight   NodeID

	value  []byte
	digest []byte
}

func newNode() Node {
	return Node{
		parent:       NilID,
		siblingLeft:  NilID,
		siblingRight: NilID,
		childLeft:    NilID,
		childRight:   NilID,
	}
}

// IsLeaf reports whether the node holds an input value and no children.
func (n *Node) IsLeaf() bool {
	return n.childLeft == NilID
}

// Value returns the original input value for a leaf, nil for an internal
// node.
func (n *Node) Value() []byte {
	return n.value
}

// Digest returns the node's content hash. It is nil until the tree is
// finalized.
func (n *Node) Digest() []byte {
	return n.digest
}

// Parent returns the parent's id, or NilID for the root.
func (n *Node) Parent() NodeID {
	return n.parent
}

// SiblingLeft returns the id of the left neighbor in the same row, or
// NilID at the row boundary.
func (n *Node) SiblingLeft() NodeID {
	return n.siblingLeft
}

// SiblingRight returns the id of the right neighbor in the same row, or
// NilID at the row boundary.
func (n *Node) SiblingRight() NodeID {
	return n.siblingRight
}

// ChildLeft returns the left child's id, or NilID for a leaf.
func (n *Node) ChildLeft() NodeID {
	return n.childLeft
}

// ChildRight returns the right child's id, or NilID for a leaf.
func (n *Node) ChildRight() NodeID {
	return n.childRight
}
