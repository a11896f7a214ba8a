package merkle

// Read-only neighbor lookups. Each is an O(1) index dereference returning
// nil when the link is absent: siblings at a row boundary, children on a
// leaf. An out-of-range id panics.

// SiblingLeft returns the node to the left of id in the same row.
func (t *Tree) SiblingLeft(id NodeID) *Node {
	return t.deref(t.store.get(id).siblingLeft)
}

// SiblingRight returns the node to the right of id in the same row.
func (t *Tree) SiblingRight(id NodeID) *Node {
	return t.deref(t.store.get(id).siblingRight)
}

// ChildLeft returns id's left child.
func (t *Tree) ChildLeft(id NodeID) *Node {
	return t.deref(t.store.get(id).childLeft)
}

// ChildRight returns id's right child.
func (t *Tree) ChildRight(id NodeID) *Node {
	return t.deref(t.store.get(id).childRight)
}

func (t *Tree) deref(id NodeID) *Node {
	if id == NilID {
		return nil
	}

	return t.store.get(id)
}
