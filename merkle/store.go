package merkle

import "fmt"

// nodeStore is the flat, index-addressed arena backing a tree. It is
// append-only: slots are never removed, and only single-slot in-place
// updates are allowed (the root's content is written into slot 0 once
// construction determines it).
type nodeStore struct {
	nodes []Node

	// capacity is the exact slot count predicted by TreeSize, or zero
	// while a tree is still being populated leaf by leaf.
	capacity int
}

func newNodeStore(capacity int) *nodeStore {
	return &nodeStore{nodes: make([]Node, 0, capacity), capacity: capacity}
}

// append adds a node and returns its id.
func (s *nodeStore) append(n Node) NodeID {
	s.nodes = append(s.nodes, n)
	return NodeID(len(s.nodes) - 1)
}

// get returns the addressed slot. An out-of-range id is a programming
// error, not a recoverable condition.
func (s *nodeStore) get(id NodeID) *Node {
	if id < 0 || int(id) >= len(s.nodes) {
		panic(fmt.Sprintf("merkle: node id out of range: %d of %d", id, len(s.nodes)))
	}

	return &s.nodes[id]
}

// set overwrites a single existing slot.
func (s *nodeStore) set(id NodeID, n Node) {
	if id < 0 || int(id) >= len(s.nodes) {
		panic(fmt.Sprintf("merkle: node id out of range: %d of %d", id, len(s.nodes)))
	}

	s.nodes[id] = n
}

func (s *nodeStore) len() int {
	return len(s.nodes)
}
