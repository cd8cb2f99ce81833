// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package segtrie

// node is a trie node, its position in the tree is the segment path
// from the root down to this node. The path itself is not stored,
// it is rebuilt by the traversal that reaches the node.
type node[K comparable, V any] struct {
	// children keyed by the next segment, nil until the first child is inserted
	children map[K]*node[K, V]

	// payload, only meaningful if terminal is set
	val V

	// terminal marks an explicitly inserted sequence, as opposed to
	// a waypoint created while inserting a longer one.
	// A zero V is a valid payload, so the payload can't flag this itself.
	terminal bool
}

// getChild returns the child for seg or nil.
// The nil node has no children.
func (n *node[K, V]) getChild(seg K) *node[K, V] {
	if n == nil {
		return nil
	}
	return n.children[seg]
}

// getOrCreateChild returns the child for seg, a missing child is
// created as waypoint and inserted.
func (n *node[K, V]) getOrCreateChild(seg K) *node[K, V] {
	if kid, ok := n.children[seg]; ok {
		return kid
	}

	if n.children == nil {
		n.children = make(map[K]*node[K, V], 1)
	}

	kid := new(node[K, V])
	n.children[seg] = kid
	return kid
}

// setValue sets the payload and marks the node terminal.
// Reports whether the node was terminal before.
func (n *node[K, V]) setValue(val V) (exists bool) {
	exists = n.terminal
	n.val = val
	n.terminal = true
	return exists
}

// getValue returns the payload and true if the node is terminal.
func (n *node[K, V]) getValue() (val V, ok bool) {
	if n == nil || !n.terminal {
		return val, false
	}
	return n.val, true
}

// cloneRec returns a deep copy of the subtree rooted at n.
// Payloads are copied with cloneFn, or just by value if cloneFn is nil.
func (n *node[K, V]) cloneRec(cloneFn func(V) V) *node[K, V] {
	if n == nil {
		return nil
	}

	c := &node[K, V]{
		val:      n.val,
		terminal: n.terminal,
	}

	if cloneFn != nil && n.terminal {
		c.val = cloneFn(n.val)
	}

	if len(n.children) == 0 {
		return c
	}

	c.children = make(map[K]*node[K, V], len(n.children))
	for seg, kid := range n.children {
		c.children[seg] = kid.cloneRec(cloneFn)
	}

	return c
}

// equalRec compares two subtrees recursively.
// Waypoints compare equal regardless of their zero payload,
// terminal payloads are compared with eq.
func (n *node[K, V]) equalRec(o *node[K, V], eq func(V, V) bool) bool {
	if n == nil || o == nil {
		return n.isEmpty() && o.isEmpty()
	}
	if n == o {
		return true
	}

	if n.terminal != o.terminal {
		return false
	}
	if n.terminal && !eq(n.val, o.val) {
		return false
	}

	if len(n.children) != len(o.children) {
		return false
	}

	for seg, nKid := range n.children {
		oKid, ok := o.children[seg]
		if !ok {
			return false
		}
		if !nKid.equalRec(oKid, eq) {
			return false
		}
	}

	return true
}

// isEmpty reports whether n carries neither payload nor children.
// The nil node is empty.
func (n *node[K, V]) isEmpty() bool {
	return n == nil || (!n.terminal && len(n.children) == 0)
}

// nodeStats counts all nodes and the terminal nodes of the subtree
// rooted at n, including n itself.
func (n *node[K, V]) nodeStats() (nodes, terminals int) {
	if n == nil {
		return 0, 0
	}

	nodes = 1
	if n.terminal {
		terminals = 1
	}

	for _, kid := range n.children {
		kn, kt := kid.nodeStats()
		nodes += kn
		terminals += kt
	}
	return nodes, terminals
}
