// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package segtrie

import "github.com/gaissmai/segtrie/internal/value"

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], [Trie.Clone] uses its Clone method
// to copy the payload, otherwise the payload is copied by assignment.
type Cloner[V any] interface {
	Clone() V
}

// Clone returns a deep copy of the trie. The copy shares no nodes with t,
// modifications of either one never show up in the other.
//
// Payloads implementing [Cloner] are deep cloned, all others are
// copied by value.
func (t *Trie[K, V]) Clone() *Trie[K, V] {
	if t == nil {
		return nil
	}

	c := new(Trie[K, V])
	c.root = t.root.cloneRec(value.CloneFnFactory[V]())
	c.size = t.size

	return c
}
