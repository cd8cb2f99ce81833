// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package segtrie

import "github.com/gaissmai/segtrie/internal/value"

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal reports whether t and o hold the same sequences with equal values.
//
// Values are compared with their Equal method if V implements [Equaler],
// otherwise with [reflect.DeepEqual]. A nil trie equals an empty trie.
func (t *Trie[K, V]) Equal(o *Trie[K, V]) bool {
	if t == o {
		return true
	}

	if t.Size() != o.Size() {
		return false
	}

	var tRoot, oRoot *node[K, V]
	if t != nil {
		tRoot = t.root
	}
	if o != nil {
		oRoot = o.root
	}

	return tRoot.equalRec(oRoot, value.Equal[V])
}
