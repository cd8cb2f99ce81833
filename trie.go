// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package segtrie

import (
	"iter"
	"slices"
)

// Trie maps sequences of segments K to payloads V.
// The zero value is ready to use.
//
// A Trie is not safe for concurrent use if any goroutine modifies it,
// concurrent readers are fine. See the SyncTrie example for a wrapper.
type Trie[K comparable, V any] struct {
	root *node[K, V]

	// number of terminal nodes
	size int
}

// New returns an empty trie, equivalent to new(Trie[K, V]).
func New[K comparable, V any]() *Trie[K, V] {
	return new(Trie[K, V])
}

// init the root node on first modification, no constructor needed.
func (t *Trie[K, V]) init() {
	if t.root == nil {
		t.root = new(node[K, V])
	}
}

// Insert adds seq to the trie with value val.
// If seq is already present, its value is set to val.
// The empty sequence stores val at the root.
func (t *Trie[K, V]) Insert(seq []K, val V) {
	t.InsertSeq(slices.Values(seq), val)
}

// InsertSeq is like [Trie.Insert], but consumes the segments from a
// single-pass iterator.
func (t *Trie[K, V]) InsertSeq(seq iter.Seq[K], val V) {
	n := t.insertPath(seq)

	if !n.setValue(val) {
		t.size++
	}
}

// Update sets or modifies the value at seq with a callback function.
// The callback is called with (value, found) and returns the new value,
// which is stored at seq and also returned.
//
// If seq is not yet present it is created, as with [Trie.Insert].
func (t *Trie[K, V]) Update(seq []K, cb func(val V, found bool) V) (newVal V) {
	n := t.insertPath(slices.Values(seq))

	oldVal, found := n.getValue()
	newVal = cb(oldVal, found)

	if !n.setValue(newVal) {
		t.size++
	}
	return newVal
}

// insertPath walks down seq and creates all missing nodes.
// Returns the node at the end of seq.
func (t *Trie[K, V]) insertPath(seq iter.Seq[K]) *node[K, V] {
	t.init()

	n := t.root
	for seg := range seq {
		n = n.getOrCreateChild(seg)
	}
	return n
}

// Contains reports whether seq was inserted.
//
// Sequences that only exist as a prefix of a longer inserted sequence
// are not contained.
func (t *Trie[K, V]) Contains(seq []K) bool {
	return t.ContainsSeq(slices.Values(seq))
}

// ContainsSeq is like [Trie.Contains] for a single-pass iterator.
func (t *Trie[K, V]) ContainsSeq(seq iter.Seq[K]) bool {
	_, ok := t.walk(seq).getValue()
	return ok
}

// Get returns the value stored at seq and true,
// or the zero value and false if seq was not inserted.
func (t *Trie[K, V]) Get(seq []K) (val V, ok bool) {
	return t.GetSeq(slices.Values(seq))
}

// GetSeq is like [Trie.Get] for a single-pass iterator.
func (t *Trie[K, V]) GetSeq(seq iter.Seq[K]) (val V, ok bool) {
	return t.walk(seq).getValue()
}

// walk follows seq from the root without creating nodes.
// Returns nil as soon as a segment has no child.
func (t *Trie[K, V]) walk(seq iter.Seq[K]) *node[K, V] {
	if t == nil || t.root == nil {
		return nil
	}

	n := t.root
	for seg := range seq {
		if n = n.getChild(seg); n == nil {
			return nil
		}
	}
	return n
}

// BestMatch returns the longest inserted sequence that is a prefix
// of seq, or nil and false if there is none.
//
// If the empty sequence was inserted, it matches every query
// and is returned as an empty, non-nil slice.
//
// The returned slice is newly allocated and does not share
// memory with seq.
func (t *Trie[K, V]) BestMatch(seq []K) (lpm []K, ok bool) {
	lpm, _, ok = t.lpm(slices.Values(seq))
	return lpm, ok
}

// BestMatchSeq is like [Trie.BestMatch] for a single-pass iterator.
// The iterator is stopped as soon as no deeper match is possible.
func (t *Trie[K, V]) BestMatchSeq(seq iter.Seq[K]) (lpm []K, ok bool) {
	lpm, _, ok = t.lpm(seq)
	return lpm, ok
}

// Lookup does a longest-prefix match for seq and returns the matching
// sequence, the associated value and true, or false if nothing matched.
//
// Lookup is BestMatch plus the payload, in a single walk.
func (t *Trie[K, V]) Lookup(seq []K) (lpm []K, val V, ok bool) {
	return t.lpm(slices.Values(seq))
}

// LookupSeq is like [Trie.Lookup] for a single-pass iterator.
func (t *Trie[K, V]) LookupSeq(seq iter.Seq[K]) (lpm []K, val V, ok bool) {
	return t.lpm(seq)
}

// lpm walks down seq in one pass, no backtracking. Every terminal node
// on the way replaces the previous candidate, the walk ends at the first
// missing child.
func (t *Trie[K, V]) lpm(seq iter.Seq[K]) (lpm []K, val V, ok bool) {
	if t == nil || t.root == nil {
		return nil, val, false
	}

	n := t.root

	// the root counts as zero-length match
	val, ok = n.getValue()

	// segments of the walked path, lpm is a prefix of it
	var path []K
	lpmLen := 0

	for seg := range seq {
		if n = n.getChild(seg); n == nil {
			break
		}
		path = append(path, seg)

		if n.terminal {
			val, ok = n.val, true
			lpmLen = len(path)
		}
	}

	if !ok {
		return nil, val, false
	}

	// cap the slice, appends by the caller must not clobber the tail
	lpm = path[:lpmLen:lpmLen]
	if lpm == nil {
		lpm = []K{}
	}
	return lpm, val, true
}

// Size returns the number of inserted sequences.
func (t *Trie[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}
