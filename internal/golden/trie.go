// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow segment trie, implemented as
// a slice of sequences and values, as a golden reference for segtrie.
package golden

import (
	"fmt"
	"slices"
)

// GoldTrie is the brute-force reference, every operation is a linear scan.
type GoldTrie[K comparable, V any] []GoldTrieItem[K, V]

type GoldTrieItem[K comparable, V any] struct {
	Seq []K
	Val V
}

func (g GoldTrieItem[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", g.Seq, g.Val)
}

func (t *GoldTrie[K, V]) Insert(seq []K, val V) {
	for i, item := range *t {
		if slices.Equal(item.Seq, seq) {
			(*t)[i].Val = val // de-dupe
			return
		}
	}
	*t = append(*t, GoldTrieItem[K, V]{slices.Clone(seq), val})
}

func (t *GoldTrie[K, V]) Update(seq []K, cb func(V, bool) V) (val V) {
	for i, item := range *t {
		if slices.Equal(item.Seq, seq) {
			val = cb(item.Val, true)
			(*t)[i].Val = val
			return val
		}
	}
	// new val
	val = cb(val, false)

	*t = append(*t, GoldTrieItem[K, V]{slices.Clone(seq), val})
	return val
}

func (t GoldTrie[K, V]) Get(seq []K) (val V, ok bool) {
	for _, item := range t {
		if slices.Equal(item.Seq, seq) {
			return item.Val, true
		}
	}
	return val, false
}

func (t GoldTrie[K, V]) Contains(seq []K) bool {
	_, ok := t.Get(seq)
	return ok
}

// Lookup returns the longest stored sequence that is a prefix of seq.
func (t GoldTrie[K, V]) Lookup(seq []K) (lpm []K, val V, ok bool) {
	bestLen := -1

	for _, item := range t {
		if isPrefix(item.Seq, seq) && len(item.Seq) > bestLen {
			lpm = item.Seq
			val = item.Val
			ok = true
			bestLen = len(item.Seq)
		}
	}
	return lpm, val, ok
}

func (t GoldTrie[K, V]) BestMatch(seq []K) (lpm []K, ok bool) {
	lpm, _, ok = t.Lookup(seq)
	return lpm, ok
}

func (t GoldTrie[K, V]) Size() int {
	return len(t)
}

// isPrefix reports whether pfx is a prefix of seq, pfx == seq included.
func isPrefix[K comparable](pfx, seq []K) bool {
	return len(pfx) <= len(seq) && slices.Equal(pfx, seq[:len(pfx)])
}
