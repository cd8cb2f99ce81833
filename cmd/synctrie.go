// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"sync"

	"github.com/gaissmai/segtrie"
)

// SyncTrie guards a path trie with a RWMutex, BestMatch and Contains
// share the read lock, Insert is exclusive.
type SyncTrie struct {
	sync.RWMutex
	trie segtrie.Trie[string, int]
}

func NewSyncTrie() *SyncTrie {
	return new(SyncTrie)
}

func (st *SyncTrie) Insert(seq []string, val int) {
	st.Lock()
	defer st.Unlock()
	st.trie.Insert(seq, val)
}

func (st *SyncTrie) Contains(seq []string) bool {
	st.RLock()
	defer st.RUnlock()
	return st.trie.Contains(seq)
}

func (st *SyncTrie) BestMatch(seq []string) ([]string, bool) {
	st.RLock()
	defer st.RUnlock()
	return st.trie.BestMatch(seq)
}

func (st *SyncTrie) Size() int {
	st.RLock()
	defer st.RUnlock()
	return st.trie.Size()
}
