// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package segtrie provides a generic trie keyed by sequences of segments
// instead of characters or bits, with longest-prefix matching.
//
// A segment is any comparable value: a path component, a route part,
// a namespace tuple element. Callers split their keys into segments,
// the trie never looks inside a segment.
//
//	tr := new(segtrie.Trie[string, string])
//	tr.Insert([]string{"home"}, "/dev/sda2")
//	tr.Insert([]string{"home", "shared", "media"}, "nas:/media")
//
//	lpm, ok := tr.BestMatch([]string{"home", "shared", "media", "film.mkv"})
//	// lpm: [home shared media], ok: true
//
// Only explicitly inserted sequences take part in matching. Nodes that
// exist merely as a step towards a longer sequence are neither contained
// nor matched.
//
// The trie is a plain multiway tree of maps, all operations walk at most
// one node per segment of the query, independent of the trie size.
// No operation returns an error, not found is a normal result.
//
// A Trie is not safe for concurrent modification, wrap it in a
// sync.RWMutex if goroutines share it.
package segtrie
