// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package segtrie

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// a small alphabet forces lots of shared prefixes and hits
var alphabet = []string{"etc", "bin", "usr", "lib", "echo", "env", "tmp", ""}

// randomSeq returns a sequence of up to maxLen segments from alphabet,
// the empty sequence included.
func randomSeq(prng *rand.Rand, maxLen int) []string {
	n := prng.IntN(maxLen + 1)
	s := make([]string, n)
	for i := range s {
		s[i] = alphabet[prng.IntN(len(alphabet))]
	}
	return s
}

// randomSeqs returns n random sequences, duplicates are possible.
func randomSeqs(prng *rand.Rand, n, maxLen int) [][]string {
	seqs := make([][]string, n)
	for i := range seqs {
		seqs[i] = randomSeq(prng, maxLen)
	}
	return seqs
}

// randomPathSeqs returns n sequences with segments from a large
// alphabet, sparse hits, like real filesystem paths.
func randomPathSeqs(prng *rand.Rand, n, maxLen int) [][]string {
	seqs := make([][]string, n)
	for i := range seqs {
		s := make([]string, 1+prng.IntN(maxLen))
		for j := range s {
			s[j] = fmt.Sprintf("d%03d", prng.IntN(64))
		}
		seqs[i] = s
	}
	return seqs
}

// splitPath is the naive caller side conversion, every slash separates
// two segments, empty segments included.
func splitPath(s string) []string {
	return strings.Split(s, "/")
}
