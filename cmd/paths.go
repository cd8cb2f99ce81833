// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path"
	"strings"
)

// readPaths reads one slash separated path per line,
// files ending in .gz are decompressed on the fly.
// Blank lines and lines starting with # are skipped.
func readPaths(file string) (paths []string, err error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var r io.Reader = fh
	if strings.HasSuffix(file, ".gz") {
		rgz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("gunzip %s: %w", file, err)
		}
		defer rgz.Close()
		r = rgz
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return paths, nil
}

// components converts a slash separated path into trie segments.
// The root "/" has no segments.
func components(p string) []string {
	p = path.Clean("/" + p)
	if p == "/" {
		return nil
	}
	return strings.Split(p[1:], "/")
}

// randomPaths returns n distinct paths of depth 1..maxDepth, segments
// drawn from a small per level vocabulary, so paths share prefixes
// like a real directory tree.
func randomPaths(prng *rand.Rand, n, maxDepth int) []string {
	set := make(map[string]struct{}, n)
	paths := make([]string, 0, n)

	// guard against a too small vocabulary for n
	for tries := 0; len(paths) < n && tries < 100*n; tries++ {
		depth := 1 + prng.IntN(maxDepth)

		var sb strings.Builder
		for level := range depth {
			fmt.Fprintf(&sb, "/l%d_%02d", level, prng.IntN(16))
		}

		p := sb.String()
		if _, ok := set[p]; ok {
			continue
		}
		set[p] = struct{}{}
		paths = append(paths, p)
	}

	return paths
}

// randomProbes extends random existing paths by a random tail,
// every probe has at least one match if the trie holds all paths.
func randomProbes(prng *rand.Rand, paths []string, n int) [][]string {
	probes := make([][]string, 0, n)
	for range n {
		segs := components(paths[prng.IntN(len(paths))])
		for range prng.IntN(3) {
			segs = append(segs, fmt.Sprintf("tail%d", prng.IntN(4)))
		}
		probes = append(probes, segs)
	}
	return probes
}
