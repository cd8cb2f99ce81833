// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command cmd loads paths into a segment trie and runs a longest-prefix
// match probe loop, for profiling with pprof or perf.
package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	pathFile = flag.String("paths", "", "file with one path per line, gzipped if it ends in .gz")
	numPaths = flag.Int("n", 10_000, "number of random paths, if no -paths file is given")
	maxDepth = flag.Int("depth", 8, "max depth of random paths")
	probes   = flag.Int("probes", 1_000, "number of probe paths")
	loops    = flag.Int("loops", 1_000, "probe loops per worker")
	workers  = flag.Int("workers", 1, "concurrent probe workers")
	seed     = flag.Uint64("seed", 42, "seed for the random generator")
	debug    = flag.Bool("debug", false, "log every probe of the first loop")
)

func main() {
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *workers < 1 || *probes < 1 || *loops < 1 {
		log.Fatal().Int("workers", *workers).Int("probes", *probes).Int("loops", *loops).Msg("flags must be positive")
	}

	prng := rand.New(rand.NewPCG(*seed, *seed))

	var paths []string
	if *pathFile != "" {
		var err error
		if paths, err = readPaths(*pathFile); err != nil {
			log.Fatal().Err(err).Str("file", *pathFile).Msg("read paths")
		}
	} else {
		paths = randomPaths(prng, *numPaths, *maxDepth)
	}

	if len(paths) == 0 {
		log.Fatal().Msg("no paths to insert")
	}

	st := NewSyncTrie()

	start := time.Now()
	for i, p := range paths {
		st.Insert(components(p), i)
	}
	log.Info().
		Int("paths", len(paths)).
		Int("size", st.Size()).
		Dur("elapsed", time.Since(start)).
		Msg("inserted")

	probeSeqs := randomProbes(prng, paths, *probes)

	for _, q := range probeSeqs {
		if e := log.Debug(); e.Enabled() {
			lpm, ok := st.BestMatch(q)
			e.Str("probe", "/"+strings.Join(q, "/")).
				Str("lpm", "/"+strings.Join(lpm, "/")).
				Bool("ok", ok).
				Bool("exact", st.Contains(q)).
				Msg("probe")
		}
	}

	start = time.Now()
	hits := probeLoop(st, probeSeqs, *workers, *loops)
	elapsed := time.Since(start)

	total := *workers * *loops * len(probeSeqs)
	log.Info().
		Int("workers", *workers).
		Int("lookups", total).
		Int("hits", hits).
		Dur("elapsed", elapsed).
		Dur("per_lookup", elapsed/time.Duration(total)).
		Msg("probed")
}

// probeLoop runs BestMatch over all probes, loops times per worker,
// and returns the number of matches.
func probeLoop(st *SyncTrie, probeSeqs [][]string, workers, loops int) int {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		hits int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			n := 0
			for range loops {
				for _, q := range probeSeqs {
					if _, ok := st.BestMatch(q); ok {
						n++
					}
				}
			}

			mu.Lock()
			hits += n
			mu.Unlock()
		}()
	}

	wg.Wait()
	return hits
}
