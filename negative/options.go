// SPDX-License-Identifier: MIT

// Package negative: functional configuration for the cleaning pipeline.
// This file defines:
//   - Option (functional options over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves defaults.
//
// Notes:
//   - Randomness is explicit: WithSeed or WithRand make Balance reproducible.
//     Without either, a fresh PCG source is seeded from the runtime generator.
//   - A Result draws one seed from its source at construction and rebuilds a
//     private PCG from that seed on every step, so steps never share state.
//   - ChunkSize bounds the live part of the overlap matrix Nᵗ·P: at most one
//     chunk of negative columns per worker is materialised at a time.
//   - Workers > 1 evaluates chunks concurrently; chunks write disjoint ranges,
//     so results are identical for any worker count.
package negative

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultChunkSize is the number of negative edges processed per overlap chunk.
	DefaultChunkSize = 1 << 16

	// DefaultWorkers evaluates chunks sequentially.
	DefaultWorkers = 1

	// DefaultDevice is the device token reported when a context leaves it empty.
	DefaultDevice = "cpu"

	// seedStream is the PCG stream constant paired with a seed.
	seedStream = 0x9e3779b97f4a7c15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicChunkSizeInvalid = "negative: WithChunkSize: size must be > 0"
	panicWorkersInvalid   = "negative: WithWorkers: workers must be > 0"
	panicRandNil          = "negative: WithRand(nil)"
	panicLoggerNil        = "negative: WithLogger(nil)"
)

// Option mutates internal options. Safe to apply repeatedly (later wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	chunkSize int
	workers   int
	src       rand.Source
	logger    *zap.Logger
}

// WithChunkSize sets how many negative edges one overlap chunk covers.
// Panics when size <= 0.
func WithChunkSize(size int) Option {
	if size <= 0 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *options) { o.chunkSize = size }
}

// WithWorkers bounds the number of chunks evaluated concurrently.
// Panics when n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithSeed makes edge selection in Balance reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.src = seededSource(seed) }
}

// WithRand supplies an explicit random source for Balance. Panics on nil.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic(panicRandNil)
	}

	return func(o *options) { o.src = src }
}

// WithLogger attaches a structured logger. Panics on nil; use zap.NewNop to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		chunkSize: DefaultChunkSize,
		workers:   DefaultWorkers,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.src == nil {
		o.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return o
}

// srcMu serialises seed draws from sources that several results may share.
var srcMu sync.Mutex

// drawSeed takes one value from src under srcMu.
func drawSeed(src rand.Source) uint64 {
	srcMu.Lock()
	defer srcMu.Unlock()

	return src.Uint64()
}

// seededSource returns a fresh PCG keyed by seed.
func seededSource(seed uint64) rand.Source { return rand.NewPCG(seed, seed^seedStream) }

// deriveSeed returns the seed of the result produced by stage from a parent seed.
func deriveSeed(seed uint64, stage Stage) uint64 {
	return rand.NewPCG(seed, uint64(stage)).Uint64()
}
