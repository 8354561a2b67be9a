// SPDX-License-Identifier: MIT
// Package: sampler
//
// options.go — functional options shared by all strategies.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package sampler

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/giosem1/torch-hypernegative/negative"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultAlpha is the additive smoothing applied to node degrees in the
	// substitution pool, so isolated nodes can still be drawn.
	DefaultAlpha = 1.0
)

// Option customizes a strategy before it is used.
type Option func(*config)

// config aggregates the knobs of a strategy.
type config struct {
	device     string
	alpha      float64
	src        rand.Source
	logger     *zap.Logger
	resultOpts []negative.Option
}

// WithDevice sets the opaque device token carried by produced results.
// An empty token means negative.DefaultDevice.
func WithDevice(device string) Option {
	if device == "" {
		device = negative.DefaultDevice
	}

	return func(c *config) { c.device = device }
}

// WithSeed creates a deterministic PCG source for every draw of the strategy.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.src = rand.NewPCG(seed, ^seed) }
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic("sampler: WithRand(nil)")
	}

	return func(c *config) { c.src = src }
}

// WithAlpha sets degree smoothing for the substitution pool. Panics if alpha < 0.
func WithAlpha(alpha float64) Option {
	if alpha < 0 {
		panic("sampler: WithAlpha(alpha<0)")
	}

	return func(c *config) { c.alpha = alpha }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithResultOptions forwards options to the results built by Transform.
func WithResultOptions(opts ...negative.Option) Option {
	return func(c *config) { c.resultOpts = append(c.resultOpts, opts...) }
}

// newConfig applies options in-order (later overrides earlier).
func newConfig(opts ...Option) config {
	c := config{
		device: negative.DefaultDevice,
		alpha:  DefaultAlpha,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.src == nil {
		c.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return c
}
