// SPDX-License-Identifier: MIT
// Package: sampler
//
// sampler.go — the strategy contract and the shared base.
//
// A strategy is polymorphic over {Fit, Generate, Transform}:
//   • Fit precomputes strategy state from the full positive table.
//   • Generate produces a candidate negative table of unspecified size; it is
//     neither deduplicated nor balanced (package negative does that).
//   • Transform is Generate wrapped into a negative.Sample ready for Clean.
// Strategies are independent implementations; they share only Base.

package sampler

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/giosem1/torch-hypernegative/incidence"
	"github.com/giosem1/torch-hypernegative/negative"
)

// Sampler is a negative sampling strategy over a fixed node population.
type Sampler interface {
	negative.Context

	Fit(positive incidence.Table) error
	Generate(positive incidence.Table) (incidence.Table, error)
	Transform(positive incidence.Table) (negative.Sample, error)
}

// Base carries the node population and configuration shared by strategies.
type Base struct {
	numNode int
	cfg     config
}

// newBase validates the population and resolves options.
func newBase(method string, numNode int, opts ...Option) (Base, error) {
	if numNode <= 0 {
		return Base{}, fmt.Errorf("%s: numNode=%d: %w", method, numNode, ErrEmptyPopulation)
	}

	return Base{numNode: numNode, cfg: newConfig(opts...)}, nil
}

// NumNode returns the node population fixed at construction.
func (b Base) NumNode() int { return b.numNode }

// Device returns the opaque device token.
func (b Base) Device() string { return b.cfg.device }

// resultOptions returns options for produced results; the strategy's random
// source comes first so explicit result options still win.
func (b Base) resultOptions() []negative.Option {
	return append([]negative.Option{negative.WithRand(b.cfg.src), negative.WithLogger(b.cfg.logger)}, b.cfg.resultOpts...)
}

// distinctMembers returns the de-duplicated member sets of a positive table.
func distinctMembers(t incidence.Table) [][]int {
	sets := t.Hyperedges()
	for i, s := range sets {
		sets[i] = lo.Uniq(s)
	}

	return sets
}
