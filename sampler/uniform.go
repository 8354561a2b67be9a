// SPDX-License-Identifier: MIT
// Package: sampler
//
// uniform.go — size-matched uniform strategy.
//
// Every positive hyperedge of size k yields one candidate made of k distinct
// nodes drawn uniformly from the population. No state is learned, Fit only
// validates the table.

package sampler

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/giosem1/torch-hypernegative/incidence"
	"github.com/giosem1/torch-hypernegative/negative"
)

const methodUniform = "UniformSampler"

// UniformSampler draws size-matched random node sets.
type UniformSampler struct {
	Base
}

var _ Sampler = (*UniformSampler)(nil)

// NewUniformSampler returns a uniform strategy over numNode nodes.
// Errors: ErrEmptyPopulation.
func NewUniformSampler(numNode int, opts ...Option) (*UniformSampler, error) {
	b, err := newBase(methodUniform, numNode, opts...)
	if err != nil {
		return nil, err
	}

	return &UniformSampler{Base: b}, nil
}

// Fit validates the table; the uniform strategy keeps no state.
func (s *UniformSampler) Fit(positive incidence.Table) error {
	if err := positive.Validate(); err != nil {
		return fmt.Errorf("%s.Fit: %w", methodUniform, err)
	}

	return nil
}

// Generate returns one size-matched candidate per positive hyperedge.
// Errors: ErrEdgeTooLarge, incidence validation errors.
func (s *UniformSampler) Generate(positive incidence.Table) (incidence.Table, error) {
	if err := positive.Validate(); err != nil {
		return incidence.Table{}, fmt.Errorf("%s.Generate: %w", methodUniform, err)
	}
	sets := distinctMembers(positive)
	out := make([][]int, len(sets))
	for i, members := range sets {
		if len(members) > s.numNode {
			return incidence.Table{}, fmt.Errorf("%s.Generate: edge %d has %d members, population %d: %w",
				methodUniform, i, len(members), s.numNode, ErrEdgeTooLarge)
		}
		drawn := make([]int, len(members))
		sampleuv.WithoutReplacement(drawn, s.numNode, s.cfg.src)
		out[i] = drawn
	}
	s.cfg.logger.Debug("generated uniform negatives",
		zap.Int("edges", len(out)),
		zap.Int("rows", lo.SumBy(out, func(m []int) int { return len(m) })),
	)

	return incidence.FromHyperedges(out)
}

// Transform generates negatives and wraps them into a plain negative.Result.
func (s *UniformSampler) Transform(positive incidence.Table) (negative.Sample, error) {
	neg, err := s.Generate(positive)
	if err != nil {
		return nil, err
	}
	r, err := negative.NewResult(s, positive, neg, s.resultOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s.Transform: %w", methodUniform, err)
	}

	return r, nil
}
