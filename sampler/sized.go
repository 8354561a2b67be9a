// SPDX-License-Identifier: MIT
// Package: sampler
//
// sized.go — size-preserving substitution strategy.
//
// Every positive hyperedge yields one candidate of the same size: one member,
// chosen uniformly, is replaced by a node drawn from a degree-weighted pool.
//
//	weight(v) = degree(v) + alpha        (degree = distinct positive edges of v)
//	p(v)      = weight(v) / Σ weight
//
// The drawn node is never a member of the edge it enters: members are taken
// out of the pool for the draw and restored afterwards, so the draw follows
// the pool distribution conditioned on non-membership.
//
// Each substituted row is recorded (mask, node, p(node)) and Transform hands
// those attributes to negative.NewAttributedResult.
//
// Complexity: Fit O(rows + N). Generate O(rows · log N).

package sampler

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/giosem1/torch-hypernegative/incidence"
	"github.com/giosem1/torch-hypernegative/negative"
)

const methodSized = "SizedSampler"

// SizedSampler substitutes one node per positive hyperedge.
type SizedSampler struct {
	Base

	rng     *rand.Rand
	weights []float64
	total   float64
	pool    sampleuv.Weighted
	fitted  bool
}

var _ Sampler = (*SizedSampler)(nil)

// Substitution is the attribute record of a generated negative table.
type Substitution struct {
	// ReplaceMask holds one entry per negative row; true marks the substituted row.
	ReplaceMask []bool
	// Replacements holds the drawn node per substituted row, in row order.
	Replacements []int
	// Probabilities holds p(node) per substituted row, in row order.
	Probabilities []float64
}

// NewSizedSampler returns an unfitted substitution strategy over numNode nodes.
// Errors: ErrEmptyPopulation.
func NewSizedSampler(numNode int, opts ...Option) (*SizedSampler, error) {
	b, err := newBase(methodSized, numNode, opts...)
	if err != nil {
		return nil, err
	}

	return &SizedSampler{Base: b, rng: rand.New(b.cfg.src)}, nil
}

// Fit computes the degree-weighted pool from the positive table.
// Errors: incidence.ErrNodeOutOfRange, ErrEmptyPopulation (all weights zero),
// incidence validation errors.
func (s *SizedSampler) Fit(positive incidence.Table) error {
	if err := positive.Validate(); err != nil {
		return fmt.Errorf("%s.Fit: %w", methodSized, err)
	}

	weights := make([]float64, s.numNode)
	for _, members := range distinctMembers(positive) {
		for _, v := range members {
			if v >= s.numNode {
				return fmt.Errorf("%s.Fit: node %d >= population %d: %w",
					methodSized, v, s.numNode, incidence.ErrNodeOutOfRange)
			}
			weights[v]++
		}
	}
	var total float64
	for v := range weights {
		weights[v] += s.cfg.alpha
		total += weights[v]
	}
	if total == 0 {
		return fmt.Errorf("%s.Fit: all node weights are zero: %w", methodSized, ErrEmptyPopulation)
	}

	s.weights, s.total = weights, total
	s.pool = sampleuv.NewWeighted(weights, s.cfg.src)
	s.fitted = true
	s.cfg.logger.Debug("fitted sized sampler",
		zap.Int("nodes", s.numNode),
		zap.Float64("alpha", s.cfg.alpha),
		zap.Float64("total_weight", total),
	)

	return nil
}

// Probability returns p(v) under the fitted pool, or 0 when unfitted or v is
// outside the population.
func (s *SizedSampler) Probability(v int) float64 {
	if !s.fitted || v < 0 || v >= len(s.weights) {
		return 0
	}

	return s.weights[v] / s.total
}

// Generate returns one substituted candidate per positive hyperedge.
func (s *SizedSampler) Generate(positive incidence.Table) (incidence.Table, error) {
	neg, _, err := s.GenerateAttributed(positive)

	return neg, err
}

// GenerateAttributed is Generate plus the substitution record.
// Errors: ErrNotFitted, ErrEdgeTooLarge, ErrEmptyPopulation (no admissible node
// carries weight), incidence validation errors.
func (s *SizedSampler) GenerateAttributed(positive incidence.Table) (incidence.Table, Substitution, error) {
	if !s.fitted {
		return incidence.Table{}, Substitution{}, fmt.Errorf("%s.Generate: %w", methodSized, ErrNotFitted)
	}
	if err := positive.Validate(); err != nil {
		return incidence.Table{}, Substitution{}, fmt.Errorf("%s.Generate: %w", methodSized, err)
	}

	sets := distinctMembers(positive)
	out := make([][]int, len(sets))
	var sub Substitution
	for i, members := range sets {
		if len(members) >= s.numNode {
			return incidence.Table{}, Substitution{}, fmt.Errorf("%s.Generate: edge %d has %d members, population %d: %w",
				methodSized, i, len(members), s.numNode, ErrEdgeTooLarge)
		}
		v, err := s.draw(members)
		if err != nil {
			return incidence.Table{}, Substitution{}, fmt.Errorf("%s.Generate: edge %d: %w", methodSized, i, err)
		}

		at := s.rng.IntN(len(members))
		candidate := append([]int(nil), members...)
		candidate[at] = v
		out[i] = candidate

		for k := range candidate {
			sub.ReplaceMask = append(sub.ReplaceMask, k == at)
		}
		sub.Replacements = append(sub.Replacements, v)
		sub.Probabilities = append(sub.Probabilities, s.weights[v]/s.total)
	}

	neg, err := incidence.FromHyperedges(out)
	if err != nil {
		return incidence.Table{}, Substitution{}, fmt.Errorf("%s.Generate: %w", methodSized, err)
	}
	s.cfg.logger.Debug("generated substituted negatives",
		zap.Int("edges", len(out)),
		zap.Int("rows", neg.Len()),
	)

	return neg, sub, nil
}

// draw takes one non-member node from the pool. Members are hidden for the
// draw; every weight is restored before returning.
func (s *SizedSampler) draw(members []int) (int, error) {
	for _, m := range members {
		s.pool.Reweight(m, 0)
	}
	defer func() {
		for _, m := range members {
			s.pool.Reweight(m, s.weights[m])
		}
	}()

	v, ok := s.pool.Take()
	if !ok || lo.Contains(members, v) {
		return 0, ErrEmptyPopulation
	}
	s.pool.Reweight(v, s.weights[v])

	return v, nil
}

// Transform generates substituted negatives and wraps them, with their
// attributes, into a negative.AttributedResult.
// Errors: ErrNotFitted plus everything GenerateAttributed and
// negative.NewAttributedResult return.
func (s *SizedSampler) Transform(positive incidence.Table) (negative.Sample, error) {
	neg, sub, err := s.GenerateAttributed(positive)
	if err != nil {
		return nil, err
	}
	r, err := negative.NewAttributedResult(s, positive, neg,
		sub.Probabilities, sub.ReplaceMask, sub.Replacements, s.resultOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s.Transform: %w", methodSized, err)
	}

	return r, nil
}
