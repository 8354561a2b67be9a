// SPDX-License-Identifier: MIT
// Package negative — Result: one positive and one negative incidence table moving
// through the cleaning pipeline Raw → Deduplicated → Balanced.
//
// Contracts:
//   - A *Result is immutable. Every pipeline step returns a NEW *Result and the
//     receiver stays valid, so derived views are never read mid-pipeline.
//   - Steps are deterministic per value: each result carries a seed and builds
//     a private random source from it, so repeated or concurrent calls on one
//     result agree and never touch shared state.
//   - Positives are compacted once at construction and never altered afterwards.
//   - Negatives are re-compacted after every structural change.
//   - Views (EdgeIndex, Y, masks) are computed on every call from the current tables.
//
// Labels: positives are 1, negatives are 0, and PositiveMask/NegativeMask are
// Y cast to bool and its complement.

package negative

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/giosem1/torch-hypernegative/incidence"
)

// Stage identifies how far a result went through the pipeline.
type Stage int

const (
	// StageRaw is a freshly constructed result.
	StageRaw Stage = iota
	// StageDeduplicated follows RemovePositiveFromNegative.
	StageDeduplicated
	// StageBalanced follows Oversample.
	StageBalanced
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageRaw:
		return "raw"
	case StageDeduplicated:
		return "deduplicated"
	case StageBalanced:
		return "balanced"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Sample is what a sampling strategy hands to training code: something that can
// be cleaned and exposes the base Result views.
type Sample interface {
	// Base returns the plain result view (positives, negatives, labels).
	Base() *Result
	// CleanSample runs dedup then balance and returns the cleaned sample.
	CleanSample() (Sample, error)
}

// Result wraps a positive and a negative incidence table.
type Result struct {
	ctx   Context
	opts  options
	seed  uint64
	pos   incidence.Table
	neg   incidence.Table
	stage Stage

	// masks left by the step that produced this result (nil when not applicable)
	kept    []bool // per negative row before dedup
	present []bool // per negative edge before dedup
	cloned  []bool // per negative row before oversample
	removed int
	added   int
}

var _ Sample = (*Result)(nil)

// NewResult validates and compacts both tables.
// Errors: ErrNilContext, incidence.ErrLengthMismatch, incidence.ErrNegativeID,
// incidence.ErrNodeOutOfRange (node id >= ctx.NumNode()).
func NewResult(ctx Context, pos, neg incidence.Table, opts ...Option) (*Result, error) {
	if ctx == nil {
		return nil, fmt.Errorf("NewResult: %w", ErrNilContext)
	}
	if err := validateTable(pos, ctx.NumNode()); err != nil {
		return nil, fmt.Errorf("NewResult: positive: %w", err)
	}
	if err := validateTable(neg, ctx.NumNode()); err != nil {
		return nil, fmt.Errorf("NewResult: negative: %w", err)
	}

	o := gatherOptions(opts...)

	return &Result{
		ctx:   ctx,
		opts:  o,
		seed:  drawSeed(o.src),
		pos:   incidence.Compact(pos),
		neg:   incidence.Compact(neg),
		stage: StageRaw,
	}, nil
}

// validateTable checks table invariants and the node population.
func validateTable(t incidence.Table, numNode int) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for k, n := range t.Nodes {
		if n >= numNode {
			return fmt.Errorf("row %d node %d >= population %d: %w", k, n, numNode, incidence.ErrNodeOutOfRange)
		}
	}

	return nil
}

// next derives a successor result that shares context and options and gets
// its own seed.
func (r *Result) next(neg incidence.Table, stage Stage) *Result {
	return &Result{ctx: r.ctx, opts: r.opts, seed: deriveSeed(r.seed, stage), pos: r.pos, neg: neg, stage: stage}
}

// RemovePositiveFromNegative drops every negative hyperedge equal to a positive one.
// The returned result exposes KeptRows and PresentEdges relative to r's negatives.
func (r *Result) RemovePositiveFromNegative() (*Result, error) {
	d, err := Deduplicate(r.pos, r.neg, r.ctx.NumNode(), WithChunkSize(r.opts.chunkSize), WithWorkers(r.opts.workers))
	if err != nil {
		return nil, fmt.Errorf("RemovePositiveFromNegative: %w", err)
	}
	RemovedTotal.Add(float64(d.Removed))
	r.opts.logger.Debug("removed positives from negatives",
		zap.Int("removed", d.Removed),
		zap.Int("remaining", len(d.Present)-d.Removed),
	)

	out := r.next(d.Negative, StageDeduplicated)
	out.kept, out.present, out.removed = d.Kept, d.Present, d.Removed

	return out, nil
}

// Oversample clones negatives until both classes hold the same number of distinct
// edges, when negatives are the deficient side. The returned result exposes
// ClonedRows relative to r's negatives.
// Errors: ErrNoNegativeEdges.
func (r *Result) Oversample() (*Result, error) {
	b, err := Balance(r.pos, r.neg, WithRand(seededSource(r.seed)))
	if err != nil {
		CapacityErrorsTotal.Inc()
		return nil, fmt.Errorf("Oversample: %w", err)
	}
	ClonedTotal.Add(float64(b.Added))
	r.opts.logger.Debug("oversampled negatives",
		zap.Int("deficit", b.Deficit),
		zap.Int("cloned", b.Added),
	)

	out := r.next(b.Negative, StageBalanced)
	out.cloned, out.added = b.Cloned, b.Added

	return out, nil
}

// Clean runs RemovePositiveFromNegative then Oversample. Order matters: the
// balance target is computed on the deduplicated count.
func (r *Result) Clean() (*Result, error) {
	start := time.Now()
	d, err := r.RemovePositiveFromNegative()
	if err == nil {
		var b *Result
		if b, err = d.Oversample(); err == nil {
			CleanDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
			return b, nil
		}
	}
	CleanDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())

	return nil, fmt.Errorf("Clean: %w", err)
}

// Base returns r itself.
func (r *Result) Base() *Result { return r }

// CleanSample is Clean behind the Sample interface.
func (r *Result) CleanSample() (Sample, error) {
	c, err := r.Clean()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// --- accessors ---

// Stage reports the pipeline stage of r.
func (r *Result) Stage() Stage { return r.stage }

// Device returns the opaque device token of the originating sampler.
func (r *Result) Device() string { return r.ctx.Device() }

// NumNode returns the node population of the originating sampler.
func (r *Result) NumNode() int { return r.ctx.NumNode() }

// Positive returns a copy of the compacted positive table.
func (r *Result) Positive() incidence.Table { return r.pos.Clone() }

// Negative returns a copy of the compacted negative table.
func (r *Result) Negative() incidence.Table { return r.neg.Clone() }

// NumPEdges returns the number of distinct positive edges.
func (r *Result) NumPEdges() int { return r.pos.NumEdges() }

// NumNEdges returns the number of distinct negative edges.
func (r *Result) NumNEdges() int { return r.neg.NumEdges() }

// NumEdges returns the number of distinct edges of the combined table.
func (r *Result) NumEdges() int { return r.EdgeIndex().NumEdges() }

// KeptRows returns, after dedup, which rows of the previous negatives survived.
func (r *Result) KeptRows() []bool { return append([]bool(nil), r.kept...) }

// PresentEdges returns, after dedup, which previous negative edges survived.
func (r *Result) PresentEdges() []bool { return append([]bool(nil), r.present...) }

// ClonedRows returns, after oversampling, which rows of the previous negatives were cloned.
func (r *Result) ClonedRows() []bool { return append([]bool(nil), r.cloned...) }

// Removed returns how many negative edges the producing dedup step dropped.
func (r *Result) Removed() int { return r.removed }

// Added returns how many negative edges the producing oversample step cloned.
func (r *Result) Added() int { return r.added }

// --- derived views ---

// EdgeIndex returns positives followed by negatives whose ids are shifted by
// max(positive id)+1, giving NumPEdges()+NumNEdges() disjoint edge ids.
func (r *Result) EdgeIndex() incidence.Table {
	return incidence.Concat(r.pos, r.neg.Shift(r.pos.MaxEdge()+1))
}

// YP returns one label 1 per positive edge.
func (r *Result) YP() []float64 { return labels(r.NumPEdges(), 1) }

// YN returns one label 0 per negative edge.
func (r *Result) YN() []float64 { return labels(r.NumNEdges(), 0) }

// Y returns YP followed by YN, in EdgeIndex order.
func (r *Result) Y() []float64 { return append(r.YP(), r.YN()...) }

// PositiveMask is Y cast to bool.
func (r *Result) PositiveMask() []bool {
	y := r.Y()
	out := make([]bool, len(y))
	for i, v := range y {
		out[i] = v != 0
	}

	return out
}

// NegativeMask is the logical complement of PositiveMask.
func (r *Result) NegativeMask() []bool {
	out := r.PositiveMask()
	for i := range out {
		out[i] = !out[i]
	}

	return out
}

// String renders the combined edge table.
func (r *Result) String() string { return r.EdgeIndex().String() }

func labels(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
