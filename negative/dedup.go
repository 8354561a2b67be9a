// SPDX-License-Identifier: MIT
// Package negative — removal of negatives that coincide with positives.
//
// Set equality through one sparse product:
//   - N (nodes × numN) and P (nodes × numP) are binary incidence matrices.
//   - A = Nᵗ·P holds |n_i ∩ p_j| for every structurally nonzero pair.
//   - degN / degP are the column sums (edge sizes).
//   - A[i,j] == degN[i] == degP[j] ⇔ n_i ⊆ p_j and p_j ⊆ n_i ⇔ n_i == p_j.
//
// A negative edge is a duplicate iff at least one entry of its row of A is a
// witness. Only nonzero entries are ever visited, so the cost is bounded by the
// number of (negative member, positive edge containing it) pairs and never by
// numN × numP.
//
// Chunk policy: negative columns are split into ChunkSize blocks; each block
// owns a private sparse accumulator and writes only its own rows of the witness
// vector. Blocks run on an errgroup bounded by Workers.

package negative

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/giosem1/torch-hypernegative/incidence"
)

// Dedup is the outcome of Deduplicate.
type Dedup struct {
	// Negative is the filtered, re-compacted negative table.
	Negative incidence.Table
	// Kept marks, per input negative row, whether the row survived.
	Kept []bool
	// Present marks, per compacted input negative edge id, whether the edge survived.
	Present []bool
	// Removed is the number of distinct negative edges dropped.
	Removed int
}

// Deduplicate drops every negative hyperedge whose node set equals the node set of
// some positive hyperedge. Both tables are compacted first (no-op when already
// compact); positives are only read.
// Stage 1 (Validate): tables and node population.
// Stage 2 (Prepare): sparse N, P and their column sums.
// Stage 3 (Execute): chunked Nᵗ·P with per-row witness counting.
// Stage 4 (Finalize): filter rows of duplicate edges and re-compact.
// Errors: incidence.ErrLengthMismatch, incidence.ErrNegativeID,
// incidence.ErrBadShape, incidence.ErrNodeOutOfRange.
func Deduplicate(pos, neg incidence.Table, numNode int, opts ...Option) (Dedup, error) {
	o := gatherOptions(opts...)

	pos, neg = incidence.Compact(pos), incidence.Compact(neg)
	numN := neg.NumEdges()

	n, err := incidence.NewSparse(neg, numNode)
	if err != nil {
		return Dedup{}, fmt.Errorf("Deduplicate: negative: %w", err)
	}
	p, err := incidence.NewSparse(pos, numNode)
	if err != nil {
		return Dedup{}, fmt.Errorf("Deduplicate: positive: %w", err)
	}

	// Degenerate tables: nothing can match, every row survives.
	if numN == 0 || p.Cols() == 0 {
		return Dedup{
			Negative: neg,
			Kept:     lo.Times(neg.Len(), func(int) bool { return true }),
			Present:  lo.Times(numN, func(int) bool { return true }),
		}, nil
	}

	witnesses, err := countWitnesses(n, p, o)
	if err != nil {
		return Dedup{}, fmt.Errorf("Deduplicate: %w", err)
	}

	present := lo.Map(witnesses, func(w int, _ int) bool { return w == 0 })
	kept := lo.Map(neg.Edges, func(e int, _ int) bool { return present[e] })
	filtered, err := neg.Filter(kept)
	if err != nil {
		return Dedup{}, fmt.Errorf("Deduplicate: %w", err)
	}

	return Dedup{
		Negative: incidence.Compact(filtered),
		Kept:     kept,
		Present:  present,
		Removed:  lo.Count(present, false),
	}, nil
}

// countWitnesses returns, per negative edge, how many positive edges have exactly
// the same node set (sum-reduction of the witness condition grouped by row).
func countWitnesses(n, p *incidence.Sparse, o options) ([]int, error) {
	prod, err := incidence.NewTransposeProduct(n, p)
	if err != nil {
		return nil, err
	}
	degN, degP := n.ColSums(), p.ColSums()
	witnesses := make([]int, n.Cols())

	var g errgroup.Group
	g.SetLimit(o.workers)
	for from := 0; from < n.Cols(); from += o.chunkSize {
		from, to := from, min(from+o.chunkSize, n.Cols())
		g.Go(func() error {
			// Rows [from,to) belong to this chunk alone.
			return prod.Range(from, to, func(e incidence.Entry) {
				if e.Value == degN[e.Row] && degN[e.Row] == degP[e.Col] {
					witnesses[e.Row]++
				}
			})
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return witnesses, nil
}
