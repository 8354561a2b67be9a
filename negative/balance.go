// SPDX-License-Identifier: MIT
// Package negative — class balancing by controlled duplication of negatives.
//
// Policy:
//   - deficit = numP − numN.
//   - deficit <= 0: nothing happens; surplus negatives are NOT trimmed.
//   - numN == 0 with positives present: ErrNoNegativeEdges (capacity error).
//   - otherwise min(deficit, numN) distinct negative edges are drawn uniformly
//     without replacement; every row of a drawn edge is cloned (row order kept)
//     and the clones receive ids numN, numN+1, ... in first-appearance order.
//
// Ids of existing edges never change: the input is compact, clones are appended
// after it with larger ids, so the concatenation is already compact.

package negative

import (
	"fmt"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/giosem1/torch-hypernegative/incidence"
)

// Balanced is the outcome of Balance.
type Balanced struct {
	// Negative is the (possibly extended) compacted negative table.
	Negative incidence.Table
	// Cloned marks, per input negative row, whether the row was duplicated.
	// Clone rows are appended in the same order as the true entries.
	Cloned []bool
	// Added is the number of distinct edges appended.
	Added int
	// Deficit is numP − numN before balancing (may be <= 0).
	Deficit int
}

// Balance oversamples neg until it holds as many distinct edges as pos, when the
// negatives are the deficient side. A deficit larger than the number of distinct
// negatives clones every negative once and stops (under-filled, not an error).
// Errors: ErrNoNegativeEdges.
func Balance(pos, neg incidence.Table, opts ...Option) (Balanced, error) {
	o := gatherOptions(opts...)

	neg = incidence.Compact(neg)
	numP, numN := pos.NumEdges(), neg.NumEdges()
	deficit := numP - numN
	cloned := make([]bool, neg.Len())

	if deficit <= 0 {
		return Balanced{Negative: neg, Cloned: cloned, Deficit: deficit}, nil
	}
	if numN == 0 {
		return Balanced{}, fmt.Errorf("Balance: deficit %d with 0 negative edges: %w", deficit, ErrNoNegativeEdges)
	}

	// Draw distinct compacted ids; ids are 0..numN-1 after compaction.
	k := min(deficit, numN)
	chosen := make([]int, k)
	sampleuv.WithoutReplacement(chosen, numN, o.src)
	pick := make([]bool, numN)
	for _, id := range chosen {
		pick[id] = true
	}
	for r, e := range neg.Edges {
		cloned[r] = pick[e]
	}

	clones, err := neg.Filter(cloned)
	if err != nil {
		return Balanced{}, fmt.Errorf("Balance: %w", err)
	}
	clones = incidence.Compact(clones).Shift(numN)

	return Balanced{
		Negative: incidence.Concat(neg, clones),
		Cloned:   cloned,
		Added:    lo.Count(pick, true),
		Deficit:  deficit,
	}, nil
}
