// SPDX-License-Identifier: MIT
package negative_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/giosem1/torch-hypernegative/incidence"
	"github.com/giosem1/torch-hypernegative/negative"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

// mustTable builds a table from member sets or fails the test.
func mustTable(t *testing.T, sets [][]int) incidence.Table {
	t.Helper()
	tbl, err := incidence.FromHyperedges(sets)
	require.NoError(t, err)

	return tbl
}

// setKey canonicalizes a node set (order and repetition insensitive).
func setKey(members []int) string {
	uniq := make(map[int]struct{}, len(members))
	for _, m := range members {
		uniq[m] = struct{}{}
	}
	s := make([]int, 0, len(uniq))
	for m := range uniq {
		s = append(s, m)
	}
	sort.Ints(s)
	b := make([]byte, 0, 4*len(s))
	for _, m := range s {
		b = append(b, byte(m>>8), byte(m), ',')
	}

	return string(b)
}

// --- tests ---

// TestDeduplicate_Scenario is the canonical two-positive / three-negative example.
func TestDeduplicate_Scenario(t *testing.T) {
	t.Parallel()

	pos := mustTable(t, [][]int{{1, 2}, {3, 4, 5}})
	neg := mustTable(t, [][]int{{1, 2}, {6, 7}, {8, 9, 10}})

	d, err := negative.Deduplicate(pos, neg, 11)
	require.NoError(t, err)
	require.Equal(t, 1, d.Removed)
	require.Equal(t, []bool{false, true, true}, d.Present)
	require.Equal(t, []bool{false, false, true, true, true, true, true}, d.Kept)
	require.Equal(t, [][]int{{6, 7}, {8, 9, 10}}, d.Negative.Hyperedges())
	require.True(t, d.Negative.IsCompact())
}

// TestDeduplicate_SubsetsAreNotDuplicates guards the two-sided size condition.
func TestDeduplicate_SubsetsAreNotDuplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pos     [][]int
		neg     [][]int
		removed int
	}{
		{name: "NegSubsetOfPos", pos: [][]int{{1, 2, 3}}, neg: [][]int{{1, 2}}, removed: 0},
		{name: "PosSubsetOfNeg", pos: [][]int{{1, 2}}, neg: [][]int{{1, 2, 3}}, removed: 0},
		{name: "SameSizeOverlap", pos: [][]int{{1, 2}}, neg: [][]int{{2, 3}}, removed: 0},
		{name: "Disjoint", pos: [][]int{{1, 2}}, neg: [][]int{{3, 4}}, removed: 0},
		{name: "Permuted", pos: [][]int{{1, 2, 3}}, neg: [][]int{{3, 1, 2}}, removed: 1},
		{name: "RepeatedRow", pos: [][]int{{1, 2}}, neg: [][]int{{2, 1, 2}}, removed: 1},
		{name: "DuplicatePositives", pos: [][]int{{1, 2}, {2, 1}}, neg: [][]int{{1, 2}, {0, 1}}, removed: 1},
		{name: "ManyNegativesOnePositive", pos: [][]int{{4, 5}}, neg: [][]int{{4, 5}, {5, 4}, {4}}, removed: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := negative.Deduplicate(mustTable(t, tc.pos), mustTable(t, tc.neg), 6)
			require.NoError(t, err)
			require.Equal(t, tc.removed, d.Removed)
			require.Equal(t, len(tc.neg)-tc.removed, d.Negative.NumEdges())
		})
	}
}

// TestDeduplicate_Degenerate covers empty tables and bad populations.
func TestDeduplicate_Degenerate(t *testing.T) {
	t.Parallel()

	neg := mustTable(t, [][]int{{0, 1}})
	d, err := negative.Deduplicate(incidence.Table{}, neg, 3)
	require.NoError(t, err)
	require.Equal(t, 0, d.Removed)
	require.Equal(t, []bool{true, true}, d.Kept)
	require.True(t, incidence.Equal(neg, d.Negative))

	d, err = negative.Deduplicate(neg, incidence.Table{}, 3)
	require.NoError(t, err)
	require.Empty(t, d.Kept)
	require.Equal(t, 0, d.Negative.Len())

	_, err = negative.Deduplicate(neg, neg, 1)
	require.ErrorIs(t, err, incidence.ErrNodeOutOfRange)
}

// TestDeduplicate_ExhaustivePairwise checks, on random small inputs with planted
// duplicates, that no survivor equals a positive and no non-duplicate is lost.
// Chunking and worker counts must not change the outcome.
func TestDeduplicate_ExhaustivePairwise(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	const population = 10

	for trial := 0; trial < 50; trial++ {
		posSets := make([][]int, 1+rng.Intn(6))
		for i := range posSets {
			posSets[i] = rng.Perm(population)[:1+rng.Intn(4)]
		}
		negSets := make([][]int, 1+rng.Intn(10))
		for i := range negSets {
			if rng.Intn(3) == 0 {
				// plant a permuted copy of a positive
				src := posSets[rng.Intn(len(posSets))]
				cp := append([]int(nil), src...)
				rng.Shuffle(len(cp), func(a, b int) { cp[a], cp[b] = cp[b], cp[a] })
				negSets[i] = cp
				continue
			}
			negSets[i] = rng.Perm(population)[:1+rng.Intn(4)]
		}

		positives := make(map[string]struct{}, len(posSets))
		for _, s := range posSets {
			positives[setKey(s)] = struct{}{}
		}
		var wantSurvivors []string
		for _, s := range negSets {
			if _, dup := positives[setKey(s)]; !dup {
				wantSurvivors = append(wantSurvivors, setKey(s))
			}
		}

		pos, neg := mustTable(t, posSets), mustTable(t, negSets)
		for _, opts := range [][]negative.Option{
			nil,
			{negative.WithChunkSize(1)},
			{negative.WithChunkSize(3), negative.WithWorkers(4)},
		} {
			d, err := negative.Deduplicate(pos, neg, population, opts...)
			require.NoError(t, err)

			var got []string
			for _, members := range d.Negative.Hyperedges() {
				_, dup := positives[setKey(members)]
				require.Falsef(t, dup, "trial %d: survivor %v equals a positive", trial, members)
				got = append(got, setKey(members))
			}
			require.Equalf(t, wantSurvivors, got, "trial %d", trial)
		}
	}
}
