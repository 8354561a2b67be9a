// SPDX-License-Identifier: MIT
package negative_test

import (
	"testing"

	"github.com/giosem1/torch-hypernegative/incidence"
	"github.com/giosem1/torch-hypernegative/negative"
	"github.com/stretchr/testify/require"
)

// TestBalance_Policy covers deficit, surplus, under-fill and capacity cases.
func TestBalance_Policy(t *testing.T) {
	t.Parallel()

	four := [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}
	five := append(append([][]int(nil), four...), []int{8, 9})

	tests := []struct {
		name      string
		pos, neg  [][]int
		wantEdges int
		wantAdded int
		wantErr   error
	}{
		{name: "Equal", pos: four[:2], neg: [][]int{{1, 2}, {3}}, wantEdges: 2},
		{name: "Surplus", pos: four[:1], neg: [][]int{{1, 2}, {3}, {4, 5, 6}}, wantEdges: 3},
		{name: "Deficit", pos: four, neg: [][]int{{1, 2}, {3}, {5, 6, 7}}, wantEdges: 4, wantAdded: 1},
		{name: "DeficitDoubles", pos: four, neg: [][]int{{1, 2}, {3, 4, 5}}, wantEdges: 4, wantAdded: 2},
		{name: "UnderFilled", pos: five, neg: [][]int{{1, 2}, {3, 4, 5}}, wantEdges: 4, wantAdded: 2},
		{name: "NoNegatives", pos: four, neg: nil, wantErr: negative.ErrNoNegativeEdges},
		{name: "NoPositives", pos: nil, neg: [][]int{{1}}, wantEdges: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			neg := mustTable(t, tc.neg)
			b, err := negative.Balance(mustTable(t, tc.pos), neg, negative.WithSeed(1))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantEdges, b.Negative.NumEdges())
			require.Equal(t, tc.wantAdded, b.Added)
			require.Len(t, b.Cloned, neg.Len())
			require.True(t, b.Negative.IsCompact())

			// Original rows are untouched and come first.
			head := incidence.Table{Nodes: b.Negative.Nodes[:neg.Len()], Edges: b.Negative.Edges[:neg.Len()]}
			require.True(t, incidence.Equal(incidence.Compact(neg), head))
			if tc.wantAdded == 0 {
				require.NotContains(t, b.Cloned, true)
				require.Equal(t, neg.Len(), b.Negative.Len(), "no shrink, no growth")
			}
		})
	}
}

// TestBalance_ClonesWholeEdges verifies clones replicate every row of the chosen
// edges, in row order, and get fresh ids after the existing ones.
func TestBalance_ClonesWholeEdges(t *testing.T) {
	t.Parallel()

	pos := mustTable(t, [][]int{{0}, {1}, {2}, {3}, {4}, {5}})
	// Interleaved rows: edge 0 = {1, 3}, edge 1 = {2}, edge 2 = {4, 5, 6}.
	neg, err := incidence.New([]int{1, 2, 3, 4, 5, 6}, []int{0, 1, 0, 2, 2, 2})
	require.NoError(t, err)

	b, err := negative.Balance(pos, neg, negative.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 3, b.Added, "deficit 3 with 3 edges clones each once")
	require.Equal(t, []bool{true, true, true, true, true, true}, b.Cloned)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6}, b.Negative.Nodes)
	require.Equal(t, []int{0, 1, 0, 2, 2, 2, 3, 4, 3, 5, 5, 5}, b.Negative.Edges)

	groups := b.Negative.Hyperedges()
	for i := 0; i < 3; i++ {
		require.Equal(t, groups[i], groups[i+3])
	}
}

// TestBalance_SeedDeterminism checks equal seeds choose equal edges.
func TestBalance_SeedDeterminism(t *testing.T) {
	t.Parallel()

	pos := mustTable(t, [][]int{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}})
	neg := mustTable(t, [][]int{{10}, {11}, {12}, {13}, {14}})

	a, err := negative.Balance(pos, neg, negative.WithSeed(99))
	require.NoError(t, err)
	b, err := negative.Balance(pos, neg, negative.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a.Cloned, b.Cloned)
	require.Equal(t, 3, a.Added)
	require.Equal(t, 8, a.Negative.NumEdges())
}
