// SPDX-License-Identifier: MIT
package incidence_test

import (
	"testing"

	"github.com/giosem1/torch-hypernegative/incidence"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers malformed inputs failing fast.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		nodes, edges []int
		wantErr      error
	}{
		{name: "Ok", nodes: []int{0, 1}, edges: []int{5, 5}},
		{name: "Empty", nodes: nil, edges: nil},
		{name: "LengthMismatch", nodes: []int{0, 1}, edges: []int{0}, wantErr: incidence.ErrLengthMismatch},
		{name: "NegativeNode", nodes: []int{-1}, edges: []int{0}, wantErr: incidence.ErrNegativeID},
		{name: "NegativeEdge", nodes: []int{1}, edges: []int{-3}, wantErr: incidence.ErrNegativeID},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tbl, err := incidence.New(tc.nodes, tc.edges)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.nodes), tbl.Len())
		})
	}
}

// TestNew_CopiesInput ensures the table does not alias caller slices.
func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	nodes, edges := []int{1, 2}, []int{0, 0}
	tbl, err := incidence.New(nodes, edges)
	require.NoError(t, err)
	nodes[0], edges[0] = 9, 9
	require.Equal(t, []int{1, 2}, tbl.Nodes)
	require.Equal(t, []int{0, 0}, tbl.Edges)
}

// TestCompact_FirstAppearance checks dense remap in order of first appearance.
func TestCompact_FirstAppearance(t *testing.T) {
	t.Parallel()

	tbl, err := incidence.New([]int{1, 2, 3, 4, 5, 6}, []int{40, 40, 7, 40, 100, 7})
	require.NoError(t, err)
	require.False(t, tbl.IsCompact())

	c := incidence.Compact(tbl)
	require.Equal(t, []int{0, 0, 1, 0, 2, 1}, c.Edges)
	require.Equal(t, tbl.Nodes, c.Nodes, "rows keep their nodes")
	require.True(t, c.IsCompact())
	require.Equal(t, 3, c.NumEdges())
	require.Equal(t, 2, c.MaxEdge())
}

// TestCompact_Idempotent verifies compacting twice equals compacting once.
func TestCompact_Idempotent(t *testing.T) {
	t.Parallel()

	tables := [][2][]int{
		{{0, 1, 2, 3}, {9, 3, 9, 3}},
		{{0, 1, 2}, {0, 1, 2}},
		{{5, 5, 5}, {2, 1, 0}},
		{nil, nil},
	}
	for _, raw := range tables {
		tbl, err := incidence.New(raw[0], raw[1])
		require.NoError(t, err)
		once := incidence.Compact(tbl)
		twice := incidence.Compact(once)
		require.True(t, incidence.Equal(once, twice))
	}
}

// TestTable_Helpers exercises Filter, Shift, Concat, Members and Hyperedges.
func TestTable_Helpers(t *testing.T) {
	t.Parallel()

	tbl, err := incidence.FromHyperedges([][]int{{1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1, 1, 1}, tbl.Edges)
	require.Equal(t, []int{3, 4, 5}, tbl.Members(1))
	require.Equal(t, [][]int{{1, 2}, {3, 4, 5}}, tbl.Hyperedges())

	kept, err := tbl.Filter([]bool{false, false, true, true, true})
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1}, kept.Edges)
	require.Equal(t, 0, incidence.Compact(kept).MaxEdge())

	_, err = tbl.Filter([]bool{true})
	require.ErrorIs(t, err, incidence.ErrLengthMismatch)

	shifted := tbl.Shift(10)
	require.Equal(t, []int{10, 10, 11, 11, 11}, shifted.Edges)
	require.Equal(t, []int{0, 0, 1, 1, 1}, tbl.Edges, "Shift must not mutate the receiver")

	joined := incidence.Concat(tbl, shifted)
	require.Equal(t, 10, joined.Len())
	require.Equal(t, 4, joined.NumEdges())

	require.Equal(t, -1, incidence.Table{}.MaxEdge())
	require.Equal(t, 0, incidence.Table{}.NumEdges())
}
