// SPDX-License-Identifier: MIT
package incidence_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/giosem1/torch-hypernegative/incidence"
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

// intersect returns |a ∩ b| for small unsorted sets.
func intersect(a, b []int) int {
	in := make(map[int]struct{}, len(a))
	for _, x := range a {
		in[x] = struct{}{}
	}
	n := 0
	seen := make(map[int]struct{}, len(b))
	for _, x := range b {
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		if _, ok := in[x]; ok {
			n++
		}
	}

	return n
}

// --- tests ---

// TestNewSparse_Shape validates dimensions, binary collapse and column sums.
func TestNewSparse_Shape(t *testing.T) {
	t.Parallel()

	// Edge 1 lists node 3 twice: binary incidence stores it once.
	tbl, err := incidence.New([]int{1, 2, 3, 3, 4}, []int{0, 0, 1, 1, 1})
	require.NoError(t, err)

	m, err := incidence.NewSparse(tbl, 6)
	require.NoError(t, err)
	require.Equal(t, 6, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 4, m.NNZ())
	require.Equal(t, []int{2, 2}, m.ColSums())
	require.Equal(t, []int{3, 4}, m.Column(1))

	v, err := m.At(3, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = m.At(3, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	_, err = m.At(6, 0)
	require.ErrorIs(t, err, incidence.ErrOutOfRange)
}

// TestNewSparse_Errors covers the validation order.
func TestNewSparse_Errors(t *testing.T) {
	t.Parallel()

	_, err := incidence.NewSparse(incidence.Table{Nodes: []int{1}, Edges: nil}, 3)
	require.ErrorIs(t, err, incidence.ErrLengthMismatch)

	tbl := mustTable(t, [][]int{{0, 5}})
	_, err = incidence.NewSparse(tbl, -1)
	require.ErrorIs(t, err, incidence.ErrBadShape)

	_, err = incidence.NewSparse(tbl, 5)
	require.ErrorIs(t, err, incidence.ErrNodeOutOfRange)

	empty, err := incidence.NewSparse(incidence.Table{}, 4)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Cols())
}

// TestTranspose_RoundTrip checks (mᵗ)ᵗ == m entry-wise.
func TestTranspose_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := incidence.NewSparse(mustTable(t, [][]int{{0, 2}, {1}, {2, 3, 0}}), 4)
	require.NoError(t, err)
	tt := m.Transpose().Transpose()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			a, _ := m.At(i, j)
			b, _ := tt.At(i, j)
			require.Equalf(t, a, b, "entry (%d,%d)", i, j)
		}
	}
	require.Equal(t, []int{0, 2}, m.Transpose().Column(0), "node 0 is in edges 0 and 2")
}

// TestTransposeMul_MatchesBruteForce compares the sparse product with pairwise
// intersections on random small hypergraphs.
func TestTransposeMul_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	const population = 12
	randomSets := func(n int) [][]int {
		out := make([][]int, n)
		for i := range out {
			out[i] = rng.Perm(population)[:1+rng.Intn(4)]
		}
		return out
	}

	for trial := 0; trial < 20; trial++ {
		negSets, posSets := randomSets(1+rng.Intn(8)), randomSets(1+rng.Intn(8))
		n, err := incidence.NewSparse(mustTable(t, negSets), population)
		require.NoError(t, err)
		p, err := incidence.NewSparse(mustTable(t, posSets), population)
		require.NoError(t, err)

		entries, err := n.TransposeMul(p)
		require.NoError(t, err)

		got := make(map[[2]int]int, len(entries))
		for _, e := range entries {
			require.Positive(t, e.Value, "only structural nonzeros are emitted")
			got[[2]int{e.Row, e.Col}] = e.Value
		}
		for i := range negSets {
			for j := range posSets {
				require.Equalf(t, intersect(negSets[i], posSets[j]), got[[2]int{i, j}],
					"trial %d entry (%d,%d)", trial, i, j)
			}
		}
	}
}

// TestTransposeProduct_Range checks chunked evaluation equals the full product.
func TestTransposeProduct_Range(t *testing.T) {
	t.Parallel()

	n, err := incidence.NewSparse(mustTable(t, [][]int{{0, 1}, {1, 2}, {3}, {0, 3}}), 4)
	require.NoError(t, err)
	p, err := incidence.NewSparse(mustTable(t, [][]int{{0, 1}, {3}}), 4)
	require.NoError(t, err)

	full, err := n.TransposeMul(p)
	require.NoError(t, err)

	prod, err := incidence.NewTransposeProduct(n, p)
	require.NoError(t, err)
	var chunked []incidence.Entry
	for from := 0; from < n.Cols(); from += 3 {
		to := from + 3
		if to > n.Cols() {
			to = n.Cols()
		}
		require.NoError(t, prod.Range(from, to, func(e incidence.Entry) { chunked = append(chunked, e) }))
	}

	less := func(s []incidence.Entry) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].Row != s[j].Row {
				return s[i].Row < s[j].Row
			}
			return s[i].Col < s[j].Col
		}
	}
	sort.Slice(full, less(full))
	sort.Slice(chunked, less(chunked))
	require.Equal(t, full, chunked)

	require.ErrorIs(t, prod.Range(2, 9, func(incidence.Entry) {}), incidence.ErrOutOfRange)

	other, err := incidence.NewSparse(mustTable(t, [][]int{{0}}), 2)
	require.NoError(t, err)
	_, err = incidence.NewTransposeProduct(n, other)
	require.ErrorIs(t, err, incidence.ErrBadShape)
}
