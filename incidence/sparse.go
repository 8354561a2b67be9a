// SPDX-License-Identifier: MIT
// Package incidence — binary sparse incidence matrices (node × edge).
//
// Sparse is a compressed-sparse-column (CSC) 0/1 matrix: rows are node ids,
// columns are compacted edge ids, and a stored entry means "node belongs to
// edge". Only structural nonzeros are stored; every stored value is 1.
//
// Contracts:
//   - Repeated (node, edge) rows of a table collapse into a single 1 (binary).
//   - Row indices are sorted and unique within each column.
//   - Column count is MaxEdge()+1, so a compacted table yields exactly NumEdges
//     columns; a non-compacted table yields empty columns for unused ids.
//
// Complexity:
//   - NewSparse: O(rows + nnz log nnz_col) time, O(nodes + edges + nnz) space.
//   - ColSums: O(cols). At: O(log nnz_col).

package incidence

import (
	"fmt"
	"sort"
)

// Sparse is a binary CSC matrix built from an incidence Table.
type Sparse struct {
	r, c   int   // rows (node population) and columns (edge ids)
	colPtr []int // len c+1; column j occupies rowIdx[colPtr[j]:colPtr[j+1]]
	rowIdx []int // sorted, unique row indices per column
}

// Entry is one structural nonzero of an integer sparse product.
type Entry struct {
	Row, Col, Value int
}

// NewSparse builds the numNode × (t.MaxEdge()+1) binary incidence matrix of t.
// Stage 1 (Validate): table invariants and node population.
// Stage 2 (Prepare): count memberships per column.
// Stage 3 (Execute): scatter rows into columns, then sort and de-duplicate.
// Errors: ErrLengthMismatch, ErrNegativeID, ErrBadShape (numNode < 0),
// ErrNodeOutOfRange (node id >= numNode).
func NewSparse(t Table, numNode int) (*Sparse, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("NewSparse: %w", err)
	}
	if numNode < 0 {
		return nil, fmt.Errorf("NewSparse: numNode=%d: %w", numNode, ErrBadShape)
	}
	for k, n := range t.Nodes {
		if n >= numNode {
			return nil, fmt.Errorf("NewSparse: row %d node %d >= population %d: %w",
				k, n, numNode, ErrNodeOutOfRange)
		}
	}

	cols := t.MaxEdge() + 1 // 0 for an empty table

	// Count entries per column (duplicates included for now).
	colPtr := make([]int, cols+1)
	for _, e := range t.Edges {
		colPtr[e+1]++
	}
	for j := 0; j < cols; j++ {
		colPtr[j+1] += colPtr[j]
	}

	// Scatter rows into their column slots.
	rowIdx := make([]int, len(t.Nodes))
	next := append([]int(nil), colPtr[:cols]...)
	for k, e := range t.Edges {
		rowIdx[next[e]] = t.Nodes[k]
		next[e]++
	}

	// Sort each column and squeeze duplicates in place (binary incidence).
	w := 0
	for j := 0; j < cols; j++ {
		lo, hi := colPtr[j], colPtr[j+1]
		col := rowIdx[lo:hi]
		sort.Ints(col)
		colPtr[j] = w
		for i, r := range col {
			if i > 0 && r == col[i-1] {
				continue
			}
			rowIdx[w] = r
			w++
		}
	}
	colPtr[cols] = w

	return &Sparse{r: numNode, c: cols, colPtr: colPtr, rowIdx: rowIdx[:w]}, nil
}

// Rows returns the node population (row count).
func (m *Sparse) Rows() int { return m.r }

// Cols returns the number of edge columns.
func (m *Sparse) Cols() int { return m.c }

// NNZ returns the number of stored (structurally nonzero) entries.
func (m *Sparse) NNZ() int { return len(m.rowIdx) }

// Column returns the sorted member rows of column j (shared, do not mutate).
func (m *Sparse) Column(j int) []int { return m.rowIdx[m.colPtr[j]:m.colPtr[j+1]] }

// At returns 1 when node row belongs to edge col, 0 otherwise.
// Errors: ErrOutOfRange.
func (m *Sparse) At(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Sparse.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	c := m.Column(col)
	i := sort.SearchInts(c, row)
	if i < len(c) && c[i] == row {
		return 1, nil
	}

	return 0, nil
}

// ColSums returns the per-column sum, i.e. the node-set size of every edge.
func (m *Sparse) ColSums() []int {
	out := make([]int, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = m.colPtr[j+1] - m.colPtr[j]
	}

	return out
}

// Transpose returns mᵗ in the same CSC layout (equivalently, m in CSR layout).
// Complexity: O(rows + cols + nnz).
func (m *Sparse) Transpose() *Sparse {
	colPtr := make([]int, m.r+1)
	for _, r := range m.rowIdx {
		colPtr[r+1]++
	}
	for i := 0; i < m.r; i++ {
		colPtr[i+1] += colPtr[i]
	}
	rowIdx := make([]int, len(m.rowIdx))
	next := append([]int(nil), colPtr[:m.r]...)
	// Walking columns in ascending order keeps every output column sorted.
	for j := 0; j < m.c; j++ {
		for _, r := range m.Column(j) {
			rowIdx[next[r]] = j
			next[r]++
		}
	}

	return &Sparse{r: m.c, c: m.r, colPtr: colPtr, rowIdx: rowIdx}
}

// TransposeMul computes the structural nonzeros of mᵗ·b, where both operands share
// the node dimension. Entry (i, j) holds |col_i(m) ∩ col_j(b)|.
// Errors: ErrBadShape when row counts differ.
func (m *Sparse) TransposeMul(b *Sparse) ([]Entry, error) {
	p, err := NewTransposeProduct(m, b)
	if err != nil {
		return nil, fmt.Errorf("TransposeMul: %w", err)
	}
	var out []Entry
	if err = p.Range(0, m.c, func(e Entry) { out = append(out, e) }); err != nil {
		return nil, fmt.Errorf("TransposeMul: %w", err)
	}

	return out, nil
}

// TransposeProduct evaluates aᵗ·b one block of a-columns at a time, so callers
// can bound memory by chunking and run disjoint chunks concurrently.
// It is read-only after construction and safe for concurrent Range calls.
type TransposeProduct struct {
	a     *Sparse
	bRows *Sparse // bᵗ: for each node, the b-columns containing it
	bCols int
}

// NewTransposeProduct prepares aᵗ·b. Errors: ErrBadShape when row counts differ.
func NewTransposeProduct(a, b *Sparse) (*TransposeProduct, error) {
	if a == nil || b == nil || a.r != b.r {
		return nil, fmt.Errorf("NewTransposeProduct: %w", ErrBadShape)
	}

	return &TransposeProduct{a: a, bRows: b.Transpose(), bCols: b.c}, nil
}

// Range emits the nonzeros of rows [from, to) of aᵗ·b through fn, row by row and
// in first-touch column order within a row. A dense accumulator with a touched
// list (sparse accumulator) keeps each row O(work) without a b-wide reset.
// Errors: ErrOutOfRange for an invalid range.
func (p *TransposeProduct) Range(from, to int, fn func(Entry)) error {
	if from < 0 || to > p.a.c || from > to {
		return fmt.Errorf("TransposeProduct.Range(%d,%d): %w", from, to, ErrOutOfRange)
	}
	acc := make([]int, p.bCols)
	touched := make([]int, 0, 16)
	for i := from; i < to; i++ {
		for _, node := range p.a.Column(i) {
			for _, j := range p.bRows.Column(node) {
				if acc[j] == 0 {
					touched = append(touched, j)
				}
				acc[j]++
			}
		}
		for _, j := range touched {
			fn(Entry{Row: i, Col: j, Value: acc[j]})
			acc[j] = 0
		}
		touched = touched[:0]
	}

	return nil
}
