// SPDX-License-Identifier: MIT
// Package incidence — the (node, edge) membership table and its helpers.
//
// A Table encodes a hypergraph as two parallel sequences: Nodes[k] is a member of
// hyperedge Edges[k]. Several rows share an edge id for multi-node hyperedges.
//
// Contracts:
//   - len(Nodes) == len(Edges) at all times (validated by New).
//   - Edge ids are arbitrary on input; Compact remaps them to 0..E-1 in order of
//     first appearance. Matrix builders require a compacted table because edge
//     ids are used directly as column indices.
//   - Helpers never mutate the receiver; they return fresh tables.
//
// Complexity:
//   - Compact, Filter, Concat, Shift, Clone: O(rows).
//   - Members: O(rows); Hyperedges: O(rows).

package incidence

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Table is a hypergraph incidence table: one row per (node, edge) membership pair.
type Table struct {
	Nodes []int // member node id per row
	Edges []int // hyperedge id per row
}

// New validates nodes/edges and returns a Table that owns copies of both slices.
// Errors: ErrLengthMismatch, ErrNegativeID.
// Complexity: O(rows).
func New(nodes, edges []int) (Table, error) {
	if len(nodes) != len(edges) {
		return Table{}, fmt.Errorf("New: len(nodes)=%d len(edges)=%d: %w",
			len(nodes), len(edges), ErrLengthMismatch)
	}
	for k := range nodes {
		if nodes[k] < 0 || edges[k] < 0 {
			return Table{}, fmt.Errorf("New: row %d (node=%d, edge=%d): %w",
				k, nodes[k], edges[k], ErrNegativeID)
		}
	}

	return Table{Nodes: append([]int(nil), nodes...), Edges: append([]int(nil), edges...)}, nil
}

// FromHyperedges builds a table from explicit member sets; hyperedge i gets id i.
// Handy for fixtures and samplers that produce whole node sets.
func FromHyperedges(sets [][]int) (Table, error) {
	var nodes, edges []int
	for i, set := range sets {
		for _, n := range set {
			nodes = append(nodes, n)
			edges = append(edges, i)
		}
	}

	return New(nodes, edges)
}

// Validate re-checks the structural invariants of t.
func (t Table) Validate() error {
	if len(t.Nodes) != len(t.Edges) {
		return fmt.Errorf("Validate: len(nodes)=%d len(edges)=%d: %w",
			len(t.Nodes), len(t.Edges), ErrLengthMismatch)
	}
	for k := range t.Nodes {
		if t.Nodes[k] < 0 || t.Edges[k] < 0 {
			return fmt.Errorf("Validate: row %d: %w", k, ErrNegativeID)
		}
	}

	return nil
}

// Len returns the number of rows (membership pairs).
func (t Table) Len() int { return len(t.Edges) }

// EdgeIDs returns the distinct edge ids in order of first appearance.
func (t Table) EdgeIDs() []int { return lo.Uniq(t.Edges) }

// NumEdges returns the number of distinct edge ids.
func (t Table) NumEdges() int { return len(t.EdgeIDs()) }

// MaxEdge returns the largest edge id, or -1 for an empty table.
func (t Table) MaxEdge() int {
	if len(t.Edges) == 0 {
		return -1
	}

	return lo.Max(t.Edges)
}

// Compact remaps edge ids to the dense range 0..E-1 in order of first appearance.
// Same old id → same new id; distinct old ids → distinct new ids. Rows are never
// dropped or reordered. Compacting an already compacted table is a no-op.
func Compact(t Table) Table {
	remap := make(map[int]int, len(t.Edges))
	edges := make([]int, len(t.Edges))
	for k, e := range t.Edges {
		id, ok := remap[e]
		if !ok {
			id = len(remap)
			remap[e] = id
		}
		edges[k] = id
	}

	return Table{Nodes: append([]int(nil), t.Nodes...), Edges: edges}
}

// IsCompact reports whether edge ids already form 0..E-1 in first-appearance order.
func (t Table) IsCompact() bool {
	next := 0
	for _, e := range t.Edges {
		switch {
		case e == next:
			next++
		case e > next:
			return false
		}
	}

	return true
}

// Filter keeps the rows where keep[k] is true. len(keep) must equal t.Len().
// The result is NOT re-compacted; callers decide when ids are finalized.
func (t Table) Filter(keep []bool) (Table, error) {
	if len(keep) != t.Len() {
		return Table{}, fmt.Errorf("Filter: len(mask)=%d rows=%d: %w", len(keep), t.Len(), ErrLengthMismatch)
	}
	out := Table{Nodes: make([]int, 0, t.Len()), Edges: make([]int, 0, t.Len())}
	for k, ok := range keep {
		if ok {
			out.Nodes = append(out.Nodes, t.Nodes[k])
			out.Edges = append(out.Edges, t.Edges[k])
		}
	}

	return out, nil
}

// Shift returns a copy of t with every edge id increased by offset.
func (t Table) Shift(offset int) Table {
	return Table{
		Nodes: append([]int(nil), t.Nodes...),
		Edges: lo.Map(t.Edges, func(e int, _ int) int { return e + offset }),
	}
}

// Concat appends the rows of b after the rows of a (ids untouched).
func Concat(a, b Table) Table {
	out := Table{
		Nodes: make([]int, 0, a.Len()+b.Len()),
		Edges: make([]int, 0, a.Len()+b.Len()),
	}
	out.Nodes = append(append(out.Nodes, a.Nodes...), b.Nodes...)
	out.Edges = append(append(out.Edges, a.Edges...), b.Edges...)

	return out
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	return Table{Nodes: append([]int(nil), t.Nodes...), Edges: append([]int(nil), t.Edges...)}
}

// Equal reports whether a and b hold identical rows in identical order.
func Equal(a, b Table) bool {
	if a.Len() != b.Len() || len(a.Nodes) != len(b.Nodes) {
		return false
	}
	for k := range a.Edges {
		if a.Nodes[k] != b.Nodes[k] || a.Edges[k] != b.Edges[k] {
			return false
		}
	}

	return true
}

// Members returns the node ids of hyperedge edge, in row order.
func (t Table) Members(edge int) []int {
	var out []int
	for k, e := range t.Edges {
		if e == edge {
			out = append(out, t.Nodes[k])
		}
	}

	return out
}

// Hyperedges groups rows by edge id. For a compacted table index i holds the
// members of edge i; otherwise groups follow first-appearance order.
func (t Table) Hyperedges() [][]int {
	c := t
	if !t.IsCompact() {
		c = Compact(t)
	}
	out := make([][]int, c.NumEdges())
	for k, e := range c.Edges {
		out[e] = append(out[e], c.Nodes[k])
	}

	return out
}

// String renders the table as two bracketed rows, nodes over edges.
func (t Table) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprint(t.Nodes))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprint(t.Edges))

	return sb.String()
}
