// Package incidence offers the (node, edge) incidence-table data model and a
// small binary sparse engine over it.
//
// The incidence package provides:
//
//   - Table: parallel Nodes/Edges rows describing hyperedge membership, with
//     stable compaction of edge ids to 0..E-1 (order of first appearance).
//   - Sparse: a CSC node × edge 0/1 matrix built from a compacted Table.
//   - TransposeProduct: chunkable evaluation of Nᵗ·P, whose entry (i, j) is the
//     size of the intersection of edge i of N and edge j of P.
//
// Set-equality between two large collections of hyperedges reduces to one
// sparse product plus two column-sum vectors; see package negative.
package incidence
