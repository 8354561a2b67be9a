// SPDX-License-Identifier: MIT

// Package dataset loads hypergraph datasets in the ARB text layout:
//
//	<root>/<name>/<name>-nverts.txt     one vertex count per hyperedge
//	<root>/<name>/<name>-simplices.txt  one 1-based node id per line
//	<root>/<name>/<name>-times.txt      optional, one timestamp per hyperedge
//
// Hyperedge i owns the next nverts[i] simplex lines. Node ids are shifted to
// 0-based on load. The result is an incidence.Table plus per-edge timestamps,
// with item access and batch collation for training loops.
//
// Files are read from disk only; fetching archives is left to the caller.
package dataset
