// SPDX-License-Identifier: MIT
// Package incidence: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the incidence
// package. Constructors and algorithms return these sentinels (optionally wrapped
// with method context via %w) and tests check them via errors.Is.
// No algorithm panics on user-triggered error conditions.

package incidence

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "incidence: ..." for easy grepping across logs.
// Context is attached at the call site with fmt.Errorf("Method: ...: %w", ErrX).
//
// ERROR PRIORITY (enforced in tests):
// length mismatch -> negative id -> shape -> node out of range.

var (
	// ErrLengthMismatch is returned when the nodes and edges sequences of a
	// table differ in length (malformed input, not recoverable locally).
	ErrLengthMismatch = errors.New("incidence: nodes/edges length mismatch")

	// ErrNegativeID indicates that a node or edge id is negative.
	ErrNegativeID = errors.New("incidence: negative id")

	// ErrBadShape is returned when a requested matrix shape is invalid
	// (negative node population, or operands with different row counts).
	ErrBadShape = errors.New("incidence: invalid shape")

	// ErrNodeOutOfRange indicates that a node id does not fit into the node
	// population the sparse matrix was sized for.
	ErrNodeOutOfRange = errors.New("incidence: node id out of range")

	// ErrOutOfRange indicates that a (row, col) index or a column range lies
	// outside the matrix bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("incidence: index out of range")
)
