// SPDX-License-Identifier: MIT
// Package negative: sentinel error set.
// Constructors and pipeline steps return these sentinels wrapped with method
// context ("Method: detail: %w"); callers match them with errors.Is. Errors from
// package incidence (ErrLengthMismatch, ErrNegativeID, ErrNodeOutOfRange) pass
// through wrapped, so errors.Is works against those sentinels as well.

package negative

import "errors"

var (
	// ErrNilContext is returned when a result is constructed without a sampler
	// context (the node population is unknown).
	ErrNilContext = errors.New("negative: nil sampler context")

	// ErrNoNegativeEdges is the capacity error of the balancing step: positives
	// exist but there is no negative hyperedge left to clone from.
	ErrNoNegativeEdges = errors.New("negative: no negative edges to oversample from")

	// ErrAttributeMismatch indicates that per-row auxiliary attributes are not
	// aligned with the negative table (replace mask length != negative rows, or
	// probabilities/replacements length != substituted row count).
	ErrAttributeMismatch = errors.New("negative: attribute sequences misaligned")
)
