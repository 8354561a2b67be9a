// SPDX-License-Identifier: MIT
// Package: dataset
//
// errors.go — sentinel errors for the dataset package.
// Callers branch with errors.Is; context is attached with %w.

package dataset

import "errors"

var (
	// ErrMalformedFile indicates an ARB text file that does not parse, or whose
	// vertex counts and simplex lines disagree.
	ErrMalformedFile = errors.New("dataset: malformed file")

	// ErrUnknownDataset indicates a name that is neither on disk nor known.
	ErrUnknownDataset = errors.New("dataset: unknown dataset")

	// ErrIndexOutOfRange indicates an item index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dataset: index out of range")

	// ErrBadBatchSize indicates a non-positive batch size.
	ErrBadBatchSize = errors.New("dataset: batch size must be positive")
)
