// SPDX-License-Identifier: MIT
// Package: sampler
//
// errors.go — sentinel errors for the sampler package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Strategies never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package sampler

import "errors"

// ErrNotFitted indicates Generate/Transform was called on a strategy that needs
// state from Fit before Fit succeeded.
var ErrNotFitted = errors.New("sampler: strategy is not fitted")

// ErrEmptyPopulation indicates a non-positive node population, or a population
// that offers no admissible node to draw.
var ErrEmptyPopulation = errors.New("sampler: empty node population")

// ErrEdgeTooLarge indicates a positive hyperedge with at least as many distinct
// members as the node population, so no different node set of that size exists.
var ErrEdgeTooLarge = errors.New("sampler: hyperedge does not fit the population")
