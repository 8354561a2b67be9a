// Package negative cleans negative hyperedge samples against positives.
//
// The pipeline has two steps, available both as pure functions and as methods on
// an immutable Result:
//
//   - Deduplicate / RemovePositiveFromNegative: drop every negative hyperedge
//     whose node set equals a positive one, using Nᵗ·P over binary sparse
//     incidence matrices plus column sums (no pairwise dense comparison).
//   - Balance / Oversample: clone randomly chosen negatives until both classes
//     hold the same number of distinct hyperedges (negatives are never trimmed).
//
// Clean runs both, in that order. AttributedResult keeps per-row substitution
// attributes aligned with the negatives through every step.
//
// Labels follow the usual convention: 1 for positives, 0 for negatives.
package negative
