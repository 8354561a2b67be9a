// SPDX-License-Identifier: MIT

// Package sampler provides negative sampling strategies for hypergraphs.
//
// A strategy is fixed to a node population at construction, optionally learns
// state from the positive incidence table (Fit), and produces candidate
// negative hyperedges (Generate). Transform wraps those candidates into a
// negative.Sample that can be cleaned (deduplicated against the positives and
// balanced) by package negative.
//
// Strategies:
//
//   - SizedSampler: one member of every positive hyperedge is replaced by a
//     non-member drawn from a degree-weighted pool. Produces an
//     *negative.AttributedResult carrying the substituted rows, nodes and
//     probabilities.
//   - UniformSampler: every positive hyperedge of size k yields k distinct
//     nodes drawn uniformly. Produces a plain *negative.Result.
//
// All randomness flows through one rand.Source per strategy; WithSeed makes a
// whole run reproducible, including the balancing step of produced results.
package sampler
