// Package hypernegative generates, deduplicates and balances negative samples
// for hyperlink prediction on hypergraphs.
//
// What it provides:
//
//	• Incidence tables: (node, edge) membership pairs with dense edge ids
//	• Sparse engine: binary CSC incidence matrices and the Nᵗ·P overlap product
//	• Cleaning pipeline: drop negatives equal to a positive, then clone
//	  negatives until both classes hold the same number of hyperedges
//	• Sampling strategies: size-preserving substitution and uniform draws
//	• ARB datasets: text loader, item access and batch collation
//
// Layout:
//
//	incidence/  — Table, compaction, Sparse, TransposeProduct
//	negative/   — Result, AttributedResult, Deduplicate, Balance, metrics
//	sampler/    — Sampler interface, SizedSampler, UniformSampler
//	dataset/    — ARB loader (-nverts, -simplices, -times)
//	config/     — YAML configuration and logger construction
//	cmd/hyperneg — command line front end
//
// Quick example:
//
//	positives  {1,2} {3,4,5}
//	negatives  {1,2} {6,7} {8,9,10}
//
//	Clean drops {1,2} from the negatives; two negatives remain, the classes
//	are balanced and Y() is [1 1 0 0].
//
//	go run ./cmd/hyperneg sample --root datasets --dataset email-Enron --seed 1
package hypernegative
