// SPDX-License-Identifier: MIT
// Package: dataset
//
// loader.go — mini-batch collation.
//
// A Batch stacks the rows of its items side by side (edge ids untouched) and
// their timestamps one item per entry, so a batch can be fed to a sampler as a
// positive table directly.

package dataset

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/giosem1/torch-hypernegative/incidence"
)

// Batch is a collated group of items.
type Batch struct {
	Rows  incidence.Table
	Times [][]int64
}

// Collate concatenates item rows in order and stacks their timestamps.
func Collate(items []Item) Batch {
	var b Batch
	for _, it := range items {
		b.Rows.Nodes = append(b.Rows.Nodes, it.Rows.Nodes...)
		b.Rows.Edges = append(b.Rows.Edges, it.Rows.Edges...)
		b.Times = append(b.Times, it.Times)
	}

	return b
}

// Batches splits the dataset into collated batches of at most size items.
// With a nil src items keep dataset order; otherwise they are shuffled once.
// Errors: ErrBadBatchSize.
func (d *Dataset) Batches(size int, src rand.Source) ([]Batch, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Batches: size=%d: %w", size, ErrBadBatchSize)
	}

	order := lo.Range(d.Len())
	if src != nil {
		rand.New(src).Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	items := make([]Item, len(order))
	for k, i := range order {
		it, err := d.Item(i)
		if err != nil {
			return nil, fmt.Errorf("Batches: %w", err)
		}
		items[k] = it
	}

	return lo.Map(lo.Chunk(items, size), func(chunk []Item, _ int) Batch { return Collate(chunk) }), nil
}
