// SPDX-License-Identifier: MIT
// Package: dataset
//
// dataset.go — ARB loader and item access.
//
// Contracts:
//   • Load never mutates files; a dataset is an immutable in-memory value.
//   • Edge ids are the 0-based line numbers of the nverts file, so the loaded
//     table is already compacted.
//   • Timestamps are optional; Item reports at most one timestamp per edge.
//   • Rows of one edge are contiguous; Item slices them in O(edge size).

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/giosem1/torch-hypernegative/incidence"
)

// known lists the published ARB datasets.
var known = []string{
	"coauth-DBLP",
	"coauth-MAG-Geology",
	"email-Enron",
	"tags-math-sx",
	"contact-high-school",
	"contact-primary-school",
	"NDC-substances",
}

// KnownDatasets returns the published ARB dataset names, sorted.
func KnownDatasets() []string {
	out := slices.Clone(known)
	slices.Sort(out)

	return out
}

// IsKnown reports whether name is a published ARB dataset.
func IsKnown(name string) bool { return lo.Contains(known, name) }

// Dataset is a loaded hypergraph.
type Dataset struct {
	name  string
	path  string
	table   incidence.Table
	offsets []int   // rows of edge i are offsets[i]:offsets[i+1]
	times   []int64 // one per edge, or nil when no times file exists
	nodes   int
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	logger *zap.Logger
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dataset: WithLogger(nil)")
	}

	return func(o *loadOptions) { o.logger = l }
}

// Load reads dataset name from root/name.
// Errors: ErrUnknownDataset (directory missing and name not published),
// fs.ErrNotExist (published but not on disk), ErrMalformedFile.
func Load(root, name string, opts ...Option) (*Dataset, error) {
	o := loadOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	dir := filepath.Join(root, name)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !IsKnown(name) {
			return nil, fmt.Errorf("Load: %q: %w", name, ErrUnknownDataset)
		}

		return nil, fmt.Errorf("Load: %w", err)
	}

	nverts, err := readInts(filepath.Join(dir, name+"-nverts.txt"))
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	simplices, err := readInts(filepath.Join(dir, name+"-simplices.txt"))
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	table, offsets, err := buildTable(nverts, simplices)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", name, err)
	}

	var times []int64
	timesPath := filepath.Join(dir, name+"-times.txt")
	switch ts, err := readInts(timesPath); {
	case err == nil:
		if len(ts) != len(nverts) {
			return nil, fmt.Errorf("Load: %s: %d timestamps for %d hyperedges: %w",
				timesPath, len(ts), len(nverts), ErrMalformedFile)
		}
		times = ts
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("Load: %w", err)
	}

	d := &Dataset{name: name, path: dir, table: table, offsets: offsets, times: times}
	if table.Len() > 0 {
		d.nodes = lo.Max(table.Nodes) + 1
	}
	o.logger.Info("loaded dataset",
		zap.String("name", name),
		zap.String("path", dir),
		zap.Int("hyperedges", len(nverts)),
		zap.Int("rows", table.Len()),
		zap.Int("nodes", d.nodes),
		zap.Bool("timestamps", times != nil),
	)

	return d, nil
}

// buildTable assigns nverts[i] consecutive simplex lines to hyperedge i and
// shifts node ids to 0-based. Empty hyperedges are rejected so edge ids stay dense.
// The returned offsets are the prefix sums of nverts: edge i owns rows
// offsets[i]:offsets[i+1].
func buildTable(nverts, simplices []int64) (incidence.Table, []int, error) {
	nodes := make([]int, 0, len(simplices))
	edges := make([]int, 0, len(simplices))
	offsets := make([]int, 1, len(nverts)+1)
	next := 0
	for i, n := range nverts {
		if n < 1 {
			return incidence.Table{}, nil, fmt.Errorf("hyperedge %d: vertex count %d: %w", i, n, ErrMalformedFile)
		}
		if next+int(n) > len(simplices) {
			return incidence.Table{}, nil, fmt.Errorf("hyperedge %d needs %d simplices, %d left: %w",
				i, n, len(simplices)-next, ErrMalformedFile)
		}
		for _, v := range simplices[next : next+int(n)] {
			if v < 1 {
				return incidence.Table{}, nil, fmt.Errorf("hyperedge %d: node id %d is not 1-based: %w", i, v, ErrMalformedFile)
			}
			nodes = append(nodes, int(v-1))
			edges = append(edges, i)
		}
		next += int(n)
		offsets = append(offsets, next)
	}
	if next != len(simplices) {
		return incidence.Table{}, nil, fmt.Errorf("%d trailing simplices: %w", len(simplices)-next, ErrMalformedFile)
	}
	table, err := incidence.New(nodes, edges)
	if err != nil {
		return incidence.Table{}, nil, err
	}

	return table, offsets, nil
}

// readInts parses one integer per non-blank line.
func readInts(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []int64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %q: %w", path, line, text, ErrMalformedFile)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

// Name returns the dataset name.
func (d *Dataset) Name() string { return d.name }

// Path returns the dataset directory.
func (d *Dataset) Path() string { return d.path }

// Table returns a copy of the full incidence table.
func (d *Dataset) Table() incidence.Table { return d.table.Clone() }

// Times returns a copy of the per-edge timestamps (nil without a times file).
func (d *Dataset) Times() []int64 { return slices.Clone(d.times) }

// NumNode returns max(node id)+1.
func (d *Dataset) NumNode() int { return d.nodes }

// Len returns the number of hyperedges.
func (d *Dataset) Len() int { return len(d.offsets) - 1 }

// Item is one hyperedge with its timestamp.
type Item struct {
	Rows  incidence.Table // rows of the hyperedge, original edge id kept
	Times []int64         // zero or one timestamp
}

// Item returns hyperedge i.
// Errors: ErrIndexOutOfRange.
func (d *Dataset) Item(i int) (Item, error) {
	if i < 0 || i >= d.Len() {
		return Item{}, fmt.Errorf("Item: %d not in [0, %d): %w", i, d.Len(), ErrIndexOutOfRange)
	}
	from, to := d.offsets[i], d.offsets[i+1]
	rows := incidence.Table{
		Nodes: slices.Clone(d.table.Nodes[from:to]),
		Edges: slices.Clone(d.table.Edges[from:to]),
	}

	var times []int64
	if d.times != nil {
		times = []int64{d.times[i]}
	}

	return Item{Rows: rows, Times: times}, nil
}
