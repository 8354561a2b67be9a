// SPDX-License-Identifier: MIT
// Package negative — AttributedResult: a Result whose negatives were built by node
// substitution and therefore carry per-row attributes.
//
// Alignment (checked at construction, preserved by every step):
//   - len(replaceMask) == negative rows;
//   - len(probs) == len(replacements) == count(replaceMask).
//
// probs[s] and replacements[s] describe the s-th row (in row order) whose mask bit
// is set: the probability of the substituted node under its pool and the node id.
// Dedup filters them with the kept-row mask; oversampling appends the attributes
// of cloned substituted rows in the same order as the cloned rows.

package negative

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/giosem1/torch-hypernegative/incidence"
)

// AttributedResult is a Result plus substitution attributes.
type AttributedResult struct {
	*Result

	probs        []float64
	replaceMask  []bool
	replacements []int
}

var _ Sample = (*AttributedResult)(nil)

// NewAttributedResult builds the base Result and validates attribute alignment.
// Errors: everything NewResult returns, plus ErrAttributeMismatch.
func NewAttributedResult(
	ctx Context,
	pos, neg incidence.Table,
	probs []float64,
	replaceMask []bool,
	replacements []int,
	opts ...Option,
) (*AttributedResult, error) {
	base, err := NewResult(ctx, pos, neg, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewAttributedResult: %w", err)
	}
	if len(replaceMask) != neg.Len() {
		return nil, fmt.Errorf("NewAttributedResult: len(replaceMask)=%d negative rows=%d: %w",
			len(replaceMask), neg.Len(), ErrAttributeMismatch)
	}
	substituted := lo.Count(replaceMask, true)
	if len(probs) != substituted || len(replacements) != substituted {
		return nil, fmt.Errorf("NewAttributedResult: probs=%d replacements=%d substituted rows=%d: %w",
			len(probs), len(replacements), substituted, ErrAttributeMismatch)
	}

	return &AttributedResult{
		Result:       base,
		probs:        append([]float64(nil), probs...),
		replaceMask:  append([]bool(nil), replaceMask...),
		replacements: append([]int(nil), replacements...),
	}, nil
}

// RemovePositiveFromNegative runs the base dedup and drops the attributes of
// every substituted row that did not survive.
func (a *AttributedResult) RemovePositiveFromNegative() (*AttributedResult, error) {
	base, err := a.Result.RemovePositiveFromNegative()
	if err != nil {
		return nil, err
	}
	kept := base.kept

	out := &AttributedResult{Result: base}
	s := 0 // index into probs/replacements
	for k, substituted := range a.replaceMask {
		if kept[k] {
			out.replaceMask = append(out.replaceMask, substituted)
		}
		if !substituted {
			continue
		}
		if kept[k] {
			out.probs = append(out.probs, a.probs[s])
			out.replacements = append(out.replacements, a.replacements[s])
		}
		s++
	}

	return out, nil
}

// Oversample runs the base balancing and extends the attributes with copies for
// every cloned row, appended in clone order.
func (a *AttributedResult) Oversample() (*AttributedResult, error) {
	base, err := a.Result.Oversample()
	if err != nil {
		return nil, err
	}
	cloned := base.cloned

	out := &AttributedResult{
		Result:       base,
		probs:        append([]float64(nil), a.probs...),
		replaceMask:  append([]bool(nil), a.replaceMask...),
		replacements: append([]int(nil), a.replacements...),
	}
	s := 0
	for k, substituted := range a.replaceMask {
		if cloned[k] {
			out.replaceMask = append(out.replaceMask, substituted)
		}
		if !substituted {
			continue
		}
		if cloned[k] {
			out.probs = append(out.probs, a.probs[s])
			out.replacements = append(out.replacements, a.replacements[s])
		}
		s++
	}

	return out, nil
}

// Clean runs RemovePositiveFromNegative then Oversample, keeping attributes aligned.
func (a *AttributedResult) Clean() (*AttributedResult, error) {
	start := time.Now()
	d, err := a.RemovePositiveFromNegative()
	if err == nil {
		var b *AttributedResult
		if b, err = d.Oversample(); err == nil {
			CleanDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
			return b, nil
		}
	}
	CleanDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())

	return nil, fmt.Errorf("Clean: %w", err)
}

// CleanSample is Clean behind the Sample interface.
func (a *AttributedResult) CleanSample() (Sample, error) {
	c, err := a.Clean()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Probabilities returns the substitution probability per substituted row.
func (a *AttributedResult) Probabilities() []float64 { return append([]float64(nil), a.probs...) }

// ReplaceMask returns, per negative row, whether the row was produced by substitution.
func (a *AttributedResult) ReplaceMask() []bool { return append([]bool(nil), a.replaceMask...) }

// Replacements returns the substituted node id per substituted row.
func (a *AttributedResult) Replacements() []int { return append([]int(nil), a.replacements...) }
