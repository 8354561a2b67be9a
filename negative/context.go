// SPDX-License-Identifier: MIT

package negative

// Context is the part of a sampling strategy a result depends on: the node
// population used to size incidence matrices and an opaque device token that is
// carried along for downstream consumers. Every sampler.Sampler satisfies it.
type Context interface {
	NumNode() int
	Device() string
}

// StaticContext is a fixed Context, useful when negatives come from outside any
// sampler (files, other tools, tests).
type StaticContext struct {
	Nodes  int    // node population
	Target string // device token; empty means "cpu"
}

// NumNode returns the node population.
func (c StaticContext) NumNode() int { return c.Nodes }

// Device returns the device token, defaulting to "cpu".
func (c StaticContext) Device() string {
	if c.Target == "" {
		return DefaultDevice
	}

	return c.Target
}
