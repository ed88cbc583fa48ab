// SPDX-License-Identifier: MIT
// Package: onepass/builder
//
// options.go - functional options for the builder package.
// Option constructors validate and panic on meaningless input; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction starts.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The generator must
// return non-negative weights; core rejects anything else. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight makes every generated edge weigh w. Panics on w < 0.
func WithConstantWeight(w int64) BuilderOption {
	if w < 0 {
		panic("builder: WithConstantWeight(negative)")
	}
	return WithWeightFn(func(*rand.Rand) int64 { return w })
}
