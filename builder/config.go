// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// config.go — resolved configuration and functional options.
//
// Deterministic defaults:
//   - idFn      = ExcelColumnIDFn ("A","B",…,"Z","AA",…)
//   - rng       = nil (pure unless seeded)
//   - weightFn  = DefaultWeightFn (1)
//   - symmetric = false (one directed edge per link)
//
// Option constructors panic on meaningless input; constructors never panic.

package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	weightFn  WeightFn
	symmetric bool
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides the RNG for stochastic constructors and weights.
// Panics on nil; prefer WithSeed.
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

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSymmetric makes every link a pair of opposite edges sharing one
// weight, which is how an undirected graph is modelled on core.Graph.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) {
		c.symmetric = true
	}
}
