// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng    = nil            (pure/deterministic unless seeded)
//   • costFn = DefaultCostFn  (every set costs DefaultSetCost)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Cost generator, called once per emitted set.
	costFn CostFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nextCost draws the cost of the next emitted set.
func (c builderConfig) nextCost() float64 {
	return c.costFn(c.rng)
}
