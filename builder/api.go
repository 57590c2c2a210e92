// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildInstance(itemCount, bopts, cons...). Resolves cfg,
//     runs cons in order against one shared draft, validates the result.
//   - All public factories are declared in impl_*.go and documented there.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical instances.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/setcover/instance"
)

// Constructor appends sets to the draft using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit items in ascending order inside each set.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// draft is the mutable instance under construction.
type draft struct {
	itemCount int
	costs     []float64
	items     [][]int
}

// addSet appends one set with the next drawn cost.
func (d *draft) addSet(cfg builderConfig, items []int) {
	d.costs = append(d.costs, cfg.nextCost())
	d.items = append(d.items, items)
}

// BuildInstance creates an instance over itemCount items, resolves the builder
// configuration from bopts and applies all constructors in order. Set indices
// follow emission order. Any constructor error is wrapped with
// "BuildInstance: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, plus O(total items) validation.
func BuildInstance(itemCount int, bopts []BuilderOption, cons ...Constructor) (*instance.Instance, error) {
	if itemCount < 0 {
		return nil, fmt.Errorf("BuildInstance: itemCount=%d: %w", itemCount, ErrTooFewItems)
	}

	cfg := newBuilderConfig(bopts...)
	d := &draft{itemCount: itemCount}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
	}

	in, err := instance.New(d.itemCount, d.costs, d.items)
	if err != nil {
		return nil, fmt.Errorf("BuildInstance: %v: %w", err, ErrConstructFailed)
	}

	return in, nil
}

// sortInts sorts a small item list in place.
func sortInts(a []int) { slices.Sort(a) }
