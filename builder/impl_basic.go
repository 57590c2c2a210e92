// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// impl_basic.go — deterministic topologies: Singletons, Universal, Blocks, Path.
//
// Contract (all four):
//   • Deterministic: no RNG draws except through cfg.costFn.
//   • Items inside each set are ascending.
//   • Return only sentinel errors; never panic at runtime.

package builder

import "fmt"

// Method tags used as error prefixes.
const (
	methodSingletons = "Singletons"
	methodUniversal  = "Universal"
	methodBlocks     = "Blocks"
	methodPath       = "Path"
	minBlocks        = 1
	minPathWidth     = 1
)

// Singletons emits one set {i} per item i (ascending). Together they always
// form a cover, which makes Singletons the usual feasibility backstop.
//
// Complexity: O(itemCount).
func Singletons() Constructor {
	return func(d *draft, cfg builderConfig) error {
		for i := 0; i < d.itemCount; i++ {
			d.addSet(cfg, []int{i})
		}

		return nil
	}
}

// Universal emits a single set containing every item (possibly empty).
//
// Complexity: O(itemCount).
func Universal() Constructor {
	return func(d *draft, cfg builderConfig) error {
		all := make([]int, d.itemCount)
		for i := range all {
			all[i] = i
		}
		d.addSet(cfg, all)

		return nil
	}
}

// Blocks partitions items 0..n-1 into k contiguous blocks of near-equal size
// (the first n mod k blocks get one extra item) and emits one set per block.
// Requires 1 ≤ k ≤ itemCount.
//
// Complexity: O(itemCount).
func Blocks(k int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		n := d.itemCount
		if k < minBlocks || k > n {
			return fmt.Errorf("%s: k=%d not in [%d,%d]: %w", methodBlocks, k, minBlocks, n, ErrTooFewItems)
		}
		var (
			base  = n / k
			extra = n % k
			next  int
			b, sz int
		)
		for b = 0; b < k; b++ {
			sz = base
			if b < extra {
				sz++
			}
			block := make([]int, sz)
			for j := range block {
				block[j] = next + j
			}
			next += sz
			d.addSet(cfg, block)
		}

		return nil
	}
}

// Path emits the sliding windows {i, i+1, ..., i+width-1} for
// i = 0..itemCount-width. Consecutive windows overlap in width-1 items,
// giving chains of near-equivalent choices. Requires 1 ≤ width ≤ itemCount.
//
// Complexity: O(itemCount·width).
func Path(width int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		n := d.itemCount
		if width < minPathWidth || width > n {
			return fmt.Errorf("%s: width=%d not in [%d,%d]: %w", methodPath, width, minPathWidth, n, ErrTooFewItems)
		}
		for i := 0; i+width <= n; i++ {
			w := make([]int, width)
			for j := range w {
				w[j] = i + j
			}
			d.addSet(cfg, w)
		}

		return nil
	}
}
