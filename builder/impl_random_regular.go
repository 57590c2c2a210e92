// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// impl_random_regular.go — implementation of RandomRegular(m, d) constructor.
//
// Canonical model:
//   • m sets, each containing exactly d distinct items drawn uniformly
//     (set-side d-regular incidence).
//
// Contract:
//   • m ≥ 1 and 1 ≤ d ≤ itemCount (else ErrTooFewItems).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   • O(m·itemCount) time (partial Fisher–Yates per set), O(itemCount) scratch.

package builder

import "fmt"

const methodRandomRegular = "RandomRegular"

// RandomRegular returns a Constructor that samples m sets of exactly d items each.
func RandomRegular(m, d int) Constructor {
	return func(dr *draft, cfg builderConfig) error {
		if m < minRandomSets {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodRandomRegular, m, minRandomSets, ErrTooFewItems)
		}
		if d < 1 || d > dr.itemCount {
			return fmt.Errorf("%s: d=%d not in [1,%d]: %w", methodRandomRegular, d, dr.itemCount, ErrTooFewItems)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		for s := 0; s < m; s++ {
			dr.addSet(cfg, sampleDistinct(cfg.rng, dr.itemCount, d))
		}

		return nil
	}
}
