// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// impl_random_sparse.go - implementation of RandomSparse(m, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like incidence: for each of m sets and each item, include the
//     item independently with probability p.
//
// Contract:
//   - m ≥ 1 (else ErrTooFewItems).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Feasibility is NOT guaranteed; combine with Singletons() when needed.
//
// Complexity:
//   - Time: O(m·itemCount) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: set asc, then item asc; the cost draw of a set happens
//     after its item trials.

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomSets      = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples m sets over the current items
// with independent membership probability p.
func RandomSparse(m int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if m < minRandomSets {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodRandomSparse, m, minRandomSets, ErrTooFewItems)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var s, i int
		for s = 0; s < m; s++ {
			items := make([]int, 0, int(p*float64(d.itemCount))+1)
			for i = 0; i < d.itemCount; i++ {
				switch {
				case p == probMax:
					items = append(items, i)
				case p == probMin:
				default:
					if cfg.rng.Float64() < p {
						items = append(items, i)
					}
				}
			}
			d.addSet(cfg, items)
		}

		return nil
	}
}
