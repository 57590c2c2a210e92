// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • Items are the cells of a rows×cols grid in row-major order (item = r*cols + c).
//   • One set per row (all cells of that row), then one set per column.
//   • Every cell lies in exactly two sets, so forced-set propagation never
//     fires at the root while any row/column choice is still open.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols == itemCount (else ErrTooFewItems).
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols) for the emitted sets.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that emits the row and column sets of a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewItems)
		}
		if rows*cols != d.itemCount {
			return fmt.Errorf("%s: rows*cols=%d != itemCount=%d: %w",
				methodGrid, rows*cols, d.itemCount, ErrTooFewItems)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			row := make([]int, cols)
			for c = 0; c < cols; c++ {
				row[c] = r*cols + c
			}
			d.addSet(cfg, row)
		}
		for c = 0; c < cols; c++ {
			col := make([]int, rows)
			for r = 0; r < rows; r++ {
				col[r] = r*cols + c
			}
			d.addSet(cfg, col)
		}

		return nil
	}
}
