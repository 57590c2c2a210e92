// Package lpbound computes the linear-programming relaxation lower bound of a
// weighted set-cover instance with gonum's simplex solver.
//
// The relaxation, in standard form with one surplus variable per item:
//
//	minimize   Σ_k cost_k·x_k
//	subject to Σ_{k ∋ i} x_k − s_i = 1   for every item i
//	           x, s ≥ 0
//
// Its optimum never exceeds the cost of any cover, so it is an admissible
// root bound. Sets without items are left out of the program (their x is 0).
//
// Complexity:
//   - Dense item_count × (set_count + item_count) constraint matrix; simplex
//     cost grows polynomially in practice. Meant for the root only; matrices
//     above MaxCells are refused with ErrTooLarge.
package lpbound
