// Package bnb solves weighted minimum set cover exactly with an iterative
// branch-and-bound search.
//
// The search tree is a chain of *State values linked by parent pointers. The
// driver keeps one "current node" and moves it with two primitives:
//
//   - Descend — create the inclusion child on the branching set chosen by
//     the Estimator.
//   - Negate  — climb to the nearest inclusion ancestor and replace it by its
//     exclusion sibling; nil when the tree is exhausted.
//
// Every node runs exactly one propagation pass on construction:
//
//   - inclusion covers the picked set's items and drops sets that no longer
//     cover anything;
//   - exclusion removes the picked set, fails on an orphaned item, otherwise
//     detects forced sets (items with a single covering set) once and covers them.
//
// Propagation is not iterated to a fixpoint; a forced set revealed by the
// covering step is found by the next exclusion pass or by branching.
//
// Lower bound:
//
//	LB(st) = cost(st) + Σ_{i uncovered} min_{s ∋ i} cost(s)/|uncovered(s)|
//
// It is admissible: each uncovered item is charged at most its share of the set
// that eventually covers it. When every set cost is integral, LB is rounded up.
//
// Anytime behaviour:
//
//   - Search keeps the cheapest cover found so far (the incumbent).
//   - Options.TimeLimit, Options.NodeLimit and ctx are polled at nodes pruned
//     by the bound. On expiry the incumbent is returned with
//     ProvenOptimal=false. The root LP bound, when enabled, is abandoned as
//     soon as the deadline or ctx expires.
//   - When the tree is exhausted the incumbent is proven optimal, or the
//     instance is proven to have no cover at all.
//
// Complexity:
//   - Worst case exponential in the number of sets.
//   - Per node: O(set_count + item_count) outer-slice clone plus the rows that
//     propagation touches; rows that did not change are shared with the parent.
//
// Infeasible branches and infeasible instances are data (SearchResult fields),
// never errors. Errors are returned only for caller mistakes.
package bnb
