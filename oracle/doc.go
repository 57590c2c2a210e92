// Package oracle computes reference optima for small weighted set-cover
// instances, independently of the branch-and-bound engine.
//
//   - Exhaustive enumerates every subset of sets (at most MaxExhaustiveSets).
//   - MaxSAT encodes the instance as weighted partial MaxSAT and solves it with
//     gophersat: one hard clause per item (some covering set is chosen), one
//     soft unit clause ¬x_k of weight cost_k per set. Costs must be integral.
//
// Both report Found=false when some item is covered by no set.
package oracle
