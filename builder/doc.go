// Package builder provides deterministic, "functional-options"-style
// generators of weighted set-cover instances for tests, benchmarks,
// examples and the `setcover gen` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildInstance(itemCount, bopts, cons...): resolves options once,
//     applies constructors in order, validates and returns *instance.Instance.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the per-set cost generator.
//   - Cost distributions (CostFn implementations):
//     – DefaultCostFn:     constant cost DefaultSetCost.
//     – ConstantCostFn:    fixed user-provided value.
//     – UniformIntCostFn:  integer costs ∼U{min..max}.
//   - Constructors (each appends sets; items are shared across constructors):
//     – Singletons():          one set per item (guarantees feasibility).
//     – Universal():           one set covering every item.
//     – Blocks(k):             partition of the items into k contiguous blocks.
//     – Path(width):           sliding windows {i..i+width-1}.
//     – Grid(rows, cols):      items are grid cells; one set per row and per column.
//     – RandomSparse(m, p):    m sets, each item joins each set with probability p.
//     – RandomRegular(m, d):   m sets of exactly d distinct random items.
//
// Guarantees:
//
//   - Determinism: same itemCount/options/seed and constructor order ⇒ identical instances.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is(err, ErrTooFewItems), ...).
//   - Items inside every generated set are strictly ascending.
package builder
