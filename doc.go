// Package setcover solves weighted minimum set cover exactly, with a
// branch-and-bound engine that stays useful when it runs out of time.
//
// 🚀 What is setcover?
//
//	Given item_count items and a collection of weighted sets, find the cheapest
//	sub-collection whose union covers every item. The module brings together:
//		• Instances: parsing, validation, cover checks (instance/)
//		• Generators: deterministic random and structured instances (builder/)
//		• Exact search: depth-first branch-and-bound with propagation (bnb/)
//		• Bounds: greedy warm start (greedy/) and LP relaxation (lpbound/)
//		• Oracles: exhaustive enumeration and MaxSAT cross-checks (oracle/)
//		• Observability: Prometheus search metrics (metrics/)
//
// ✨ Search at a glance
//
//   - Anytime – every strictly cheaper cover becomes the incumbent immediately
//   - Proven optimality – an exhausted tree proves the incumbent optimal
//   - Admissible bound – per-item cheapest share, ceiled for integral costs
//   - Deterministic – same instance and budget, same answer
//
// Layout:
//
//	cmd/setcover/ — CLI: solve, gen, bound, verify
//	config/       — YAML configuration with env overrides and validation
//	instance/     — Instance, Set, text format, solution report
//	builder/      — BuildInstance + Constructors (Singletons, Grid, RandomSparse…)
//	bnb/          — Estimator, State, Search
//	greedy/       — cost-effectiveness heuristic with redundancy elimination
//	lpbound/      — root LP relaxation bound (gonum simplex)
//	oracle/       — brute force and MaxSAT (gophersat) reference optima
//	metrics/      — Prometheus collector for search statistics
//
// Quick example:
//
//	in, _ := instance.ParseString("5 3\n1 0 1\n1 2 3\n1 3 4\n")
//	res, _ := bnb.Search(ctx, in, bnb.DefaultOptions())
//	fmt.Println(res.BestCost, res.ProvenOptimal) // 3 true
//
//	go install github.com/katalvlaran/setcover/cmd/setcover@latest
package setcover
