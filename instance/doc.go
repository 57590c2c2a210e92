// Package instance defines the weighted set-cover problem instance and the
// plumbing around it: validation, the textual instance format, solution
// reports and cover checks.
//
// What & Why
//
//   - An Instance is a universe of ItemCount items (0..ItemCount-1) together
//     with an ordered collection of weighted Sets. A cover is a sub-collection
//     whose union is the whole universe; the solver looks for the cheapest one.
//
//   - The package is the single boundary between raw input and the search
//     engine (package bnb). Everything that reaches the engine has passed
//     Validate, so the engine itself never re-checks indices.
//
// Text format
//
//	<item_count> <set_count>
//	<cost> <item> <item> ...     (one line per set, set_count lines)
//
// Example (3 items, 3 sets):
//
//	3 3
//	1 0 1
//	1 2
//	3 0 1 2
//
// Solution report
//
//	<cost> <optimal 0|1>
//	<a_0> <a_1> ... <a_{set_count-1}>
//
// Errors
//
//   - All failures are sentinel errors (ErrMalformedInput, ErrItemOutOfRange, ...)
//     wrapped with positional context via %w; branch with errors.Is.
//
// Complexity:
//   - Parse / Validate: O(total items listed over all sets).
//   - IsCover / CostOf: O(total items of the chosen sets + set_count).
package instance
