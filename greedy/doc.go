// Package greedy builds a cheap, feasible set cover quickly.
//
// Solve repeatedly picks the set with the lowest cost per newly covered item
// (ties go to the smallest index) until every item is covered, then drops
// redundant sets in descending cost order. The result is an upper bound on the
// optimum, used to seed branch-and-bound and by the CLI "bound" command.
//
// Complexity:
//   - Time: O(k·set_count + total items) for k picked sets.
//   - Memory: O(set_count + item_count).
package greedy
