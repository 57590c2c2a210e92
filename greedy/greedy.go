package greedy

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/setcover/instance"
)

// ErrNilInstance is returned when Solve is called without an instance.
var ErrNilInstance = errors.New("greedy: instance is nil")

const methodSolve = "Solve"

// Result is the outcome of Solve.
type Result struct {
	// Feasible is false when some item is covered by no set.
	Feasible bool

	// Cost of the cover after redundancy elimination; +Inf when infeasible.
	Cost float64

	// Assignment has one 0/1 entry per set; nil when infeasible.
	Assignment []int

	// Picks lists the sets in the order the greedy pass chose them,
	// including ones removed later as redundant.
	Picks []int

	// Removed lists the sets dropped by redundancy elimination.
	Removed []int
}

// Solve runs the greedy heuristic followed by redundancy elimination.
func Solve(in *instance.Instance) (Result, error) {
	if in == nil {
		return Result{}, ErrNilInstance
	}
	if err := instance.Validate(in); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, err)
	}

	var (
		m       = len(in.Sets)
		sets    = make([][]int, m)
		gain    = make([]int, m)
		covered = make([]bool, in.ItemCount)
		left    = in.ItemCount
		res     = Result{Cost: math.Inf(1)}
		k       int
	)
	for k = range in.Sets {
		row := slices.Clone(in.Sets[k].Items)
		slices.Sort(row)
		sets[k] = slices.Compact(row)
		gain[k] = len(sets[k])
	}
	covering := instance.CoveringSets(in)

	for left > 0 {
		best := pick(in, gain)
		if best < 0 {
			return res, nil
		}
		res.Picks = append(res.Picks, best)
		for _, i := range sets[best] {
			if covered[i] {
				continue
			}
			covered[i] = true
			left--
			for _, s := range covering[i] {
				gain[s]--
			}
		}
	}

	assignment := make([]int, m)
	for _, s := range res.Picks {
		assignment[s] = 1
	}
	res.Removed = dropRedundant(in, sets, assignment, res.Picks)
	res.Feasible = true
	res.Assignment = assignment
	res.Cost, _ = instance.CostOf(in, assignment)

	return res, nil
}

// pick returns the set with the lowest cost per newly covered item, or -1
// when no set covers anything new.
func pick(in *instance.Instance, gain []int) int {
	var (
		best      = -1
		bestRatio float64
		ratio     float64
	)
	for k, g := range gain {
		if g == 0 {
			continue
		}
		ratio = in.Sets[k].Cost / float64(g)
		if best < 0 || ratio < bestRatio {
			best, bestRatio = k, ratio
		}
	}

	return best
}

// dropRedundant clears picked sets whose items are all covered by at least one
// other picked set, most expensive first (larger index first on equal cost).
// It returns the removed sets.
func dropRedundant(in *instance.Instance, sets [][]int, assignment []int, picks []int) []int {
	count := make([]int, in.ItemCount)
	for _, s := range picks {
		for _, i := range sets[s] {
			count[i]++
		}
	}

	order := slices.Clone(picks)
	slices.SortFunc(order, func(a, b int) int {
		ca, cb := in.Sets[a].Cost, in.Sets[b].Cost
		switch {
		case ca > cb:
			return -1
		case ca < cb:
			return 1
		default:
			return b - a
		}
	})

	var removed []int
	for _, s := range order {
		redundant := true
		for _, i := range sets[s] {
			if count[i] < 2 {
				redundant = false
				break
			}
		}
		if !redundant {
			continue
		}
		for _, i := range sets[s] {
			count[i]--
		}
		assignment[s] = 0
		removed = append(removed, s)
	}

	return removed
}
