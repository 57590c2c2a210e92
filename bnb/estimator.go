package bnb

import (
	"math"

	"github.com/katalvlaran/setcover/instance"
)

// integralTol absorbs float noise before rounding an integral bound up.
const integralTol = 1e-9

// Estimator scores states: an admissible lower bound and a branching choice.
// It holds only per-set costs and is immutable after NewEstimator.
type Estimator struct {
	costs    []float64
	integral bool
}

// NewEstimator snapshots the set costs of in.
//
// Complexity: O(set_count).
func NewEstimator(in *instance.Instance) *Estimator {
	e := &Estimator{costs: in.Costs(), integral: true}
	for _, c := range e.costs {
		if c != math.Trunc(c) {
			e.integral = false
			break
		}
	}

	return e
}

// Cost returns the cost of set s.
func (e *Estimator) Cost(s int) float64 { return e.costs[s] }

// Integral reports whether every set cost is a whole number.
func (e *Estimator) Integral() bool { return e.integral }

// costOf sums the costs of the given sets.
func (e *Estimator) costOf(sets []int) float64 {
	var sum float64
	for _, s := range sets {
		sum += e.costs[s]
	}

	return sum
}

// OptimisticCost returns a lower bound on the cost of any cover completing st:
//
//	cost(st) + Σ_{i uncovered} min_{s ∋ i} cost(s)/|uncovered(s)|
//
// With integral costs every cover costs an integer, so the bound is rounded up.
// st must be feasible.
//
// Complexity: O(Σ |itemSets[i]|) over uncovered items.
func (e *Estimator) OptimisticCost(st *State) float64 {
	var (
		extra, share, best float64
		s                  int
	)
	for _, row := range st.itemSets {
		if row == nil {
			continue
		}
		best = math.Inf(1)
		for _, s = range row {
			share = e.costs[s] / float64(len(st.setItems[s]))
			if share < best {
				best = share
			}
		}
		extra += best
	}
	lb := st.cost + extra
	if e.integral {
		lb = math.Ceil(lb - integralTol)
	}

	return lb
}

// PickBranchingSet returns the usable set maximising
//
//	Σ_{i ∈ uncovered(s)} 1/|itemSets[i]|  /  cost(s)
//
// so sets that cheaply cover contested-few items go first. Zero-cost sets score
// +Inf. Ties go to the smallest set index. st must be feasible and not fully
// covered, which guarantees at least one usable set.
//
// Complexity: O(Σ |setItems[s]|) over usable sets.
func (e *Estimator) PickBranchingSet(st *State) int {
	var (
		best             = -1
		bestScore, score float64
		weight           float64
	)
	bestScore = math.Inf(-1)
	for s, items := range st.setItems {
		if items == nil {
			continue
		}
		weight = 0
		for _, i := range items {
			weight += 1 / float64(len(st.itemSets[i]))
		}
		if e.costs[s] == 0 {
			score = math.Inf(1)
		} else {
			score = weight / e.costs[s]
		}
		if score > bestScore {
			best, bestScore = s, score
		}
	}

	return best
}
