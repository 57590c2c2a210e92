package oracle

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"github.com/katalvlaran/setcover/instance"
)

// MaxExhaustiveSets bounds the instance size accepted by Exhaustive.
const MaxExhaustiveSets = 24

// ErrNilInstance is returned when an oracle is called without an instance.
var ErrNilInstance = errors.New("oracle: instance is nil")

// ErrTooManySets is returned by Exhaustive above MaxExhaustiveSets sets.
var ErrTooManySets = errors.New("oracle: too many sets for exhaustive enumeration")

// ErrNonIntegralCost is returned by MaxSAT when a set cost is not a whole number.
var ErrNonIntegralCost = errors.New("oracle: MaxSAT needs integral costs")

const (
	methodExhaustive = "Exhaustive"
	methodMaxSAT     = "MaxSAT"
)

// Result is a reference optimum.
type Result struct {
	// Found is false when no cover exists.
	Found bool
	// Cost of Assignment; +Inf when Found is false.
	Cost float64
	// Assignment has one 0/1 entry per set; nil when Found is false.
	Assignment []int
}

func notFound() Result { return Result{Cost: math.Inf(1)} }

func prepare(method string, in *instance.Instance) error {
	if in == nil {
		return ErrNilInstance
	}
	if err := instance.Validate(in); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// coverable reports whether every item appears in some set.
func coverable(in *instance.Instance) bool {
	for _, row := range instance.CoveringSets(in) {
		if len(row) == 0 {
			return false
		}
	}

	return true
}

// Exhaustive enumerates all 2^set_count subsets and returns the cheapest
// cover; among equal costs the subset with the smallest bitmask wins.
//
// Complexity: O(2^m · m · ⌈n/64⌉).
func Exhaustive(in *instance.Instance) (Result, error) {
	if err := prepare(methodExhaustive, in); err != nil {
		return notFound(), err
	}
	m := len(in.Sets)
	if m > MaxExhaustiveSets {
		return notFound(), fmt.Errorf("%s: %d sets > %d: %w", methodExhaustive, m, MaxExhaustiveSets, ErrTooManySets)
	}

	var (
		words = (in.ItemCount + 63) / 64
		masks = make([][]uint64, m)
		full  = make([]uint64, words)
		k, w  int
	)
	for i := 0; i < in.ItemCount; i++ {
		full[i/64] |= 1 << uint(i%64)
	}
	for k = range in.Sets {
		masks[k] = make([]uint64, words)
		for _, i := range in.Sets[k].Items {
			masks[k][i/64] |= 1 << uint(i%64)
		}
	}

	var (
		best     = notFound()
		bestMask uint32
		union    = make([]uint64, words)
	)
	for sub := uint32(0); sub < 1<<uint(m); sub++ {
		var cost float64
		for w = range union {
			union[w] = 0
		}
		for rest := sub; rest != 0; rest &= rest - 1 {
			k = bits.TrailingZeros32(rest)
			cost += in.Sets[k].Cost
			for w = range union {
				union[w] |= masks[k][w]
			}
		}
		if best.Found && cost >= best.Cost {
			continue
		}
		if !equal(union, full) {
			continue
		}
		best.Found, best.Cost, bestMask = true, cost, sub
	}
	if best.Found {
		best.Assignment = make([]int, m)
		for k = 0; k < m; k++ {
			if bestMask&(1<<uint(k)) != 0 {
				best.Assignment[k] = 1
			}
		}
	}

	return best, nil
}

func equal(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// setVar names the boolean variable of set k.
func setVar(k int) string { return "s" + strconv.Itoa(k) }

// MaxSAT solves in as weighted partial MaxSAT with gophersat.
func MaxSAT(in *instance.Instance) (Result, error) {
	if err := prepare(methodMaxSAT, in); err != nil {
		return notFound(), err
	}
	m := len(in.Sets)
	for k := range in.Sets {
		if c := in.Sets[k].Cost; c != math.Trunc(c) || c > math.MaxInt32 {
			return notFound(), fmt.Errorf("%s: set %d cost %g: %w", methodMaxSAT, k, c, ErrNonIntegralCost)
		}
	}
	if !coverable(in) {
		return notFound(), nil
	}

	constrs := make([]maxsat.Constr, 0, in.ItemCount+m)
	for _, row := range instance.CoveringSets(in) {
		lits := make([]maxsat.Lit, len(row))
		for j, k := range row {
			lits[j] = maxsat.Var(setVar(k))
		}
		constrs = append(constrs, maxsat.HardClause(lits...))
	}
	soft := 0
	for k := range in.Sets {
		if in.Sets[k].Cost == 0 {
			continue
		}
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(setVar(k))}, int(in.Sets[k].Cost)))
		soft++
	}

	res := Result{Found: true, Assignment: make([]int, m)}
	if len(constrs) == 0 || soft == 0 {
		// Nothing to cover, or every set is free: take the covering ones.
		for _, row := range instance.CoveringSets(in) {
			for _, k := range row {
				res.Assignment[k] = 1
			}
		}
		res.Cost, _ = instance.CostOf(in, res.Assignment)

		return res, nil
	}

	model, _ := maxsat.New(constrs...).Solve()
	if model == nil {
		return notFound(), nil
	}
	for k := 0; k < m; k++ {
		if model[setVar(k)] {
			res.Assignment[k] = 1
		}
	}
	res.Cost, _ = instance.CostOf(in, res.Assignment)

	return res, nil
}
