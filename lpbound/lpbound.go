package lpbound

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/setcover/instance"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrNilInstance is returned when Compute is called without an instance.
var ErrNilInstance = errors.New("lpbound: instance is nil")

// ErrInfeasible indicates that some item is covered by no set, so neither the
// relaxation nor the instance has a solution.
var ErrInfeasible = errors.New("lpbound: relaxation is infeasible")

// ErrSolver wraps any other simplex failure (degenerate cycling, singular basis).
var ErrSolver = errors.New("lpbound: simplex failed")

// ErrTooLarge is returned when the constraint matrix would exceed MaxCells.
var ErrTooLarge = errors.New("lpbound: relaxation too large")

// MaxCells caps item_count × (covering sets + item_count). The dense simplex
// takes seconds well before memory becomes a concern.
const MaxCells = 1 << 14

const (
	methodCompute = "Compute"

	// simplexTol is passed to lp.Simplex as its numerical tolerance.
	simplexTol = 1e-10
)

// Bound is the relaxation optimum.
type Bound struct {
	// Value is the optimal LP objective.
	Value float64

	// X holds the fractional value of every set, len == set_count.
	X []float64
}

// Compute solves the LP relaxation of in.
func Compute(in *instance.Instance) (Bound, error) {
	if in == nil {
		return Bound{}, ErrNilInstance
	}
	if err := instance.Validate(in); err != nil {
		return Bound{}, fmt.Errorf("%s: %w", methodCompute, err)
	}

	var (
		n     = in.ItemCount
		m     = len(in.Sets)
		bound = Bound{X: make([]float64, m)}
	)
	if n == 0 {
		return bound, nil
	}

	// Columns only for sets that cover something; cols[j] is the set index.
	cols := make([]int, 0, m)
	for k := range in.Sets {
		if len(in.Sets[k].Items) > 0 {
			cols = append(cols, k)
		}
	}
	for i, row := range instance.CoveringSets(in) {
		if len(row) == 0 {
			return Bound{}, fmt.Errorf("%s: item %d: %w", methodCompute, i, ErrInfeasible)
		}
	}
	if cells := n * (len(cols) + n); cells > MaxCells {
		return Bound{}, fmt.Errorf("%s: %d×%d matrix > %d cells: %w",
			methodCompute, n, len(cols)+n, MaxCells, ErrTooLarge)
	}

	var (
		width = len(cols) + n
		a     = mat.NewDense(n, width, nil)
		b     = make([]float64, n)
		c     = make([]float64, width)
		j, i  int
	)
	for j = range cols {
		c[j] = in.Sets[cols[j]].Cost
		for _, i = range in.Sets[cols[j]].Items {
			a.Set(i, j, 1)
		}
	}
	for i = 0; i < n; i++ {
		a.Set(i, len(cols)+i, -1)
		b[i] = 1
	}

	opt, x, err := lp.Simplex(c, a, b, simplexTol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return Bound{}, fmt.Errorf("%s: %w", methodCompute, ErrInfeasible)
		}

		return Bound{}, fmt.Errorf("%s: %v: %w", methodCompute, err, ErrSolver)
	}
	for j = range cols {
		bound.X[cols[j]] = x[j]
	}
	bound.Value = math.Max(opt, 0)

	return bound, nil
}

// Rounded returns the bound rounded up to an integer when integral is true,
// allowing tol of numerical slack first; otherwise it returns v unchanged.
func Rounded(v float64, integral bool, tol float64) float64 {
	if !integral {
		return v
	}

	return math.Ceil(v - tol)
}
