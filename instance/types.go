package instance

import "errors"

// ErrNilInstance is returned when a nil *Instance is passed where one is required.
var ErrNilInstance = errors.New("instance: instance is nil")

// ErrMalformedInput indicates the textual instance could not be tokenized or
// does not follow the "<item_count> <set_count>" + one-line-per-set layout.
var ErrMalformedInput = errors.New("instance: malformed input")

// ErrInvalidInstance indicates that structural validation failed
// (negative counts, negative item ids, negative costs).
var ErrInvalidInstance = errors.New("instance: invalid instance")

// ErrItemOutOfRange indicates a set references an item outside [0, ItemCount).
var ErrItemOutOfRange = errors.New("instance: item index out of range")

// ErrSetIndex indicates set indices are not dense 0..len(Sets)-1 in order.
var ErrSetIndex = errors.New("instance: set index mismatch")

// ErrInvalidCost indicates a set cost is NaN or infinite.
var ErrInvalidCost = errors.New("instance: cost is not a finite number")

// ErrAssignmentLength indicates an assignment vector does not have one entry per set.
var ErrAssignmentLength = errors.New("instance: assignment length mismatch")

// ErrNoSolution is returned by WriteSolution when there is no assignment to report.
var ErrNoSolution = errors.New("instance: no solution to report")

// Set is one weighted candidate of the cover.
type Set struct {
	// Index is the stable 0-based position of the set in Instance.Sets.
	Index int `json:"index" yaml:"index" validate:"gte=0"`

	// Cost is the non-negative price of picking the set.
	Cost float64 `json:"cost" yaml:"cost" validate:"gte=0"`

	// Items lists the item indices the set covers.
	Items []int `json:"items" yaml:"items" validate:"dive,gte=0"`
}

// Instance is an immutable weighted set-cover problem.
// It is owned by the caller and shared read-only with the solver.
type Instance struct {
	// ItemCount is the size of the universe; items are 0..ItemCount-1.
	ItemCount int `json:"item_count" yaml:"item_count" validate:"gte=0"`

	// Sets is the ordered candidate collection; Sets[k].Index == k.
	Sets []Set `json:"sets" yaml:"sets" validate:"dive"`
}

// SetCount returns len(Sets).
func (in *Instance) SetCount() int { return len(in.Sets) }

// Costs returns a fresh slice with Sets[k].Cost at position k.
//
// Complexity: O(set_count).
func (in *Instance) Costs() []float64 {
	out := make([]float64, len(in.Sets))
	for k := range in.Sets {
		out[k] = in.Sets[k].Cost
	}

	return out
}

// New assembles an instance from item count, costs and per-set item lists,
// assigning dense indices. It validates the result before returning it.
//
// Complexity: O(set_count + total items).
func New(itemCount int, costs []float64, items [][]int) (*Instance, error) {
	if len(costs) != len(items) {
		return nil, ErrSetIndex
	}
	in := &Instance{ItemCount: itemCount, Sets: make([]Set, len(costs))}
	for k := range costs {
		row := make([]int, len(items[k]))
		copy(row, items[k])
		in.Sets[k] = Set{Index: k, Cost: costs[k], Items: row}
	}
	if err := Validate(in); err != nil {
		return nil, err
	}

	return in, nil
}
