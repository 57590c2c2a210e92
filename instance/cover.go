package instance

// IsCover reports whether the sets marked 1 in assignment cover every item.
// The assignment must have exactly one entry per set.
//
// Complexity: O(set_count + total items of chosen sets) time, O(item_count) space.
func IsCover(in *Instance, assignment []int) (bool, error) {
	if in == nil {
		return false, ErrNilInstance
	}
	if len(assignment) != len(in.Sets) {
		return false, ErrAssignmentLength
	}

	var (
		covered = make([]bool, in.ItemCount)
		left    = in.ItemCount
		k, item int
	)
	for k = range in.Sets {
		if assignment[k] == 0 {
			continue
		}
		for _, item = range in.Sets[k].Items {
			if !covered[item] {
				covered[item] = true
				left--
			}
		}
	}

	return left == 0, nil
}

// CostOf sums the costs of the sets marked 1 in assignment.
//
// Complexity: O(set_count).
func CostOf(in *Instance, assignment []int) (float64, error) {
	if in == nil {
		return 0, ErrNilInstance
	}
	if len(assignment) != len(in.Sets) {
		return 0, ErrAssignmentLength
	}
	var total float64
	for k := range in.Sets {
		if assignment[k] != 0 {
			total += in.Sets[k].Cost
		}
	}

	return total, nil
}

// CoveringSets returns, for every item, the ascending list of sets that
// contain it. Duplicate items inside a set are reported once.
//
// Complexity: O(set_count + total items).
func CoveringSets(in *Instance) [][]int {
	out := make([][]int, in.ItemCount)
	for k := range in.Sets {
		for _, item := range in.Sets[k].Items {
			row := out[item]
			if n := len(row); n > 0 && row[n-1] == k {
				continue
			}
			out[item] = append(row, k)
		}
	}

	return out
}
