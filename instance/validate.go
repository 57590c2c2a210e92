package instance

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// structValidate checks the struct tags on Instance and Set.
// validator.Validate caches struct metadata and is safe for concurrent use.
var structValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate verifies every invariant the search engine relies on:
//
//   - ItemCount >= 0, costs >= 0 and item ids >= 0 (struct tags);
//   - costs are finite (no NaN/±Inf);
//   - Sets[k].Index == k (dense, ordered indices);
//   - every item lies in [0, ItemCount).
//
// Stage order decides which sentinel wins when several checks fail:
// tags → ErrInvalidInstance, then ErrInvalidCost, ErrSetIndex, ErrItemOutOfRange.
//
// Complexity: O(set_count + total items).
func Validate(in *Instance) error {
	if in == nil {
		return ErrNilInstance
	}

	if err := structValidate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("Validate: %s failed %q (value %v): %w",
				fe.Namespace(), fe.Tag(), fe.Value(), ErrInvalidInstance)
		}
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalidInstance)
	}

	var (
		k, item int
		s       *Set
	)
	for k = range in.Sets {
		s = &in.Sets[k]
		if math.IsNaN(s.Cost) || math.IsInf(s.Cost, 0) {
			return fmt.Errorf("Validate: set %d cost %v: %w", k, s.Cost, ErrInvalidCost)
		}
		if s.Index != k {
			return fmt.Errorf("Validate: set at position %d has index %d: %w", k, s.Index, ErrSetIndex)
		}
		for _, item = range s.Items {
			if item >= in.ItemCount {
				return fmt.Errorf("Validate: set %d item %d not in [0,%d): %w",
					k, item, in.ItemCount, ErrItemOutOfRange)
			}
		}
	}

	return nil
}
