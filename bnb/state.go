package bnb

import (
	"slices"

	"github.com/katalvlaran/setcover/instance"
)

// noSet marks the root, which made no decision.
const noSet = -1

// State is one node of the include/exclude decision tree.
//
// A State is built once, runs one propagation pass in its constructor and is
// read-only afterwards. Rows of setItems and itemSets are never mutated in
// place: a child clones the two outer slices and replaces only the rows it
// changes, so unchanged rows are shared along the lineage.
type State struct {
	est *Estimator

	// setItems[s] lists the still-uncovered items of usable set s, ascending;
	// nil once s is excluded, chosen or redundant.
	setItems [][]int
	// itemSets[i] lists the usable sets covering uncovered item i, ascending;
	// nil once i is covered.
	itemSets [][]int

	// chosen holds the sets decided "in" at this node: the picked set on
	// inclusion, the forced sets on exclusion or at the root.
	chosen []int

	cost     float64
	feasible bool

	parent  *State
	picked  int
	include bool
	depth   int

	liveSets  int
	uncovered int
}

// newRootState builds the root from the full instance. Empty sets start out
// redundant; an item that no set covers makes the root infeasible.
//
// Complexity: O(set_count + item_count + total items · log).
func newRootState(est *Estimator, in *instance.Instance) *State {
	st := &State{
		est:       est,
		setItems:  make([][]int, len(in.Sets)),
		itemSets:  make([][]int, in.ItemCount),
		picked:    noSet,
		feasible:  true,
		uncovered: in.ItemCount,
	}
	var k, i int
	for k = range in.Sets {
		if len(in.Sets[k].Items) == 0 {
			continue
		}
		items := slices.Clone(in.Sets[k].Items)
		slices.Sort(items)
		st.setItems[k] = slices.Compact(items)
		st.liveSets++
	}
	for k = range st.setItems {
		for _, i = range st.setItems[k] {
			st.itemSets[i] = append(st.itemSets[i], k)
		}
	}
	for i = range st.itemSets {
		if st.itemSets[i] == nil {
			st.feasible = false

			return st
		}
	}
	st.propagate()
	st.cost = est.costOf(st.chosen)

	return st
}

// child constructs the decision node on set s below st.
func (st *State) child(s int, include bool) *State {
	ch := &State{
		est:       st.est,
		setItems:  slices.Clone(st.setItems),
		itemSets:  slices.Clone(st.itemSets),
		feasible:  true,
		parent:    st,
		picked:    s,
		include:   include,
		depth:     st.depth + 1,
		liveSets:  st.liveSets,
		uncovered: st.uncovered,
	}
	ch.propagate()
	ch.cost = st.cost + ch.est.costOf(ch.chosen)

	return ch
}

// propagate runs the single constructor-time pass. It is not iterated to a
// fixpoint: sets forced by the covering step below are left to later nodes.
func (st *State) propagate() {
	if st.include {
		st.chosen = []int{st.picked}
		st.cover(st.chosen)

		return
	}

	if st.picked != noSet {
		orphaned := st.setItems[st.picked]
		st.setItems[st.picked] = nil
		st.liveSets--
		for _, i := range orphaned {
			row := without(st.itemSets[i], st.picked)
			st.itemSets[i] = row
			if len(row) == 0 {
				st.feasible = false

				return
			}
		}
	}

	var forced []int
	for _, row := range st.itemSets {
		if len(row) == 1 {
			forced = append(forced, row[0])
		}
	}
	if len(forced) == 0 {
		return
	}
	slices.Sort(forced)
	st.chosen = slices.Compact(forced)
	st.cover(st.chosen)
}

// cover marks every item of the given usable sets as covered, removes those
// sets and shrinks the sets that shared the items. Sets left with nothing to
// cover are dropped as redundant.
func (st *State) cover(sets []int) {
	var covered, touched []int
	for _, s := range sets {
		covered = append(covered, st.setItems[s]...)
		st.setItems[s] = nil
		st.liveSets--
	}
	slices.Sort(covered)
	covered = slices.Compact(covered)

	for _, i := range covered {
		touched = append(touched, st.itemSets[i]...)
		st.itemSets[i] = nil
		st.uncovered--
	}
	slices.Sort(touched)
	touched = slices.Compact(touched)

	for _, s := range touched {
		row := st.setItems[s]
		if row == nil {
			continue
		}
		rest := subtract(row, covered)
		if len(rest) == 0 {
			st.setItems[s] = nil
			st.liveSets--
		} else {
			st.setItems[s] = rest
		}
	}
}

// Descend returns the inclusion child on the set picked by the Estimator.
// st must be feasible and not fully covered.
func (st *State) Descend() *State {
	return st.child(st.est.PickBranchingSet(st), true)
}

// Negate returns the exclusion sibling of the nearest inclusion node on the
// path to the root (st itself included), or nil when the tree is exhausted.
func (st *State) Negate() *State {
	for cur := st; cur != nil; cur = cur.parent {
		if cur.include {
			return cur.parent.child(cur.picked, false)
		}
	}

	return nil
}

// IsAllCovered reports whether no item is left uncovered.
func (st *State) IsAllCovered() bool { return st.uncovered == 0 }

// OptimisticCost delegates to the Estimator.
func (st *State) OptimisticCost() float64 { return st.est.OptimisticCost(st) }

// Feasible reports whether propagation left every uncovered item coverable.
func (st *State) Feasible() bool { return st.feasible }

// Cost is the summed cost of the sets chosen from the root to st.
func (st *State) Cost() float64 { return st.cost }

// Chosen returns a copy of the sets decided "in" at this node.
func (st *State) Chosen() []int { return slices.Clone(st.chosen) }

// Parent returns the predecessor node; nil at the root.
func (st *State) Parent() *State { return st.parent }

// Depth is the number of decisions above st; 0 at the root.
func (st *State) Depth() int { return st.depth }

// Picked returns the set this node decided on and whether it was included;
// (-1, false) at the root.
func (st *State) Picked() (int, bool) { return st.picked, st.include }

// Uncovered returns the number of items still to cover.
func (st *State) Uncovered() int { return st.uncovered }

// UsableSets returns the number of sets still able to cover something.
func (st *State) UsableSets() int { return st.liveSets }

// Assignment ORs the chosen sets of st and all its ancestors into a 0/1
// vector of length setCount.
//
// Complexity: O(setCount + depth).
func (st *State) Assignment(setCount int) []int {
	out := make([]int, setCount)
	for cur := st; cur != nil; cur = cur.parent {
		for _, s := range cur.chosen {
			out[s] = 1
		}
	}

	return out
}

// without returns a fresh copy of the ascending row minus x.
func without(row []int, x int) []int {
	out := make([]int, 0, len(row))
	for _, v := range row {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}

// subtract returns a fresh ascending row = a \ b; both inputs ascending.
func subtract(a, b []int) []int {
	out := make([]int, 0, len(a))
	var i, j int
	for i < len(a) {
		switch {
		case j == len(b) || a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] == b[j]:
			i++
			j++
		default:
			j++
		}
	}

	return out
}
