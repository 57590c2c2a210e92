package bnb

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/setcover/builder"
	"github.com/katalvlaran/setcover/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstance(t *testing.T, n int, costs []float64, items [][]int) *instance.Instance {
	t.Helper()
	in, err := instance.New(n, costs, items)
	require.NoError(t, err)

	return in
}

func rootOf(in *instance.Instance) *State {
	return newRootState(NewEstimator(in), in)
}

// walkTree visits every node of the unpruned tree below root.
func walkTree(root *State, visit func(*State)) {
	for st := root; st != nil; {
		visit(st)
		if !st.feasible || st.IsAllCovered() {
			st = st.Negate()
			continue
		}
		st = st.Descend()
	}
}

// deepRows copies a row table so later mutation would be detectable.
func deepRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, r := range rows {
		if r != nil {
			out[i] = slices.Clone(r)
		}
	}

	return out
}

// checkConsistent asserts both mappings describe the same incidence and the
// counters match them.
func checkConsistent(t *testing.T, st *State) {
	t.Helper()
	live := 0
	for s, row := range st.setItems {
		if row == nil {
			continue
		}
		live++
		require.NotEmpty(t, row, "usable set %d has no items", s)
		require.True(t, slices.IsSorted(row))
		for _, i := range row {
			_, ok := slices.BinarySearch(st.itemSets[i], s)
			require.True(t, ok, "item %d lacks set %d", i, s)
		}
	}
	uncovered := 0
	for i, row := range st.itemSets {
		if row == nil {
			continue
		}
		uncovered++
		require.NotEmpty(t, row, "feasible state: item %d has no covering set", i)
		require.True(t, slices.IsSorted(row))
		for _, s := range row {
			_, ok := slices.BinarySearch(st.setItems[s], i)
			require.True(t, ok, "set %d lacks item %d", s, i)
		}
	}
	assert.Equal(t, live, st.liveSets)
	assert.Equal(t, uncovered, st.uncovered)
	if st.parent != nil {
		assert.GreaterOrEqual(t, st.cost, st.parent.cost)
		assert.Equal(t, st.parent.depth+1, st.depth)
	}
}

// minCompletion brute-forces the cheapest set of usable sets covering every
// uncovered item of st; +Inf if none does. Items must fit one uint64.
func minCompletion(st *State) float64 {
	var (
		live  []int
		masks []uint64
		need  uint64
	)
	for i, row := range st.itemSets {
		if row != nil {
			need |= 1 << uint(i)
		}
	}
	for s, row := range st.setItems {
		if row == nil {
			continue
		}
		var m uint64
		for _, i := range row {
			m |= 1 << uint(i)
		}
		live = append(live, s)
		masks = append(masks, m)
	}
	best := math.Inf(1)
	for sub := 0; sub < 1<<len(live); sub++ {
		var (
			got  uint64
			cost float64
		)
		for b, s := range live {
			if sub&(1<<b) != 0 {
				cost += st.est.Cost(s)
				got |= masks[b]
			}
		}
		if got&need == need && cost < best {
			best = cost
		}
	}

	return best
}

func TestRootState_ForcedSets(t *testing.T) {
	// Item 0 only lives in set 0.
	in := newTestInstance(t, 3,
		[]float64{5, 1, 1, 1},
		[][]int{{0, 1}, {1, 2}, {2}, {1}})
	root := rootOf(in)

	require.True(t, root.Feasible())
	assert.Equal(t, []int{0}, root.Chosen())
	assert.Equal(t, 5.0, root.Cost())
	assert.Equal(t, 1, root.Uncovered())
	assert.Equal(t, 2, root.UsableSets(), "set 3 became redundant")
	assert.Equal(t, []int{2}, root.setItems[1])
	assert.Nil(t, root.setItems[3])
	assert.Equal(t, []int{1, 2}, root.itemSets[2])

	s, include := root.Picked()
	assert.Equal(t, -1, s)
	assert.False(t, include)
	assert.Nil(t, root.Parent())
	assert.Equal(t, 0, root.Depth())
}

func TestRootState_EdgeCases(t *testing.T) {
	root := rootOf(newTestInstance(t, 0, []float64{4}, [][]int{{}}))
	assert.True(t, root.Feasible())
	assert.True(t, root.IsAllCovered())
	assert.Equal(t, 0, root.UsableSets())
	assert.Equal(t, []int{0}, root.Assignment(1))

	root = rootOf(newTestInstance(t, 2, []float64{1}, [][]int{{0}}))
	assert.False(t, root.Feasible(), "item 1 has no covering set")
	assert.Nil(t, root.Negate())

	// Duplicate items inside a set count once.
	root = rootOf(newTestInstance(t, 2, []float64{1, 1}, [][]int{{1, 0, 1}, {0, 1}}))
	assert.Equal(t, []int{0, 1}, root.setItems[0])
}

func TestChild_Inclusion(t *testing.T) {
	in := newTestInstance(t, 4,
		[]float64{1, 1, 1, 1},
		[][]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {1}})
	root := rootOf(in)
	require.Empty(t, root.Chosen())

	ch := root.child(1, true)
	require.True(t, ch.Feasible())
	assert.Equal(t, []int{1}, ch.Chosen())
	assert.Equal(t, 1.0, ch.Cost())
	assert.Equal(t, 2, ch.Uncovered())
	assert.Equal(t, []int{0}, ch.setItems[0])
	assert.Equal(t, []int{3}, ch.setItems[2])
	assert.Nil(t, ch.setItems[1])
	assert.Nil(t, ch.setItems[4], "set {1} is redundant once 1 is covered")
	s, include := ch.Picked()
	assert.Equal(t, 1, s)
	assert.True(t, include)
	checkConsistent(t, ch)
}

func TestChild_ExclusionForcesAndFails(t *testing.T) {
	in := newTestInstance(t, 1, []float64{1, 2}, [][]int{{0}, {0}})
	root := rootOf(in)

	ex := root.child(0, false)
	require.True(t, ex.Feasible())
	assert.Equal(t, []int{1}, ex.Chosen(), "set 1 is forced once set 0 is out")
	assert.Equal(t, 2.0, ex.Cost())
	assert.True(t, ex.IsAllCovered())

	// A hand-built node whose only cover for item 0 is then excluded.
	est := NewEstimator(in)
	lone := &State{
		est: est, setItems: [][]int{{0}, nil}, itemSets: [][]int{{0}},
		feasible: true, picked: noSet, liveSets: 1, uncovered: 1,
	}
	dead := lone.child(0, false)
	assert.False(t, dead.Feasible())
	assert.Empty(t, dead.Chosen())
}

func TestChild_DoesNotMutateParent(t *testing.T) {
	in, err := builder.BuildInstance(12,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithCostFn(builder.UniformIntCostFn(1, 5))},
		builder.RandomSparse(10, 0.35), builder.Singletons())
	require.NoError(t, err)
	root := rootOf(in)
	setRows, itemRows := deepRows(root.setItems), deepRows(root.itemSets)

	inc := root.Descend()
	_ = inc.Negate()
	_ = inc.Descend()

	assert.Equal(t, setRows, deepRows(root.setItems))
	assert.Equal(t, itemRows, deepRows(root.itemSets))
}

func TestNegate_WalksToInclusionAncestor(t *testing.T) {
	in := newTestInstance(t, 3, []float64{1, 1, 1}, [][]int{{0, 1}, {1, 2}, {0, 2}})
	root := rootOf(in)

	a := root.Descend()
	sa, _ := a.Picked()
	b := a.Descend()
	require.True(t, b.IsAllCovered())

	nb := b.Negate()
	require.NotNil(t, nb)
	assert.Same(t, a, nb.Parent())
	s, include := nb.Picked()
	sb, _ := b.Picked()
	assert.Equal(t, sb, s)
	assert.False(t, include)

	na := nb.Negate()
	require.NotNil(t, na)
	assert.Same(t, root, na.Parent())
	s, include = na.Picked()
	assert.Equal(t, sa, s)
	assert.False(t, include)

	assert.Nil(t, na.Negate(), "tree exhausted")
}

func TestAssignment_OrsLineage(t *testing.T) {
	in := newTestInstance(t, 3, []float64{5, 1, 1, 1}, [][]int{{0, 1}, {1, 2}, {2}, {1}})
	root := rootOf(in)
	leaf := root.Descend()
	require.True(t, leaf.IsAllCovered())

	a := leaf.Assignment(in.SetCount())
	assert.Equal(t, 1, a[0], "forced at the root")
	ok, err := instance.IsCover(in, a)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTree_InvariantsAndAdmissibility(t *testing.T) {
	costFns := map[string]builder.CostFn{
		"integral":   builder.UniformIntCostFn(0, 6),
		"fractional": func(r *rand.Rand) float64 { return 0.25 + 3*r.Float64() },
	}
	for name, fn := range costFns {
		for seed := int64(1); seed <= 12; seed++ {
			in, err := builder.BuildInstance(6,
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostFn(fn)},
				builder.RandomSparse(6, 0.35), builder.Singletons())
			require.NoError(t, err)

			visited := 0
			walkTree(rootOf(in), func(st *State) {
				visited++
				if !st.feasible {
					return
				}
				checkConsistent(t, st)
				if st.IsAllCovered() {
					return
				}
				lb := st.OptimisticCost()
				assert.LessOrEqual(t, lb, st.cost+minCompletion(st)+1e-9, "%s seed %d depth %d", name, seed, st.depth)
				assert.GreaterOrEqual(t, lb, st.cost-1e-9)
			})
			assert.Greater(t, visited, 1)
		}
	}
}
