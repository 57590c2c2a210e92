package oracle_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/setcover/builder"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInstance(t *testing.T, n int, costs []float64, items [][]int) *instance.Instance {
	t.Helper()
	in, err := instance.New(n, costs, items)
	require.NoError(t, err)

	return in
}

func TestExhaustive_Small(t *testing.T) {
	in := mustInstance(t, 2, []float64{1, 1, 1}, [][]int{{0}, {1}, {0, 1}})
	res, err := oracle.Exhaustive(in)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 1.0, res.Cost)
	assert.Equal(t, []int{0, 0, 1}, res.Assignment)

	in = mustInstance(t, 3, []float64{1, 1, 1}, [][]int{{0, 1}, {1, 2}, {0, 2}})
	res, err = oracle.Exhaustive(in)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, []int{1, 1, 0}, res.Assignment, "smallest bitmask among optima")
}

func TestExhaustive_EdgeCases(t *testing.T) {
	in := mustInstance(t, 0, []float64{5}, [][]int{{}})
	res, err := oracle.Exhaustive(in)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, []int{0}, res.Assignment)

	in = mustInstance(t, 2, []float64{1}, [][]int{{0}})
	res, err = oracle.Exhaustive(in)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Assignment)
	assert.True(t, math.IsInf(res.Cost, 1))

	// Items beyond one machine word.
	items := make([][]int, 3)
	for i := 0; i < 130; i++ {
		items[i%3] = append(items[i%3], i)
	}
	in = mustInstance(t, 130, []float64{1, 2, 3}, items)
	res, err = oracle.Exhaustive(in)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Cost)
}

func TestExhaustive_Errors(t *testing.T) {
	_, err := oracle.Exhaustive(nil)
	assert.ErrorIs(t, err, oracle.ErrNilInstance)

	in, err := builder.BuildInstance(oracle.MaxExhaustiveSets+1, nil, builder.Singletons())
	require.NoError(t, err)
	_, err = oracle.Exhaustive(in)
	assert.ErrorIs(t, err, oracle.ErrTooManySets)
}

func TestMaxSAT_Small(t *testing.T) {
	in := mustInstance(t, 3, []float64{1, 1, 1}, [][]int{{0, 1}, {1, 2}, {0, 2}})
	res, err := oracle.MaxSAT(in)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 2.0, res.Cost)
	ok, err := instance.IsCover(in, res.Assignment)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMaxSAT_EdgeCases(t *testing.T) {
	in := mustInstance(t, 2, []float64{1}, [][]int{{0}})
	res, err := oracle.MaxSAT(in)
	require.NoError(t, err)
	assert.False(t, res.Found)

	in = mustInstance(t, 0, []float64{3}, [][]int{{}})
	res, err = oracle.MaxSAT(in)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0.0, res.Cost)

	in = mustInstance(t, 2, []float64{0, 0}, [][]int{{0}, {1}})
	res, err = oracle.MaxSAT(in)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, res.Assignment)
	assert.Equal(t, 0.0, res.Cost)

	in = mustInstance(t, 1, []float64{1.5}, [][]int{{0}})
	_, err = oracle.MaxSAT(in)
	assert.ErrorIs(t, err, oracle.ErrNonIntegralCost)
}

func TestMaxSAT_AgreesWithExhaustive(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		in, err := builder.BuildInstance(10,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostFn(builder.UniformIntCostFn(0, 7))},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)

		ex, err := oracle.Exhaustive(in)
		require.NoError(t, err)
		ms, err := oracle.MaxSAT(in)
		require.NoError(t, err)

		require.Equal(t, ex.Found, ms.Found, "seed %d", seed)
		if ex.Found {
			assert.Equal(t, ex.Cost, ms.Cost, "seed %d", seed)
			ok, err := instance.IsCover(in, ms.Assignment)
			require.NoError(t, err)
			assert.True(t, ok, "seed %d", seed)
		}
	}
}
