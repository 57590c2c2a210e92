// Package bnb_test provides helpers shared across the external test files of
// this package: instance fixtures and oracle cross-checks.
package bnb_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/setcover/bnb"
	"github.com/katalvlaran/setcover/builder"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// seedCount is the number of random instances per property test.
	seedCount = 25

	// costTol absorbs float summation order differences.
	costTol = 1e-9
)

// mustInstance builds an instance from raw rows or fails the test.
func mustInstance(t testing.TB, n int, costs []float64, items [][]int) *instance.Instance {
	t.Helper()
	in, err := instance.New(n, costs, items)
	require.NoError(t, err)

	return in
}

// randomInstance draws a small instance that may or may not be coverable.
func randomInstance(t testing.TB, seed int64, items, sets int, p float64, maxCost int) *instance.Instance {
	t.Helper()
	in, err := builder.BuildInstance(items,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostFn(builder.UniformIntCostFn(1, maxCost))},
		builder.RandomSparse(sets, p))
	require.NoError(t, err)

	return in
}

// randomCoverable is randomInstance plus one singleton per item.
func randomCoverable(t testing.TB, seed int64, items, sets int, p float64) *instance.Instance {
	t.Helper()
	in, err := builder.BuildInstance(items,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostFn(builder.UniformIntCostFn(1, 12))},
		builder.RandomSparse(sets, p), builder.Singletons())
	require.NoError(t, err)

	return in
}

// mustSearch runs bnb.Search with a background context.
func mustSearch(t testing.TB, in *instance.Instance, opts bnb.Options) bnb.SearchResult {
	t.Helper()
	res, err := bnb.Search(context.Background(), in, opts)
	require.NoError(t, err)

	return res
}

// assertSound checks that a found assignment is a cover with the reported cost.
func assertSound(t testing.TB, in *instance.Instance, res bnb.SearchResult) {
	t.Helper()
	if !res.Found {
		assert.Nil(t, res.Assignment)

		return
	}
	ok, err := instance.IsCover(in, res.Assignment)
	require.NoError(t, err)
	assert.True(t, ok, "assignment must cover every item")
	cost, err := instance.CostOf(in, res.Assignment)
	require.NoError(t, err)
	assert.InDelta(t, cost, res.BestCost, costTol)
}

// assertMatchesExhaustive compares a proven result with brute-force enumeration.
func assertMatchesExhaustive(t testing.TB, in *instance.Instance, res bnb.SearchResult) {
	t.Helper()
	require.True(t, res.ProvenOptimal)
	ex, err := oracle.Exhaustive(in)
	require.NoError(t, err)
	require.Equal(t, ex.Found, res.Found)
	if ex.Found {
		assert.InDelta(t, ex.Cost, res.BestCost, costTol)
	}
}
