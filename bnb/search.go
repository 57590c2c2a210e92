// Package bnb — search driver over the include/exclude tree.
//
// Rationale (succinct):
//  1. One iterative loop over a single "current node" variable; the tree lives
//     in parent links, so no recursion and no explicit stack.
//  2. Infeasible and covered nodes move on with Negate unconditionally.
//  3. Time, node and context limits are polled only at nodes rejected by the
//     bound.
//  4. Optional warm start (greedy) and root LP bound run before the loop; the
//     LP is size-capped and raced against the same deadline and ctx.
//
// Complexity:
//   - Worst case exponential in set_count (exact search); pruning makes it practical.
//   - Per node: O(set_count + Σ|row|) for propagation, bound and branching.

package bnb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/setcover/greedy"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/lpbound"
)

const (
	methodSearch = "Search"

	// lpTol is the slack allowed before rounding the LP bound up.
	lpTol = 1e-6
)

// searchEngine holds the incumbent, the budget and the counters of one search.
type searchEngine struct {
	in  *instance.Instance
	est *Estimator
	ctx context.Context
	log *slog.Logger

	onIncumbent func(Incumbent)
	nodeLimit   int64

	// Time budget
	start       time.Time
	useDeadline bool
	deadline    time.Time

	// Incumbent (upper bound)
	found    bool
	bestCost float64
	best     []int

	// Statistics
	nodes, fails, prunes, incumbents int64
	maxDepth                         int
}

func newSearchEngine(ctx context.Context, in *instance.Instance, opts Options) *searchEngine {
	e := &searchEngine{
		in:          in,
		est:         NewEstimator(in),
		ctx:         ctx,
		log:         opts.Logger,
		onIncumbent: opts.OnIncumbent,
		nodeLimit:   opts.NodeLimit,
		start:       time.Now(),
		bestCost:    math.Inf(1),
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = e.start.Add(opts.TimeLimit)
	}

	return e
}

// record installs a strictly cheaper cover as the incumbent and notifies the hook.
func (e *searchEngine) record(cost float64, assignment []int, depth int, seeded bool) {
	e.found = true
	e.bestCost = cost
	e.best = assignment
	e.incumbents++
	e.log.Debug("incumbent improved",
		slog.Float64("cost", cost),
		slog.Int64("nodes", e.nodes),
		slog.Int("depth", depth),
		slog.Bool("seeded", seeded))
	if e.onIncumbent != nil {
		e.onIncumbent(Incumbent{
			Cost:    cost,
			Nodes:   e.nodes,
			Depth:   depth,
			Elapsed: time.Since(e.start),
			Seeded:  seeded,
		})
	}
}

// seedUB installs the greedy cover as the initial incumbent.
func (e *searchEngine) seedUB() {
	res, err := greedy.Solve(e.in)
	if err != nil || !res.Feasible {
		return
	}
	e.record(res.Cost, res.Assignment, 0, true)
}

type lpOutcome struct {
	bound lpbound.Bound
	err   error
}

// rootBoundCloses reports whether the LP relaxation proves the seeded
// incumbent optimal, or proves that no cover exists.
//
// The simplex cannot be interrupted, so it runs in its own goroutine and is
// abandoned when the deadline or ctx expires first. lpbound.MaxCells bounds
// how long an abandoned solve keeps running.
func (e *searchEngine) rootBoundCloses() bool {
	if _, stop := e.shouldStop(); stop {
		return false
	}

	done := make(chan lpOutcome, 1)
	go func() {
		b, err := lpbound.Compute(e.in)
		done <- lpOutcome{bound: b, err: err}
	}()

	var expired <-chan time.Time
	if e.useDeadline {
		timer := time.NewTimer(time.Until(e.deadline))
		defer timer.Stop()
		expired = timer.C
	}

	var out lpOutcome
	select {
	case out = <-done:
	case <-expired:
		e.log.Debug("root LP bound abandoned", slog.String("cause", "deadline"))

		return false
	case <-e.ctx.Done():
		e.log.Debug("root LP bound abandoned", slog.String("cause", e.ctx.Err().Error()))

		return false
	}

	b, err := out.bound, out.err
	switch {
	case errors.Is(err, lpbound.ErrInfeasible):
		return true
	case errors.Is(err, lpbound.ErrTooLarge):
		e.log.Debug("root LP bound skipped", slog.String("error", err.Error()))

		return false
	case err != nil:
		e.log.Warn("root LP bound unavailable", slog.String("error", err.Error()))

		return false
	}
	lb := lpbound.Rounded(b.Value, e.est.Integral(), lpTol)
	e.log.Debug("root LP bound", slog.Float64("lp", b.Value), slog.Float64("bound", lb))

	return e.found && lb >= e.bestCost-integralTol
}

// shouldStop polls the node budget, the deadline and ctx.
func (e *searchEngine) shouldStop() (StopReason, bool) {
	if e.nodeLimit > 0 && e.nodes >= e.nodeLimit {
		return StopNodeLimit, true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return StopDeadline, true
	}
	if err := e.ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return StopDeadline, true
		}

		return StopCanceled, true
	}

	return StopExhausted, false
}

// run drives the current node until the tree is exhausted or a budget stops it.
//
// Complexity: O(nodes · (set_count + Σ|row|)) time; each node clones the two
// outer row slices, so live memory is O(depth · (set_count + item_count)).
func (e *searchEngine) run(st *State) StopReason {
	for st != nil {
		e.nodes++
		if st.depth > e.maxDepth {
			e.maxDepth = st.depth
		}

		switch {
		case !st.feasible:
			e.fails++
			st = st.Negate()

		case st.IsAllCovered():
			if st.cost < e.bestCost {
				e.record(st.cost, st.Assignment(len(e.in.Sets)), st.depth, false)
			}
			st = st.Negate()

		case st.OptimisticCost() >= e.bestCost:
			e.prunes++
			if reason, stop := e.shouldStop(); stop {
				return reason
			}
			st = st.Negate()

		default:
			st = st.Descend()
		}
	}

	return StopExhausted
}

func (e *searchEngine) result(reason StopReason) SearchResult {
	res := emptyResult()
	res.Found = e.found
	res.ProvenOptimal = reason == StopExhausted || reason == StopRootBound
	res.Nodes = e.nodes
	res.Fails = e.fails
	res.Prunes = e.prunes
	res.Incumbents = e.incumbents
	res.MaxDepth = e.maxDepth
	res.Reason = reason
	res.Elapsed = time.Since(e.start)
	if e.found {
		res.BestCost = e.bestCost
		res.Assignment = e.best
	}

	return res
}

// Search runs branch-and-bound on in and returns the best cover found.
//
// The search stops when the tree is exhausted (ProvenOptimal=true), or when
// opts.TimeLimit, opts.NodeLimit or ctx expires at a pruned node, in which
// case the incumbent is returned as-is and may be absent. A nil ctx is treated
// as context.Background().
//
// Errors:
//   - ErrNilInstance, ErrNegativeTimeLimit, ErrNegativeNodeLimit.
//   - instance validation sentinels for malformed instances.
//
// Complexity: exponential in set_count in the worst case (2^set_count leaves);
// O(set_count + item_count + total items) before the first node, plus the
// greedy pass and the capped LP when enabled.
func Search(ctx context.Context, in *instance.Instance, opts Options) (SearchResult, error) {
	if in == nil {
		return emptyResult(), ErrNilInstance
	}
	if err := validateOptions(opts); err != nil {
		return emptyResult(), fmt.Errorf("%s: %w", methodSearch, err)
	}
	if err := instance.Validate(in); err != nil {
		return emptyResult(), fmt.Errorf("%s: %w", methodSearch, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e := newSearchEngine(ctx, in, opts)
	if opts.SeedWithGreedy {
		e.seedUB()
	}

	root := newRootState(e.est, in)
	var reason StopReason
	if opts.RootLPBound && e.rootBoundCloses() {
		e.nodes = 1
		reason = StopRootBound
	} else {
		reason = e.run(root)
	}

	res := e.result(reason)
	e.log.Debug("search finished",
		slog.String("reason", reason.String()),
		slog.Bool("found", res.Found),
		slog.Float64("best_cost", res.BestCost),
		slog.Bool("proven_optimal", res.ProvenOptimal),
		slog.Int64("nodes", res.Nodes),
		slog.Int64("fails", res.Fails),
		slog.Int64("prunes", res.Prunes),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// Solve is Search with a background context and only a time limit.
func Solve(in *instance.Instance, timeLimit time.Duration) (SearchResult, error) {
	opts := DefaultOptions()
	opts.TimeLimit = timeLimit

	return Search(context.Background(), in, opts)
}
