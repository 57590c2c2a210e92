package bnb

import (
	"errors"
	"log/slog"
	"math"
	"time"
)

// ErrNilInstance is returned when Search is called without an instance.
var ErrNilInstance = errors.New("bnb: instance is nil")

// ErrNegativeTimeLimit is returned when Options.TimeLimit < 0.
var ErrNegativeTimeLimit = errors.New("bnb: negative time limit")

// ErrNegativeNodeLimit is returned when Options.NodeLimit < 0.
var ErrNegativeNodeLimit = errors.New("bnb: negative node limit")

// StopReason tells why Search returned.
type StopReason int

const (
	// StopExhausted means the whole tree was explored; the result is proven.
	StopExhausted StopReason = iota
	// StopDeadline means Options.TimeLimit (or a ctx deadline) expired.
	StopDeadline
	// StopCanceled means ctx was canceled.
	StopCanceled
	// StopNodeLimit means Options.NodeLimit nodes were visited.
	StopNodeLimit
	// StopRootBound means the root LP bound met the seeded incumbent.
	StopRootBound
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopDeadline:
		return "deadline"
	case StopCanceled:
		return "canceled"
	case StopNodeLimit:
		return "node-limit"
	case StopRootBound:
		return "root-bound"
	default:
		return "unknown"
	}
}

// Incumbent describes one improvement of the best known cover.
type Incumbent struct {
	Cost    float64
	Nodes   int64
	Depth   int
	Elapsed time.Duration
	// Seeded is true for the warm-start cover installed before the search.
	Seeded bool
}

// Options configures Search.
type Options struct {
	// TimeLimit is a soft wall-clock budget; 0 disables it.
	TimeLimit time.Duration

	// NodeLimit stops the search after this many visited nodes; 0 disables it.
	NodeLimit int64

	// SeedWithGreedy installs the greedy cover as the initial incumbent.
	SeedWithGreedy bool

	// RootLPBound computes the LP relaxation at the root. If it meets the
	// seeded incumbent the search returns immediately, proven optimal.
	// Useful only together with SeedWithGreedy. Relaxations larger than
	// lpbound.MaxCells are skipped; the LP is abandoned when the time limit
	// or ctx expires.
	RootLPBound bool

	// Logger receives Debug records; nil discards them.
	Logger *slog.Logger

	// OnIncumbent is called synchronously on every strict improvement.
	OnIncumbent func(Incumbent)
}

// DefaultOptions returns the plain search: no budget, no warm start, no LP bound.
func DefaultOptions() Options {
	return Options{}
}

func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	if opts.NodeLimit < 0 {
		return ErrNegativeNodeLimit
	}

	return nil
}

// SearchResult is the outcome of one Search call.
type SearchResult struct {
	// Found reports whether any cover was found.
	Found bool

	// BestCost is the incumbent cost; +Inf when Found is false.
	BestCost float64

	// ProvenOptimal is true when the search finished: the incumbent is optimal,
	// or, with Found=false, the instance has no cover.
	ProvenOptimal bool

	// Assignment has one 0/1 entry per set; nil when Found is false.
	Assignment []int

	// Nodes counts visited tree nodes (root included).
	Nodes int64
	// Fails counts infeasible nodes.
	Fails int64
	// Prunes counts nodes rejected by the lower bound.
	Prunes int64
	// Incumbents counts incumbent improvements (seed included).
	Incumbents int64
	// MaxDepth is the deepest visited node; the root has depth 0.
	MaxDepth int

	Reason  StopReason
	Elapsed time.Duration
}

func emptyResult() SearchResult {
	return SearchResult{BestCost: math.Inf(1)}
}
