package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/setcover/bnb"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// solveFlags override the solver and batch sections of the configuration.
type solveFlags struct {
	timeLimit   time.Duration
	nodeLimit   int64
	greedySeed  bool
	lpBound     bool
	workers     int
	metricsFile string
}

func (a *app) newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve instances and print the cost, the optimality flag and the assignment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applySolveFlags(cmd, f)

			return a.runSolve(cmd.Context(), args)
		},
	}
	fl := cmd.Flags()
	fl.DurationVar(&f.timeLimit, "time-limit", 0, "wall-clock budget per instance (0 = unlimited)")
	fl.Int64Var(&f.nodeLimit, "node-limit", 0, "node budget per instance (0 = unlimited)")
	fl.BoolVar(&f.greedySeed, "greedy-seed", false, "start from the greedy cover")
	fl.BoolVar(&f.lpBound, "lp-bound", false, "try to close the search with the root LP bound")
	fl.IntVar(&f.workers, "workers", 0, "instances solved concurrently")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

// applySolveFlags copies explicitly set flags over the loaded configuration.
func (a *app) applySolveFlags(cmd *cobra.Command, f solveFlags) {
	fl := cmd.Flags()
	if fl.Changed("time-limit") {
		a.cfg.Solver.TimeLimit = f.timeLimit
	}
	if fl.Changed("node-limit") {
		a.cfg.Solver.NodeLimit = f.nodeLimit
	}
	if fl.Changed("greedy-seed") {
		a.cfg.Solver.SeedWithGreedy = f.greedySeed
	}
	if fl.Changed("lp-bound") {
		a.cfg.Solver.RootLPBound = f.lpBound
	}
	if fl.Changed("workers") && f.workers > 0 {
		a.cfg.Batch.Workers = f.workers
	}
	if fl.Changed("metrics-file") {
		a.cfg.Metrics.Enabled = f.metricsFile != ""
		a.cfg.Metrics.TextfilePath = f.metricsFile
	}
}

// solveOutcome is the report of one file, printed after the batch in argument order.
type solveOutcome struct {
	path   string
	report bytes.Buffer
}

func (a *app) runSolve(ctx context.Context, paths []string) error {
	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
	)
	if a.cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		collector = metrics.NewCollector(reg)
	}

	outcomes := make([]solveOutcome, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Batch.Workers)
	for i, path := range paths {
		i, path := i, path
		outcomes[i].path = path
		g.Go(func() error {
			return a.solveOne(gctx, path, collector, &outcomes[i].report)
		})
	}
	err := g.Wait()

	for i := range outcomes {
		if len(paths) > 1 {
			fmt.Fprintf(a.out, "# %s\n", outcomes[i].path)
		}
		_, _ = a.out.Write(outcomes[i].report.Bytes())
	}
	if err != nil {
		return err
	}

	if reg != nil {
		if err := metrics.WriteTextfile(a.cfg.Metrics.TextfilePath, reg); err != nil {
			return err
		}
		a.log.Info("metrics written", slog.String("path", a.cfg.Metrics.TextfilePath))
	}

	return nil
}

// solveOne searches one instance file and renders its report into w.
func (a *app) solveOne(ctx context.Context, path string, collector *metrics.Collector, w *bytes.Buffer) error {
	log := a.log.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("file", filepath.Base(path)),
	)

	in, err := instance.ReadFile(path)
	if err != nil {
		log.Error("read instance", slog.String("error", err.Error()))

		return err
	}
	log.Info("solving", slog.Int("items", in.ItemCount), slog.Int("sets", in.SetCount()))

	opts := a.cfg.SolverOptions()
	opts.Logger = log
	if collector != nil {
		opts.OnIncumbent = collector.IncumbentHook(path)
	}

	res, err := bnb.Search(ctx, in, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if collector != nil {
		collector.ObserveResult(path, res)
	}
	log.Info("solved",
		slog.String("reason", res.Reason.String()),
		slog.Bool("found", res.Found),
		slog.Float64("cost", res.BestCost),
		slog.Bool("proven_optimal", res.ProvenOptimal),
		slog.Int64("nodes", res.Nodes),
		slog.Duration("elapsed", res.Elapsed))

	return writeReport(w, res)
}

// writeReport prints the solution report, or one status line when no cover
// was found: "infeasible" when that is proven, "unknown" otherwise.
func writeReport(w *bytes.Buffer, res bnb.SearchResult) error {
	err := instance.WriteSolution(w, res.BestCost, res.ProvenOptimal, res.Assignment)
	if !errors.Is(err, instance.ErrNoSolution) {
		return err
	}
	if res.ProvenOptimal {
		w.WriteString("infeasible\n")
	} else {
		w.WriteString("unknown\n")
	}

	return nil
}
