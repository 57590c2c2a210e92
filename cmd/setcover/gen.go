package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/setcover/builder"
	"github.com/katalvlaran/setcover/instance"
	"github.com/spf13/cobra"
)

type genFlags struct {
	kind       string
	items      int
	sets       int
	p          float64
	degree     int
	rows, cols int
	seed       int64
	minCost    int
	maxCost    int
	singletons bool
	out        string
}

func (a *app) newGenCmd() *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a generated instance in the text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := f.build()
			if err != nil {
				return err
			}

			return a.writeInstance(f.out, in)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "sparse", "generator: sparse, regular or grid")
	fl.IntVar(&f.items, "items", 20, "number of items (grid: rows*cols)")
	fl.IntVar(&f.sets, "sets", 30, "number of random sets")
	fl.Float64Var(&f.p, "p", 0.15, "membership probability (sparse)")
	fl.IntVar(&f.degree, "degree", 3, "items per set (regular)")
	fl.IntVar(&f.rows, "rows", 4, "grid rows")
	fl.IntVar(&f.cols, "cols", 5, "grid columns")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.IntVar(&f.minCost, "min-cost", 1, "smallest set cost")
	fl.IntVar(&f.maxCost, "max-cost", 10, "largest set cost")
	fl.BoolVar(&f.singletons, "singletons", true, "append one singleton set per item so the instance is coverable")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func (f genFlags) build() (*instance.Instance, error) {
	if f.minCost < 0 || f.maxCost < f.minCost {
		return nil, fmt.Errorf("gen: cost range [%d,%d] is invalid", f.minCost, f.maxCost)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithCostFn(builder.UniformIntCostFn(f.minCost, f.maxCost)),
	}

	var (
		items = f.items
		cons  []builder.Constructor
	)
	switch f.kind {
	case "sparse":
		cons = append(cons, builder.RandomSparse(f.sets, f.p))
	case "regular":
		cons = append(cons, builder.RandomRegular(f.sets, f.degree))
	case "grid":
		items = f.rows * f.cols
		cons = append(cons, builder.Grid(f.rows, f.cols))
	default:
		return nil, fmt.Errorf("gen: unknown kind %q", f.kind)
	}
	if f.singletons {
		cons = append(cons, builder.Singletons())
	}

	return builder.BuildInstance(items, opts, cons...)
}

func (a *app) writeInstance(path string, in *instance.Instance) (err error) {
	var w io.Writer = a.out
	if path != "" {
		fh, cerr := os.Create(path)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := fh.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = fh
	}
	if err = instance.Write(w, in); err != nil {
		return err
	}
	a.log.Info("instance generated", "items", in.ItemCount, "sets", in.SetCount(), "path", path)

	return nil
}
