package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/setcover/bnb"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/oracle"
	"github.com/spf13/cobra"
)

// ErrMismatch is returned by verify when the search disagrees with the oracle.
var ErrMismatch = errors.New("verify: search and oracle disagree")

const verifyTol = 1e-9

func (a *app) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Solve FILE and cross-check the result with exhaustive search or MaxSAT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := instance.ReadFile(args[0])
			if err != nil {
				return err
			}

			opts := a.cfg.SolverOptions()
			opts.Logger = a.log
			res, err := bnb.Search(cmd.Context(), in, opts)
			if err != nil {
				return err
			}
			if !res.ProvenOptimal {
				return fmt.Errorf("verify: search stopped early (%s); raise the time limit", res.Reason)
			}

			name, ref, err := referenceOptimum(in)
			if err != nil {
				return err
			}
			if ref.Found != res.Found ||
				(ref.Found && math.Abs(ref.Cost-res.BestCost) > verifyTol) {
				return fmt.Errorf("%w: search found=%t cost=%g, %s found=%t cost=%g",
					ErrMismatch, res.Found, res.BestCost, name, ref.Found, ref.Cost)
			}
			if res.Found {
				ok, err := instance.IsCover(in, res.Assignment)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: assignment is not a cover", ErrMismatch)
				}
			}

			fmt.Fprintf(a.out, "ok %s cost %g nodes %d\n", name, res.BestCost, res.Nodes)

			return nil
		},
	}
}

// referenceOptimum picks exhaustive enumeration for small instances and
// MaxSAT otherwise.
func referenceOptimum(in *instance.Instance) (string, oracle.Result, error) {
	if in.SetCount() <= oracle.MaxExhaustiveSets {
		res, err := oracle.Exhaustive(in)

		return "exhaustive", res, err
	}
	res, err := oracle.MaxSAT(in)

	return "maxsat", res, err
}
