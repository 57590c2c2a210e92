package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/setcover/greedy"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/lpbound"
	"github.com/spf13/cobra"
)

func (a *app) newBoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bound FILE",
		Short: "Print the LP lower bound and the greedy upper bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := instance.ReadFile(args[0])
			if err != nil {
				return err
			}

			lp, err := lpbound.Compute(in)
			switch {
			case errors.Is(err, lpbound.ErrInfeasible):
				fmt.Fprintln(a.out, "infeasible")

				return nil
			case errors.Is(err, lpbound.ErrTooLarge):
				fmt.Fprintln(a.out, "lp skipped")
			case err != nil:
				return err
			default:
				fmt.Fprintf(a.out, "lp %.6g\n", lp.Value)
			}
			g, err := greedy.Solve(in)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "greedy %.6g\n", g.Cost)
			a.log.Debug("bounds", "lp", lp.Value, "greedy", g.Cost, "greedy_sets", len(g.Picks)-len(g.Removed))

			return nil
		},
	}
}
