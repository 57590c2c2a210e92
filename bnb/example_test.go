package bnb_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/setcover/bnb"
	"github.com/katalvlaran/setcover/instance"
)

// ExampleSearch solves a tiny instance to proven optimality and prints the
// result in the solution report format.
func ExampleSearch() {
	in, err := instance.ParseString("4 5\n3 0 1\n3 2 3\n5 0 1 2 3\n1 0\n1 3\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bnb.Search(context.Background(), in, bnb.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reason:", res.Reason, "found:", res.Found)

	_ = instance.WriteSolution(os.Stdout, res.BestCost, res.ProvenOptimal, res.Assignment)
	// Output:
	// reason: exhausted found: true
	// 5 1
	// 0 0 1 0 0
}

// ExampleSearch_options warm-starts the search with the greedy cover and
// watches incumbent improvements.
func ExampleSearch_options() {
	in, _ := instance.ParseString("3 3\n1 0 1\n1 1 2\n1 0 2\n")

	opts := bnb.DefaultOptions()
	opts.SeedWithGreedy = true
	opts.OnIncumbent = func(inc bnb.Incumbent) {
		fmt.Println("incumbent:", inc.Cost, "seeded:", inc.Seeded)
	}
	res, _ := bnb.Search(context.Background(), in, opts)
	fmt.Println("best:", res.BestCost, "proven:", res.ProvenOptimal)
	// Output:
	// incumbent: 2 seeded: true
	// best: 2 proven: true
}
