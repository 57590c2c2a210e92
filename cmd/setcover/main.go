// Command setcover solves weighted set-cover instances with branch-and-bound.
//
// Usage:
//
//	setcover solve [flags] FILE...   solve instances, print "<cost> <optimal>" + assignment
//	setcover gen [flags]             write a random instance
//	setcover bound FILE              print the LP lower bound and the greedy upper bound
//	setcover verify FILE             cross-check the search against an exact oracle
//
// Global flags: --config (YAML), --log-level, --log-format. Environment
// variables prefixed with SETCOVER_ override the config file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
