package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeInstanceFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolve_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeInstanceFile(t, dir, "pair.txt", "2 3\n1 0\n1 1\n1 0 1\n")

	out, _, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "1 1\n0 0 1\n", out)
}

func TestSolve_BatchKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeInstanceFile(t, dir, "a.txt", "2 3\n1 0\n1 1\n1 0 1\n")
	b := writeInstanceFile(t, dir, "b.txt", "2 1\n1 0\n")
	c := writeInstanceFile(t, dir, "c.txt", "0 1\n4\n")

	out, _, err := run(t, "solve", "--workers", "2", a, b, c)
	require.NoError(t, err)
	want := "# " + a + "\n1 1\n0 0 1\n" +
		"# " + b + "\ninfeasible\n" +
		"# " + c + "\n0 1\n0\n"
	assert.Equal(t, want, out)
}

func TestSolve_MetricsAndJSONLogs(t *testing.T) {
	dir := t.TempDir()
	path := writeInstanceFile(t, dir, "pair.txt", "2 3\n1 0\n1 1\n1 0 1\n")
	prom := filepath.Join(dir, "out.prom")

	_, logs, err := run(t, "--log-format", "json", "solve", "--metrics-file", prom, "--greedy-seed", path)
	require.NoError(t, err)
	assert.Contains(t, logs, `"run_id"`)
	assert.Contains(t, logs, `"msg":"solved"`)

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "setcover_search_searches_total")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve")
	assert.Error(t, err, "at least one file is required")

	_, _, err = run(t, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := writeInstanceFile(t, dir, "bad.txt", "2 1\n1 5\n")
	_, _, err = run(t, "solve", bad)
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "solve", bad)
	assert.Error(t, err)
}

func TestGen_RoundTripsThroughSolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.txt")

	_, _, err := run(t, "gen", "--items", "10", "--sets", "8", "--p", "0.3", "--seed", "5", "-o", path)
	require.NoError(t, err)

	out, _, err := run(t, "verify", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok exhaustive cost "), out)

	out, _, err = run(t, "gen", "--kind", "grid", "--rows", "2", "--cols", "2", "--singletons=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "4 4\n"), out)

	_, _, err = run(t, "gen", "--kind", "hex")
	assert.Error(t, err)
	_, _, err = run(t, "gen", "--min-cost", "5", "--max-cost", "1")
	assert.Error(t, err)
}

func TestBound(t *testing.T) {
	dir := t.TempDir()
	tri := writeInstanceFile(t, dir, "tri.txt", "3 3\n1 0 1\n1 1 2\n1 0 2\n")

	out, _, err := run(t, "bound", tri)
	require.NoError(t, err)
	assert.Equal(t, "lp 1.5\ngreedy 2\n", out)

	none := writeInstanceFile(t, dir, "none.txt", "2 1\n1 0\n")
	out, _, err = run(t, "bound", none)
	require.NoError(t, err)
	assert.Equal(t, "infeasible\n", out)

	var sb strings.Builder
	sb.WriteString("130 130\n")
	for i := 0; i < 130; i++ {
		fmt.Fprintf(&sb, "1 %d\n", i)
	}
	big := writeInstanceFile(t, dir, "big.txt", sb.String())
	out, _, err = run(t, "bound", big)
	require.NoError(t, err)
	assert.Equal(t, "lp skipped\ngreedy 130\n", out)
}

func TestVerify_LargeUsesMaxSAT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	_, _, err := run(t, "gen", "--items", "15", "--sets", "20", "--p", "0.2", "--seed", "3", "-o", path)
	require.NoError(t, err)

	out, _, err := run(t, "verify", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok maxsat cost "), out)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInstanceFile(t, dir, "cfg.yaml", "solver:\n  node_limit: 1\nlogging:\n  level: error\n")
	path := writeInstanceFile(t, dir, "pair.txt", "2 3\n1 0\n1 1\n1 0 1\n")

	// Node limit 1 still solves this instance: no node is rejected before exhaustion.
	out, _, err := run(t, "--config", cfg, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "1 1\n0 0 1\n", out)

	t.Setenv("SETCOVER_LOG_FORMAT", "yaml")
	_, _, err = run(t, "solve", path)
	assert.Error(t, err)
}
