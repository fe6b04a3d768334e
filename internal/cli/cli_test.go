package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(&errOut)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestCount_Stdin(t *testing.T) {
	out, logs, err := run(t, "0 1\n1 2\n2 0\n2 3\n", "count")
	require.NoError(t, err)
	assert.Equal(t, "triangles: 1\n", out)
	assert.Contains(t, logs, "Counted triangles")
	assert.NotContains(t, logs, "triangle plan", "debug hidden by default")
}

func TestCount_VerboseAndFlags(t *testing.T) {
	out, logs, err := run(t, "0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n",
		"count", "-v", "--method", "forward-binary", "--reorder", "lowest")
	require.NoError(t, err)
	assert.Equal(t, "triangles: 4\n", out)
	assert.Contains(t, logs, "triangle plan")
	assert.Contains(t, logs, "method=forward-binary")
}

func TestCount_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tricount.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("method = \"oriented\"\nsmall_graph_threshold = 0\n"), 0o600))
	graphPath := filepath.Join(dir, "k4.txt")
	require.NoError(t, os.WriteFile(graphPath, []byte("# K4\n0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n"), 0o600))

	out, logs, err := run(t, "", "count", "-v", "--config", cfgPath, graphPath)
	require.NoError(t, err)
	assert.Equal(t, "triangles: 4\n", out)
	assert.Contains(t, logs, "method=oriented")

	_, logs, err = run(t, "", "count", "-v", "--config", cfgPath, "--method", "direct", graphPath)
	require.NoError(t, err)
	assert.Contains(t, logs, "method=direct")
}

func TestCount_Errors(t *testing.T) {
	_, _, err := run(t, "0 1\n", "count", "--method", "psychic")
	require.Error(t, err)

	_, _, err = run(t, "zero one\n", "count")
	require.Error(t, err)

	_, _, err = run(t, "", "count", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)

	_, _, err = run(t, "0 1\n1 2\n0 2\n", "count", "--max-workspace", "1", "--small-threshold", "0")
	require.Error(t, err)
}

func TestGenerate_PipesIntoCount(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"generate", "complete", "-n", "7"}, "triangles: 35\n"},
		{[]string{"generate", "wheel", "-n", "12"}, "triangles: 11\n"},
		{[]string{"generate", "grid", "--rows", "4", "--cols", "4"}, "triangles: 0\n"},
		{[]string{"generate", "bipartite", "--rows", "3", "--cols", "5"}, "triangles: 0\n"},
		{[]string{"generate", "platonic", "--solid", "Octahedron"}, "triangles: 8\n"},
		{[]string{"generate", "star", "-n", "9"}, "triangles: 0\n"},
		{[]string{"generate", "cycle", "-n", "3"}, "triangles: 1\n"},
		{[]string{"generate", "path", "-n", "5"}, "triangles: 0\n"},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args[1:], " "), func(t *testing.T) {
			edges, _, err := run(t, "", tc.args...)
			require.NoError(t, err)
			out, _, err := run(t, edges, "count")
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestGenerate_RandomIsSeeded(t *testing.T) {
	a, _, err := run(t, "", "generate", "random", "-n", "40", "-p", "0.2", "--seed", "5")
	require.NoError(t, err)
	b, _, err := run(t, "", "generate", "random", "-n", "40", "-p", "0.2", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "# vertices 40\n"))
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "moebius")
	require.ErrorContains(t, err, "unknown topology")

	_, _, err = run(t, "", "generate", "platonic", "--solid", "Sphere")
	require.ErrorContains(t, err, "unknown solid")

	_, _, err = run(t, "", "generate", "cycle", "-n", "2")
	require.Error(t, err)
}
