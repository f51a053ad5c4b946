package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainorder/chain"
	sharedver "github.com/katalvlaran/chainorder/internal/version"
)

// run executes the root command with args against a config file that does
// not exist unless cfgBody is non-empty.
func run(t *testing.T, cfgBody string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "chainorder.yaml")
	if cfgBody != "" {
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))
	}

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestSolveDefaultMethod(t *testing.T) {
	out, _, err := run(t, "", "solve", "40,20,30,10,30")
	require.NoError(t, err)
	assert.Equal(t, "Minimum Multiplications: 26000\n", out)
}

func TestSolveShellSplitArgs(t *testing.T) {
	out, _, err := run(t, "", "solve", "1,", "2,", "3,", "4", "-m", "bt")
	require.NoError(t, err)
	assert.Equal(t, "Minimum Multiplications: 18\n", out)
}

func TestSolveWithOrder(t *testing.T) {
	out, _, err := run(t, "", "solve", "40,20,30,10,30", "--method", "Divide & Conquer", "--order")
	require.NoError(t, err)
	assert.Equal(t, "Minimum Multiplications: 26000\nParenthesization: ((A1(A2A3))A4)\n", out)
}

func TestSolveConfigDefaults(t *testing.T) {
	out, _, err := run(t, "method: memo\nshow_order: true\n", "solve", "1,2,3,4")
	require.NoError(t, err)
	assert.Contains(t, out, "Parenthesization: ((A1A2)A3)")

	out, _, err = run(t, "show_order: true\n", "solve", "1,2,3,4", "--order=false")
	require.NoError(t, err)
	assert.Equal(t, "Minimum Multiplications: 18\n", out)
}

func TestSolveInvalidInput(t *testing.T) {
	out, stderr, err := run(t, "", "solve", "3,abc,5")
	assert.ErrorIs(t, err, chain.ErrMalformedInput)
	assert.Equal(t, "Invalid input!\n", out)
	assert.Contains(t, stderr, "rejecting dimensions")

	out, _, err = run(t, "", "solve", "2147483648,2147483648,2147483648")
	assert.ErrorIs(t, err, chain.ErrOverflow)
	assert.Equal(t, "Invalid input!\n", out)
}

func TestSolveStrayCommas(t *testing.T) {
	for _, args := range [][]string{
		{"1,2,3,"},
		{",1,2"},
		{"1,", "2,", "3,"},
		{"1,,2,3"},
	} {
		out, _, err := run(t, "", append([]string{"solve"}, args...)...)
		assert.ErrorIs(t, err, chain.ErrMalformedInput, "%q", args)
		assert.Equal(t, "Invalid input!\n", out, "%q", args)
	}
}

func TestSolveSpaceSeparatedArgsRejected(t *testing.T) {
	out, _, err := run(t, "", "solve", "40", "20", "30")
	assert.ErrorIs(t, err, chain.ErrMalformedInput)
	assert.Equal(t, "Invalid input!\n", out)
}

func TestCompareStrayComma(t *testing.T) {
	out, _, err := run(t, "", "compare", "1,2,3,")
	assert.ErrorIs(t, err, chain.ErrMalformedInput)
	assert.Equal(t, 3, strings.Count(out, "Invalid input!"))
}

func TestSolveUnknownMethodFlag(t *testing.T) {
	_, _, err := run(t, "", "solve", "1,2,3", "-m", "greedy")
	assert.ErrorIs(t, err, chain.ErrUnknownMethod)
}

func TestSolveBadConfig(t *testing.T) {
	_, _, err := run(t, "method: greedy\n", "solve", "1,2,3")
	assert.ErrorIs(t, err, chain.ErrUnknownMethod)
}

func TestCompareAgrees(t *testing.T) {
	out, _, err := run(t, "", "compare", "30,35,15,5,10,20,25")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "30,35,15,5,10,20,25")
	for i, m := range chain.Methods {
		assert.Contains(t, lines[i+1], m.String())
		assert.Contains(t, lines[i+1], "Minimum Multiplications: 15125")
	}
}

func TestCompareInvalid(t *testing.T) {
	out, _, err := run(t, "", "compare", "1")
	assert.ErrorIs(t, err, chain.ErrTooFewDimensions)
	assert.Equal(t, 3, strings.Count(out, "Invalid input!"))
}

func TestBacktrackingWarning(t *testing.T) {
	_, stderr, err := run(t, "backtracking:\n  warn_matrices: 2\n", "solve", "2,3,4,5", "-m", "backtracking")
	require.NoError(t, err)
	assert.Contains(t, stderr, "backtracking grows exponentially")
}

func TestVersionCmdOutput(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, sharedver.Get().String(), strings.TrimSpace(out))
}

func TestRootCmdHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"solve", "compare", "form", "version"} {
		_, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
	}
}

func TestJoinDimensionArgs(t *testing.T) {
	assert.Equal(t, "40,20,30", joinDimensionArgs([]string{"40,20,30"}))
	assert.Equal(t, "40, 20, 30", joinDimensionArgs([]string{"40,", "20,", "30"}))
	assert.Equal(t, "40 , 20", joinDimensionArgs([]string{"40", ",", "20"}))
	assert.Equal(t, "1,2,3,", joinDimensionArgs([]string{"1,2,3,"}))
	assert.Equal(t, ",1,2", joinDimensionArgs([]string{",1,2"}))
	assert.Equal(t, "40 20", joinDimensionArgs([]string{"40", "20"}))
}
