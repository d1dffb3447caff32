package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	if args == nil {
		// SetArgs(nil) would fall back to os.Args, which holds test flags.
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRootClassifiesStdin(t *testing.T) {
	out := execute(t, "⠋ Loading branches...")
	require.Contains(t, out, `"type": "loading"`)
	require.Contains(t, out, `"message": "Loading branches..."`)
	require.True(t, strings.HasSuffix(out, "\n"))
}

func TestRootEmptyInput(t *testing.T) {
	out := execute(t, "")
	require.Contains(t, out, `"type": "empty"`)
	require.Contains(t, out, `"message": "Screen is empty"`)
}

func TestRootAppFlag(t *testing.T) {
	raw := "mytool usage: mytool <command>"

	out := execute(t, raw, "--app", "mytool")
	require.Contains(t, out, `"type": "help"`)

	out = execute(t, raw, "--app", "gwm")
	require.Contains(t, out, `"type": "unknown"`)
}

func TestRootEmitsGlyphsLiterally(t *testing.T) {
	out := execute(t, "✓ Worktree created", "--app", "gwm")
	require.Contains(t, out, "✓ Worktree created")
	require.NotContains(t, out, `\u2713`)
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "", "version")
	require.Equal(t, Version+"\n", out)
}
