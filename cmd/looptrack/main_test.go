package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"looptrack/internal/interpreter"
	"looptrack/internal/logging"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(logging.NewNop())
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootReports(t *testing.T) {
	out, err := run(t, "R50\nL50\n")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 1\nPart 2: 1\n", out)

	out, err = run(t, "R50\nR150\n")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 1\nPart 2: 2\n", out)
}

func TestRootEmptyInput(t *testing.T) {
	out, err := run(t, "")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 0\nPart 2: 0\n", out)
}

func TestRootParseError(t *testing.T) {
	out, err := run(t, "R50\nL\n")
	require.Error(t, err)
	require.Empty(t, out)

	var perr *interpreter.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Line)
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := run(t, "R1\n", "input.txt")
	require.Error(t, err)
}
