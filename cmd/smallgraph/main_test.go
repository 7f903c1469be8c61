package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/smallgraph/internal/cli"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, `
insert "a" { value = "A" }
insert "b" { value = "B" }
insert "c" { value = "C" }
remove "b" {}
insert "d" { value = "D" }
expect {
  count  = 3
  handle = { d = "1:1" }
}
`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-output", "yaml", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "scenario: main.hcl")
	require.Contains(t, out.String(), "1:1")
}

func TestRun_ScenarioFailure(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, `
insert "a" {}
expect {
  count = 2
}
`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{path})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr), "scenario failures map to the generic failure exit code")
	require.Contains(t, err.Error(), "count: want 2, got 1")
	require.Contains(t, out.String(), "FAILED")
}

func TestRun_ParseFailure(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, `insert "a" {`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{path})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse scenario")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, cli.ExitUsage, exitErr.Code)
}
