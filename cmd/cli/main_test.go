package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/citylink/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_Scenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := "London Paris\nParis Berlin\n\nLondon Berlin\nLondon Madrid\n"
	filePath := filepath.Join(t.TempDir(), "cities.txt")
	require.NoError(t, os.WriteFile(filePath, []byte(input), 0600), "failed to set up test file")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t,
		"connection: lval: London rval: Paris\n"+
			"connection: lval: Paris rval: Berlin\n"+
			"request: lval: London rval: Berlin: connected\n"+
			"request: lval: London rval: Madrid: not connected\n",
		out.String())
	require.Empty(t, errOut.String(), "nothing is logged at the default level")
}

func TestRun_SettingsFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := "a b\nb c\n\na c\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "graph.txt"), []byte(input), 0600))
	settings := `
		input = "${config_dir}/graph.txt"

		log {
			level = "info"
		}

		output {
			echo_connections = false
		}
	`
	settingsPath := filepath.Join(dir, "citylink.hcl")
	require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0600))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-config", settingsPath})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "request: lval: a rval: c: connected\n", out.String())
	require.Contains(t, errOut.String(), "Run finished.")
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	missing := filepath.Join(t.TempDir(), "nope.txt")

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{missing})

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_InvalidSettingsFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	settingsPath := filepath.Join(t.TempDir(), "citylink.hcl")
	require.NoError(t, os.WriteFile(settingsPath, []byte("log {\n"), 0600))

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", settingsPath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "startup failed")
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
