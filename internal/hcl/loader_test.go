package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSettings writes an HCL settings file into a fresh temp dir.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "citylink.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeSettings(t, `
		input = "${config_dir}/cities.txt"

		log {
			level  = "debug"
			format = "json"
		}

		output {
			echo_connections = false
		}
	`)

	settings, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	dir, err := filepath.Abs(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, dir+"/cities.txt", settings.InputPath)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
	require.NotNil(t, settings.EchoConnections)
	assert.False(t, *settings.EchoConnections)
}

func TestLoad_EmptyFileLeavesEverythingUnset(t *testing.T) {
	path := writeSettings(t, ``)

	settings, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Empty(t, settings.InputPath)
	assert.Empty(t, settings.LogLevel)
	assert.Empty(t, settings.LogFormat)
	assert.Nil(t, settings.EchoConnections)
}

func TestLoad_PartialLogBlock(t *testing.T) {
	path := writeSettings(t, `
		log {
			level = "info"
		}
	`)

	settings, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "info", settings.LogLevel)
	assert.Empty(t, settings.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax error", `log {`, "failed to parse"},
		{"unknown attribute", `colour = "blue"`, "failed to decode"},
		{"duplicate block", "log {\n}\nlog {\n}\n", "failed to decode"},
		{"wrong type", `input = ["a", "b"]`, "failed to decode"},
		{"unknown variable", `input = "${nope}/cities.txt"`, "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSettings(t, tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_DirectoryMergesInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"10-base.hcl": `
			input = "base.txt"
			log {
				level  = "info"
				format = "json"
			}
		`,
		"20-local.hcl": `
			log {
				level = "debug"
			}
		`,
		"README.md": `not settings`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}

	settings, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "base.txt", settings.InputPath)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
}

func TestLoad_DirectoryWithoutSettings(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl settings files")
}
