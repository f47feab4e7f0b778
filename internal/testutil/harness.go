package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/citylink/internal/app"
	"github.com/specialistvlad/citylink/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SheetFile is the name RunSheet writes the city sheet under.
const SheetFile = "cities.txt"

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Summary   app.Summary
	Err       error
	Dir       string
}

// RunSheet writes sheet to a temp dir as SheetFile and runs the app on it
// with debug logging.
func RunSheet(t *testing.T, sheet string) *HarnessResult {
	t.Helper()
	return RunFiles(t, map[string]string{SheetFile: sheet}, &app.Config{})
}

// RunFiles writes every file into a fresh temp dir and runs the app with cfg.
// Relative InputPath and SettingsPath values in cfg are resolved against
// that dir; an empty InputPath points at SheetFile.
func RunFiles(t *testing.T, files map[string]string, cfg *app.Config) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir := t.TempDir()

	// 2. Write all files; nested names create their subdirectories.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 3. Point the config at the temp dir.
	run := *cfg
	if run.Flags.InputPath == "" && run.SettingsPath == "" {
		run.Flags.InputPath = SheetFile
	}
	if run.Flags.InputPath != "" && !filepath.IsAbs(run.Flags.InputPath) {
		run.Flags.InputPath = filepath.Join(tmpDir, run.Flags.InputPath)
	}
	if run.SettingsPath != "" && !filepath.IsAbs(run.SettingsPath) {
		run.SettingsPath = filepath.Join(tmpDir, run.SettingsPath)
	}
	if run.Flags.LogLevel == "" {
		run.Flags.LogLevel = "debug"
	}

	// 4. Build and run the app.
	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	result := &HarnessResult{Dir: tmpDir}

	testApp, err := app.NewApp(out, logs, &run, hcl.NewLoader())
	if err == nil {
		result.Summary, err = testApp.Run(context.Background())
	}
	result.Err = err
	result.Output = out.String()
	result.LogOutput = logs.String()

	t.Cleanup(func() {
		if os.Getenv("CITYLINK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
		}
	})

	return result
}
