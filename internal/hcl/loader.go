package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/citylink/internal/config"
	"github.com/specialistvlad/citylink/internal/ctxlog"
	"github.com/specialistvlad/citylink/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// hclSettingsFile is the top-level structure of a settings file for decoding.
type hclSettingsFile struct {
	Input  string          `hcl:"input,optional"`
	Log    *hclLogBlock    `hcl:"log,block"`
	Output *hclOutputBlock `hcl:"output,block"`
}

type hclLogBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

type hclOutputBlock struct {
	EchoConnections *bool `hcl:"echo_connections,optional"`
}

// Loader implements config.Loader for HCL settings files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

var _ config.Loader = (*Loader)(nil)

// Load parses and decodes the settings at path. If path is a directory, every
// .hcl file below it is loaded in lexical order and later files override
// earlier ones field by field.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find settings files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl settings files found in %s", path)
	}

	var merged config.Settings
	for _, file := range files {
		settings, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(*settings)
	}

	logger.Debug("Settings translated into unified model.",
		"path", path,
		"files", len(files),
		"input", merged.InputPath,
		"log_level", merged.LogLevel,
		"log_format", merged.LogFormat,
	)
	return &merged, nil
}

// loadFile parses a single HCL settings file.
func (l *Loader) loadFile(path string) (*config.Settings, error) {
	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclSettingsFile
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(path), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	return translateSettings(&parsed), nil
}

// evalContext exposes the variables a settings file may reference.
func evalContext(path string) *hcl.EvalContext {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(dir),
		},
	}
}

// translateSettings converts the HCL-specific schema into the agnostic model.
func translateSettings(f *hclSettingsFile) *config.Settings {
	s := &config.Settings{InputPath: f.Input}
	if f.Log != nil {
		s.LogLevel = f.Log.Level
		s.LogFormat = f.Log.Format
	}
	if f.Output != nil {
		s.EchoConnections = f.Output.EchoConnections
	}
	return s
}
