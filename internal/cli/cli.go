package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/citylink/internal/app"
	"github.com/specialistvlad/citylink/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Only flags that were given explicitly end up in Config.Flags, so they can
// be layered over the settings file.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("citylink", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
citylink - Answers "is there a path between these two cities?" for a list of requests.

Usage:
  citylink [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to the city file: connection lines, a blank line, then request lines.
    Defaults to %s.

Options:
`, config.DefaultInputPath)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the city file.")
	iFlag := flagSet.String("i", "", "Path to the city file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	quietFlag := flagSet.Bool("quiet-connections", false, "Do not echo connection lines to stdout.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var flags config.Settings
	switch {
	case *inputFlag != "":
		flags.InputPath = *inputFlag
	case *iFlag != "":
		flags.InputPath = *iFlag
	case flagSet.NArg() > 0:
		flags.InputPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: expected at most one INPUT_PATH"}
	}
	slog.Debug("Input path determined.", "path", flags.InputPath)

	if set["log-format"] {
		flags.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if set["log-level"] {
		flags.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if set["quiet-connections"] {
		echo := !*quietFlag
		flags.EchoConnections = &echo
	}

	cfg, err := app.NewConfig(app.Config{
		SettingsPath: *configFlag,
		Flags:        flags,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "settings_path", cfg.SettingsPath)
	return cfg, false, nil
}
