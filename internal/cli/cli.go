package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/forkliftgo/internal/app"
	"github.com/specialistvlad/forkliftgo/internal/config"
	"github.com/specialistvlad/forkliftgo/internal/forklift"
	"github.com/specialistvlad/forkliftgo/internal/grid"
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

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("forkliftgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
forkliftgo - Counts the paper rolls a forklift can reach on a warehouse floor.

Usage:
  forkliftgo [options] [LAYOUT_PATH]

Arguments:
  LAYOUT_PATH
    Path to a plain text layout, one row per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	layoutFlag := flagSet.String("layout", "", "Path to a plain text layout file.")
	lFlag := flagSet.String("l", "", "Path to a plain text layout file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a .hcl floor file or a directory of .hcl files.")
	cFlag := flagSet.String("c", "", "Path to a .hcl floor file or directory (shorthand).")
	markerFlag := flagSet.String("marker", string(grid.DefaultRollMarker), "Character marking a paper roll in layouts.")
	thresholdFlag := flagSet.Int("threshold", forklift.DefaultThreshold, "Largest number of occupied neighbors a reachable roll may have (0-8).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	layoutPath := firstNonEmpty(*layoutFlag, *lFlag)
	if layoutPath == "" && flagSet.NArg() > 0 {
		layoutPath = flagSet.Arg(0)
	}
	configPath := firstNonEmpty(*configFlag, *cFlag)
	slog.Debug("Input paths determined.", "layout", layoutPath, "config", configPath)

	if layoutPath == "" && configPath == "" {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if layoutPath != "" && configPath != "" {
		return nil, false, usageError("a layout and -config cannot be used together")
	}
	if flagSet.NArg() > 1 || (flagSet.NArg() > 0 && layoutPath != flagSet.Arg(0)) {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	marker, err := config.ParseMarker(*markerFlag)
	if err != nil {
		return nil, false, usageError("invalid marker: %v", err)
	}

	if *thresholdFlag < 0 || *thresholdFlag > forklift.MaxThreshold {
		return nil, false, usageError("invalid threshold: must be between 0 and %d", forklift.MaxThreshold)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		LayoutPath: layoutPath,
		ConfigPath: configPath,
		Marker:     marker,
		Threshold:  *thresholdFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
