package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // a scenario could not be loaded or an item failed
	ExitUsage   = 2 // bad flags or arguments
)

// Options is the parsed command line.
type Options struct {
	Scenarios []string      // scenario files, in order
	LogLevel  string        // debug, info, warn or error
	LogFormat string        // text or json
	Timeout   time.Duration // whole-run deadline, 0 for none
}

// Parse processes command-line arguments. It returns the parsed Options,
// a boolean reporting that the program should exit cleanly (help was
// printed), or an *ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - run grid and graph path-finding scenarios.

Usage:
  gridpath [options] SCENARIO.hcl [SCENARIO.hcl ...]

Arguments:
  SCENARIO.hcl
    HCL file with grid and graph blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Abort the run after this long, e.g. 30s. 0 means no limit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No scenario provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: ExitUsage, Message: "missing scenario file"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *timeoutFlag < 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid timeout: must not be negative"}
	}

	opts := &Options{
		Scenarios: flagSet.Args(),
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Timeout:   *timeoutFlag,
	}
	slog.Debug("CLI parser finished successfully.", "options", opts)

	return opts, false, nil
}
