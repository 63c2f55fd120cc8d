// Command gridpath runs the path-finding scenarios described in HCL files
// and prints a report for each.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/scenario"
)

// main is the entrypoint for the gridpath command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run parses args, then loads and runs every scenario in order, writing
// reports to outW and logs to logW.
func run(outW, logW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(opts.LogLevel, opts.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	failed := 0
	for _, path := range opts.Scenarios {
		sc, err := scenario.Load(ctx, path)
		if err != nil {
			return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
		}
		report, err := sc.Run(ctx)
		if err != nil {
			return &cli.ExitError{Code: cli.ExitFailure, Message: fmt.Sprintf("%s: %v", path, err)}
		}

		fmt.Fprintf(outW, "== %s (run %s)\n", path, report.RunID)
		if err := report.WriteText(outW); err != nil {
			return err
		}
		if report.Failed() {
			failed++
		}
	}

	if failed > 0 {
		return &cli.ExitError{
			Code:    cli.ExitFailure,
			Message: fmt.Sprintf("%d of %d scenarios had failing items", failed, len(opts.Scenarios)),
		}
	}

	return nil
}
