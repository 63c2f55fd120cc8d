// Command gridpathd serves grid path search and matrix shortest distances
// over HTTP. It is configured through GRIDPATH_* environment variables,
// optionally seeded from a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the configuration and serves until ctx is done.
func run(ctx context.Context, logW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("gridpathd", flag.ContinueOnError)
	flagSet.SetOutput(logW)
	envFile := flagSet.String("env", "", "Load variables from this .env file instead of ./.env.")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Info("Configuration loaded.",
		"addr", cfg.Addr,
		"gin_mode", cfg.GinMode,
		"search_timeout", cfg.SearchTimeout,
		"max_cells", cfg.MaxCells,
	)

	return server.New(cfg, logger).Run(ctx)
}
