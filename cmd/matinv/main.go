// Package main inverts a square matrix read from a text file.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gaussjordan/internal/platform/config"
	"github.com/katalvlaran/gaussjordan/internal/tools/matinv"
)

func main() {
	cfg, err := matinv.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		config.Fail("matinv", config.ExitUsage, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := matinv.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Fail("matinv", config.ExitFailure, err)
	}
}
