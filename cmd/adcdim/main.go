// Command adcdim analyzes an ADC sample log under progressive dimming.
//
// Usage:
//
//	adcdim [flags]
//	adcdim window [window-name ...] [--size N] [--periodic]
//	adcdim generate [--out file] [--samples N] [--cycles c] ...
//	adcdim config
//
// Without a subcommand it loads the configured sample log (default
// TestData/ADC0Data.txt), sweeps the dimming count in steps of 4 and writes
// one figure per step to TestData/ADC0Data-<count>.png. Any failure is
// printed once and the process exits with status 1.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}
