package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"sentai/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command tree and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, formatError(err))
		}
		return 1
	}
	return 0
}

// formatError renders err for the terminal. Configuration and usage problems
// are the user's to fix; everything else is reported as unexpected.
func formatError(err error) string {
	if errors.Is(err, services.ErrConfiguration) || errors.Is(err, services.ErrInvalidInput) {
		return "Error: " + err.Error()
	}
	return "An unexpected error occurred: " + err.Error()
}

func usageError(err error) error {
	if err == nil {
		return nil
	}
	return services.Mark(services.ErrInvalidInput, err.Error())
}
