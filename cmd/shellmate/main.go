// Package main is the entry point for the shellmate CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/shellmate/internal/app"
	"github.com/runoshun/shellmate/internal/cli"
	"github.com/runoshun/shellmate/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("failed to get current directory: %w", err))
		return domain.ExitFailure
	}

	container, err := app.New(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("failed to initialize: %w", err))
		return domain.ExitFailure
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return exitCodeFor(rootCmd.Execute())
}

// exitCodeFor maps a command error to the process exit status.
// ExitError means the diagnostics were already written and only the
// status needs mirroring; everything else is printed once here.
func exitCodeFor(err error) int {
	if err == nil {
		return domain.ExitSuccess
	}
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, err)
	return domain.ExitFailure
}
