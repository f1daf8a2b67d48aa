// Command carbonwise compares vehicle lifecycle CO₂ emissions using the
// CarbonWise ranking service.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/carbonwise/carbonwise/internal/cli"
	"github.com/carbonwise/carbonwise/pkg/version"
)

func main() {
	if code := run(); code != 0 {
		os.Exit(code)
	}
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.String())
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return extractExitCode(err)
}

// extractExitCode maps err to the process exit code: 0 for nil, the carried
// code for a *cli.ExitError, 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
