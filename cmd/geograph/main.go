// Command geograph queries and lays out directed weighted graph documents.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/internal/cli"
	"github.com/matzehuels/geograph/pkg/errors"
)

// exitInterrupted is the shell status for a process stopped by SIGINT.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	switch {
	case err == nil:
	case stderrors.Is(err, context.Canceled):
		os.Exit(exitInterrupted)
	default:
		if code := errors.GetCode(err); code != "" {
			fmt.Fprintf(os.Stderr, "geograph: %s (%s)\n", errors.UserMessage(err), code)
		} else {
			fmt.Fprintf(os.Stderr, "geograph: %v\n", err)
		}
		os.Exit(errors.ExitCode(err))
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail")

	// The level must be set before the config is loaded.
	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return loadConfig(cmd, args)
	}
	return root.ExecuteContext(ctx)
}
