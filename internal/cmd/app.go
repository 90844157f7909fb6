// Package cmd implements the ngmat command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/ngmat/internal/config"
)

// App carries the process streams and build metadata shared by commands.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string

	cfg *config.Config
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	if a.Stdin != nil {
		root.SetIn(a.Stdin)
	}
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.Stderr, "error:", err)
		return err
	}
	return nil
}

// RootCommand exposes the root command for embedding and tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
