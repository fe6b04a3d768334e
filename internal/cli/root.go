// Package cli implements the tricount command-line interface.
//
// Commands:
//   - count:    read an edge list and print its exact triangle count
//   - generate: write a builder fixture graph as an edge list
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed to commands through context.Context.
package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the string printed by --version.
func SetVersion(v string) { version = v }

// NewRootCommand builds the command tree. Logs go to errOut; command
// output goes to the command's stdout.
func NewRootCommand(errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "tricount",
		Short:         "tricount counts triangles in sparse undirected graphs",
		Long:          `tricount computes the exact number of triangles of a simple undirected graph stored in compressed-sparse-row form.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCountCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

// Execute runs the CLI with args taken from os.Args.
func Execute(ctx context.Context, errOut io.Writer) error {
	return NewRootCommand(errOut).ExecuteContext(ctx)
}
