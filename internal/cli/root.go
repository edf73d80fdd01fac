// Package cli provides the Cobra command structure for quill.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillfmt/quill/internal/logging"
	"github.com/quillfmt/quill/pkg/delegate"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// ServeFunc runs an interactive language-server session over the given
// streams. It blocks until the session ends.
type ServeFunc func(ctx context.Context, in io.Reader, out io.Writer) error

// Options configures the root command.
type Options struct {
	Info BuildInfo

	// Delegate is the optional host facade used for embedded-language
	// formatting, foreign-file delegation, and class sorting. Nil means
	// those paths are skipped and only native formatting runs.
	Delegate *delegate.Delegate

	// Serve handles the server subcommand. Nil means the subcommand
	// reports that no server backend is available.
	Serve ServeFunc

	// Stdin overrides the input stream for --stdin-filepath runs.
	// Defaults to os.Stdin.
	Stdin io.Reader
}

// NewRootCommand creates the root quill command with all subcommands.
func NewRootCommand(opts Options) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	flags := &fmtFlags{}

	rootCmd := &cobra.Command{
		Use:     "quill [paths...]",
		Version: opts.Info.Version,
		Short:   "An opinionated formatter for JavaScript and TypeScript",
		Long: `quill is an opinionated formatter for JavaScript and TypeScript sources.

It formats .js, .jsx, .ts and .tsx files (plus their module variants),
delegating embedded languages such as CSS, GraphQL and SQL inside template
literals to host-provided formatters when one is connected. Configuration is
read from the nearest .quillrc file and follows Prettier's option names.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addFmtFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newVersionCommand(opts.Info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
