package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func newServeCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run quill as a language server",
		Long: `Run quill as a long-lived language server speaking over standard
input and output. Editors connect to this process to format documents
on save without spawning a new quill per file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Serve == nil {
				return errors.New("no language-server backend is linked into this build")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return opts.Serve(ctx, os.Stdin, cmd.OutOrStdout())
		},
	}
}
