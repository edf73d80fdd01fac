package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillfmt/quill/internal/configloader"
	"github.com/quillfmt/quill/internal/logging"
	"github.com/quillfmt/quill/internal/ui/pretty"
	"github.com/quillfmt/quill/pkg/diag"
	"github.com/quillfmt/quill/pkg/formatter"
	"github.com/quillfmt/quill/pkg/options"
	"github.com/quillfmt/quill/pkg/runner"
)

// ErrNotFormatted signals via the exit code that files need formatting or
// failed to format. It carries no message worth printing.
var ErrNotFormatted = errors.New("formatting issues found")

type fmtFlags struct {
	check         bool
	list          bool
	ignore        []string
	jobs          int
	stdinFilepath string
}

func addFmtFlags(cmd *cobra.Command, flags *fmtFlags) {
	cmd.Flags().BoolVar(&flags.check, "check", false,
		"report files that are not formatted without rewriting them")
	cmd.Flags().BoolVarP(&flags.list, "list-different", "l", false,
		"print the names of files that are not formatted")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.stdinFilepath, "stdin-filepath", "",
		"format standard input as if it were the named file")
}

func runFormat(cmd *cobra.Command, args []string, opts Options, flags *fmtFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	if loadResult.Path != "" {
		logger.Debug("configuration loaded", logging.FieldConfig, loadResult.Path)
	}

	resolver := options.FromRaw(loadResult.Raw)
	if d := resolver.BuildAndValidate(); d != nil {
		return errors.New(d.String())
	}

	fmtr := formatter.New(resolver, opts.Delegate)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
	renderer := pretty.NewRenderer(styles, pretty.Width(cmd.OutOrStdout()))

	if flags.stdinFilepath != "" {
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		return runStdin(ctx, cmd, fmtr, renderer, flags.stdinFilepath, in)
	}

	mode := runner.ModeWrite
	switch {
	case flags.check:
		mode = runner.ModeCheck
	case flags.list:
		mode = runner.ModeList
	}

	excludes := append(configloader.IgnoreGlobs(loadResult.Raw), flags.ignore...)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: excludes,
		Mode:         mode,
		Jobs:         flags.jobs,
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(fmtr).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	report(cmd, renderer, result, mode, flags.list)

	if exitCodeFromResult(result, mode) != ExitSuccess {
		return ErrNotFormatted
	}
	return nil
}

// runStdin formats a single source read from in and writes the result to
// stdout. On failure the original text is echoed so pipelines never lose
// the input, with diagnostics going to stderr.
func runStdin(ctx context.Context, cmd *cobra.Command, fmtr *formatter.Formatter,
	renderer *pretty.Renderer, path string, in io.Reader) error {
	source, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	result := fmtr.Format(ctx, path, string(source))
	fmt.Fprint(cmd.OutOrStdout(), result.Code)

	failed := false
	for _, d := range result.Diagnostics {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.FormatDiagnostic(d, path))
		if d.Severity == diag.SeverityError {
			failed = true
		}
	}
	if failed {
		return ErrNotFormatted
	}
	return nil
}

// report prints per-file diagnostics and the run summary.
func report(cmd *cobra.Command, renderer *pretty.Renderer, result *runner.Result,
	mode runner.Mode, listOnly bool) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	for _, outcome := range result.Files {
		if listOnly {
			if outcome.Result != nil && outcome.Result.Changed {
				fmt.Fprintln(out, outcome.Path)
			}
			continue
		}
		if rendered := renderer.FormatOutcome(outcome); rendered != "" {
			fmt.Fprintln(errOut, rendered)
		}
	}

	if !listOnly {
		fmt.Fprintln(out, renderer.FormatSummary(result, mode))
	}
}
