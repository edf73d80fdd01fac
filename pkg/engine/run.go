// Package engine is the embedding surface for hosts driving quill: it routes
// command lines, primes the external delegate, and runs formatting either
// over the CLI pipeline or on a single in-memory source.
package engine

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/quillfmt/quill/internal/cli"
	"github.com/quillfmt/quill/internal/logging"
	"github.com/quillfmt/quill/pkg/delegate"
)

// ServeFunc runs an interactive language-server session over the given
// streams. It blocks until the session ends.
type ServeFunc func(ctx context.Context, in io.Reader, out io.Writer) error

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Session ties a host's callback handles to an engine run. All fields are
// optional; a zero Session runs without any host delegation.
type Session struct {
	// Host supplies the four delegation callbacks. Nil disables embedded
	// formatting, class sorting, and foreign-file delegation.
	Host *delegate.Host

	// Serve handles interactive server mode when the command line selects
	// it.
	Serve ServeFunc

	// Info is the build information reported by the version command.
	Info BuildInfo
}

// RunCLI routes and, for native modes, executes a full command-line
// invocation. The returned label is the routing mode; the code is non-nil
// once the process outcome is decided. Host-side labels (init, migrate)
// return a nil code without doing any work: the embedding host performs
// those itself.
func RunCLI(ctx context.Context, args []string, session Session) (string, *int) {
	decision := Route(args)

	switch decision.Label {
	case LabelInit, LabelMigrate:
		return decision.Label, nil
	case LabelHelp, LabelVersion:
		// Let the command print its help or version text before
		// completing with the routed code.
		executeCommand(ctx, args, session, nil)
		return decision.Label, decision.Code
	case LabelError:
		return decision.Label, decision.Code
	}

	var del *delegate.Delegate
	if session.Host != nil {
		del = delegate.New(*session.Host, nil)

		plugins, initErr := del.Init(ctx, runtime.NumCPU())
		if initErr != nil {
			logging.Default().Error("delegate initialization failed",
				logging.FieldError, initErr)
			return decision.Label, codePtr(1)
		}
		logging.Default().Debug("delegate initialized", logging.FieldPlugins, plugins)
	}

	code := executeCommand(ctx, args, session, del)
	return decision.Label, &code
}

// executeCommand runs the Cobra command tree and maps its error to an exit
// code.
func executeCommand(ctx context.Context, args []string, session Session, del *delegate.Delegate) int {
	cmd := cli.NewRootCommand(cli.Options{
		Info: cli.BuildInfo{
			Version: session.Info.Version,
			Commit:  session.Info.Commit,
			Date:    session.Info.Date,
		},
		Delegate: del,
		Serve:    cli.ServeFunc(session.Serve),
	})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrNotFormatted):
		return 1
	default:
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
}
