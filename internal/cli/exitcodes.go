package cli

import "github.com/quillfmt/quill/pkg/runner"

// Exit codes for quill.
const (
	// ExitSuccess indicates successful execution with nothing to change.
	ExitSuccess = 0

	// ExitIssues indicates the run completed but files need formatting
	// or produced error diagnostics.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// exitCodeFromResult determines the exit code for a completed run.
// Check and list modes fail when any file would change; write mode fails
// only on errors.
func exitCodeFromResult(result *runner.Result, mode runner.Mode) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitIssues
	}

	if mode != runner.ModeWrite && result.HasChanges() {
		return ExitIssues
	}

	return ExitSuccess
}
