// Package main is the entry point for the quill CLI.
package main

import (
	"errors"
	"os"

	"github.com/quillfmt/quill/internal/cli"
	"github.com/quillfmt/quill/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// The standalone binary runs without a plugin host: embedded regions
	// and foreign files are left untouched.
	rootCmd := cli.NewRootCommand(cli.Options{Info: info})

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrNotFormatted - it's just a signal for exit code.
		if !errors.Is(err, cli.ErrNotFormatted) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return 1
	}

	return 0
}
