package engine

import (
	"io"

	"github.com/spf13/pflag"
)

// Mode labels returned by Route. Host-side labels (init, migrate) tell the
// embedding host to perform the work itself; the rest continue natively.
const (
	LabelInit    = "init"
	LabelMigrate = "migrate:prettier"
	LabelLSP     = "lsp"
	LabelStdin   = "stdin"
	LabelCLI     = "cli"
	LabelHelp    = "help"
	LabelVersion = "version"
	LabelError   = "error"
)

// Decision is the outcome of routing a command line. When Code is non-nil
// the process outcome is already decided and no further work runs; when nil
// the caller continues under the given label.
type Decision struct {
	Label string
	Code  *int
}

// Route inspects a command line and decides how execution proceeds.
// Subcommand names are recognized in leading position only. Command-line
// parse failures map to completion code 1 regardless of what the parser
// itself would exit with; help and version requests complete with code 0.
func Route(args []string) Decision {
	if len(args) > 0 {
		switch args[0] {
		case "init":
			return Decision{Label: LabelInit}
		case "migrate":
			return Decision{Label: LabelMigrate}
		case "lsp":
			return Decision{Label: LabelLSP}
		case "help":
			return Decision{Label: LabelHelp, Code: codePtr(0)}
		case "version":
			return Decision{Label: LabelVersion, Code: codePtr(0)}
		}
	}

	fs := routingFlagSet()
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return Decision{Label: LabelHelp, Code: codePtr(0)}
		}
		return Decision{Label: LabelError, Code: codePtr(1)}
	}

	if help, _ := fs.GetBool("help"); help {
		return Decision{Label: LabelHelp, Code: codePtr(0)}
	}
	if version, _ := fs.GetBool("version"); version {
		return Decision{Label: LabelVersion, Code: codePtr(0)}
	}

	if stdinPath, _ := fs.GetString("stdin-filepath"); stdinPath != "" {
		return Decision{Label: LabelStdin}
	}
	for _, arg := range fs.Args() {
		if arg == "-" {
			return Decision{Label: LabelStdin}
		}
	}

	return Decision{Label: LabelCLI}
}

// routingFlagSet mirrors the flags the CLI accepts. Routing only needs to
// detect parse failures and a handful of mode-selecting flags; values are
// re-parsed by the real command later.
func routingFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("quill", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Bool("debug", false, "")
	fs.String("config", "", "")
	fs.String("color", "auto", "")
	fs.Bool("check", false, "")
	fs.BoolP("list-different", "l", false, "")
	fs.StringSlice("ignore", nil, "")
	fs.Int("jobs", 0, "")
	fs.String("stdin-filepath", "", "")
	fs.BoolP("help", "h", false, "")
	fs.BoolP("version", "v", false, "")

	return fs
}

func codePtr(code int) *int {
	return &code
}
