// Package runner provides multi-file formatting orchestration.
package runner

// Mode selects what the runner does with formatted output.
type Mode int

const (
	// ModeWrite rewrites changed files in place.
	ModeWrite Mode = iota

	// ModeCheck reports files that would change without writing.
	ModeCheck

	// ModeList reports the names of files that would change, without
	// writing.
	ModeList
)

// Options controls multi-file formatting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered formattable. Defaults via DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// merged from config ignore rules and the CLI.
	ExcludeGlobs []string

	// Mode selects write, check, or list behavior.
	Mode Mode

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// DefaultExtensions returns the natively-supported source extensions.
func DefaultExtensions() []string {
	return []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".mts", ".cts", ".tsx"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
