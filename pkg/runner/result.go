package runner

import (
	"github.com/quillfmt/quill/pkg/diag"
	"github.com/quillfmt/quill/pkg/formatter"
)

// FileOutcome is the result of formatting one discovered file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result holds the formatter output. Nil if the file could not be read.
	Result *formatter.Result

	// Written is true when the file was rewritten on disk.
	Written bool

	// Error is set if the file could not be read or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully formatted.
	FilesProcessed int

	// FilesChanged is the number of files whose formatted text differs
	// from the input.
	FilesChanged int

	// FilesWritten is the number of files rewritten on disk.
	FilesWritten int

	// FilesErrored is the number of files that encountered I/O errors.
	FilesErrored int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int
}

// Result is the overall runner result. Files are ordered deterministically
// by discovery order regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any error-severity diagnostics or I/O errors
// occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.DiagnosticsBySeverity[string(diag.SeverityError)] > 0
}

// HasChanges reports whether any file would change (or changed).
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}

	r.Stats.DiagnosticsTotal += len(outcome.Result.Diagnostics)
	for _, d := range outcome.Result.Diagnostics {
		severity := string(d.Severity)
		if severity == "" {
			severity = string(diag.SeverityError)
		}
		r.Stats.DiagnosticsBySeverity[severity]++
	}
}
