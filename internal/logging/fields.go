// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldMode       = "mode"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig  = "config"
	FieldCheck   = "check"
	FieldJobs    = "jobs"
	FieldPlugins = "plugins"
	FieldParser  = "parser"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesChanged     = "files_changed"
	FieldFilesWritten     = "files_written"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
