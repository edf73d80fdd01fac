// Package diag defines the diagnostic record used for all failure reporting
// across the host boundary. These types are pure data structures with no
// external dependencies; rendering lives in internal/ui/pretty.
package diag

import "strings"

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Span anchors a diagnostic to a byte range of a source file.
type Span struct {
	// File is the path of the file the diagnostic refers to.
	File string

	// Start is the 0-based byte offset where the span begins.
	Start int

	// End is the 0-based byte offset one past the end of the span.
	End int
}

// Diagnostic is a single structured error or warning. It is immutable once
// created; construct one with Error or Warning and the With* methods.
type Diagnostic struct {
	// Message is the human-readable description of the failure.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity Severity

	// Note is optional supplementary detail, typically the verbatim error
	// text reported by the host.
	Note string

	// Span optionally anchors the diagnostic to a source location.
	Span *Span
}

// Error creates an error-severity diagnostic.
func Error(message string) Diagnostic {
	return Diagnostic{Message: message, Severity: SeverityError}
}

// Warning creates a warning-severity diagnostic.
func Warning(message string) Diagnostic {
	return Diagnostic{Message: message, Severity: SeverityWarning}
}

// WithNote returns a copy of the diagnostic with the given note attached.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Note = note
	return d
}

// WithSpan returns a copy of the diagnostic anchored to the given span.
func (d Diagnostic) WithSpan(span Span) Diagnostic {
	d.Span = &span
	return d
}

// String renders the diagnostic as a single line suitable for logs.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(string(d.Severity))
	b.WriteString(": ")
	b.WriteString(d.Message)
	if d.Note != "" {
		b.WriteString(" (")
		b.WriteString(d.Note)
		b.WriteString(")")
	}
	return b.String()
}

// List is an ordered collection of diagnostics. Order of discovery is
// preserved and entries are never deduplicated.
type List []Diagnostic

// Append adds diagnostics to the list, preserving discovery order.
func (l *List) Append(diags ...Diagnostic) {
	*l = append(*l, diags...)
}

// HasErrors reports whether the list contains at least one error-severity
// diagnostic.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Messages returns the rendered message of every diagnostic in order.
func (l List) Messages() []string {
	out := make([]string, len(l))
	for i, d := range l {
		out[i] = d.String()
	}
	return out
}
