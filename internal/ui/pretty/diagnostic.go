package pretty

import (
	"fmt"
	"strings"

	"github.com/quillfmt/quill/pkg/diag"
	"github.com/quillfmt/quill/pkg/runner"
)

// Renderer formats diagnostics and run summaries for terminal display.
type Renderer struct {
	styles *Styles
	width  int
}

// NewRenderer creates a renderer with the given styles, sized to the given
// terminal width.
func NewRenderer(styles *Styles, width int) *Renderer {
	if width <= 0 {
		width = fallbackWidth
	}
	return &Renderer{styles: styles, width: width}
}

// FormatDiagnostic renders a single diagnostic as a one-line (plus optional
// note) human-readable string. The path argument supplies a location when the
// diagnostic carries no span of its own.
func (r *Renderer) FormatDiagnostic(d diag.Diagnostic, path string) string {
	var b strings.Builder

	location := path
	if d.Span != nil && d.Span.File != "" {
		location = d.Span.File
	}
	if location != "" {
		b.WriteString(r.styles.FilePath.Render(location))
		b.WriteString(": ")
	}

	switch d.Severity {
	case diag.SeverityError:
		b.WriteString(r.styles.Error.Render("error"))
	case diag.SeverityWarning:
		b.WriteString(r.styles.Warning.Render("warning"))
	}
	b.WriteString(": ")
	b.WriteString(r.styles.Message.Render(d.Message))

	if d.Note != "" {
		b.WriteString("\n  ")
		b.WriteString(r.styles.Note.Render(d.Note))
	}

	return b.String()
}

// FormatOutcome renders all diagnostics attached to a single file outcome.
// Returns the empty string when the outcome carries nothing to show.
func (r *Renderer) FormatOutcome(o runner.FileOutcome) string {
	var lines []string
	if o.Error != nil {
		lines = append(lines, fmt.Sprintf("%s: %s: %v",
			r.styles.FilePath.Render(o.Path),
			r.styles.Error.Render("error"),
			o.Error))
	}
	if o.Result != nil {
		for _, d := range o.Result.Diagnostics {
			lines = append(lines, r.FormatDiagnostic(d, o.Path))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatSummary renders the end-of-run summary line for a runner result.
func (r *Renderer) FormatSummary(res *runner.Result, mode runner.Mode) string {
	var b strings.Builder

	b.WriteString(r.styles.Dim.Render(strings.Repeat("-", min(r.width, fallbackWidth))))
	b.WriteString("\n")
	b.WriteString(r.styles.SummaryTitle.Render("Summary:"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Files processed: %d\n", res.Stats.FilesProcessed))
	switch mode {
	case runner.ModeWrite:
		b.WriteString(fmt.Sprintf("  Files written:   %d\n", res.Stats.FilesWritten))
	default:
		b.WriteString(fmt.Sprintf("  Files changed:   %d\n", res.Stats.FilesChanged))
	}
	if res.Stats.FilesErrored > 0 {
		b.WriteString(fmt.Sprintf("  Files errored:   %d\n", res.Stats.FilesErrored))
	}
	if res.Stats.DiagnosticsTotal > 0 {
		b.WriteString(fmt.Sprintf("  Diagnostics:     %d\n", res.Stats.DiagnosticsTotal))
	}

	switch {
	case res.HasFailures():
		b.WriteString(r.styles.Failure.Render("✗ Formatting failed"))
	case mode == runner.ModeCheck && res.HasChanges():
		b.WriteString(r.styles.Failure.Render("✗ Some files are not formatted"))
	default:
		b.WriteString(r.styles.Success.Render("✓ All files formatted"))
	}

	return b.String()
}
