package formatter

import (
	"context"
	"strings"

	"github.com/quillfmt/quill/pkg/diag"
)

// class attribute markers recognized in JSX/TSX sources.
var classAttrs = []string{`className="`, `className='`, `class="`, `class='`}

// sortClassAttributes delegates the utility classes of each class attribute
// to the host sorter. On failure the original ordering is preserved
// unchanged.
func (f *Formatter) sortClassAttributes(ctx context.Context, path, source string, diags *diag.List) string {
	var b strings.Builder
	b.Grow(len(source))
	rest := source

	for {
		attr, at := findClassAttr(rest)
		if at < 0 {
			b.WriteString(rest)
			break
		}

		valueStart := at + len(attr)
		quote := attr[len(attr)-1]
		valueEnd := strings.IndexByte(rest[valueStart:], quote)
		if valueEnd < 0 {
			b.WriteString(rest)
			break
		}
		valueEnd += valueStart

		b.WriteString(rest[:valueStart])

		value := rest[valueStart:valueEnd]
		classes := strings.Fields(value)
		if len(classes) > 1 {
			sorted, err := f.delegate.SortClasses(ctx, path, f.resolver.Raw(), classes)
			if err != nil {
				d := err.Diagnostic()
				d.Severity = diag.SeverityWarning
				diags.Append(d)
				b.WriteString(value)
			} else if len(sorted) == len(classes) {
				b.WriteString(strings.Join(sorted, " "))
			} else {
				// A sorter that drops or invents classes is a host bug;
				// keep the original attribute.
				b.WriteString(value)
			}
		} else {
			b.WriteString(value)
		}

		rest = rest[valueEnd:]
	}

	return b.String()
}

// findClassAttr returns the earliest class attribute marker in s and its
// offset, or -1 when none remain.
func findClassAttr(s string) (string, int) {
	best := -1
	var bestAttr string
	for _, attr := range classAttrs {
		if i := strings.Index(s, attr); i >= 0 && (best < 0 || i < best) {
			best = i
			bestAttr = attr
		}
	}
	return bestAttr, best
}
