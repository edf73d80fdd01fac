package formatter

import (
	"context"
	"strings"

	"github.com/quillfmt/quill/pkg/diag"
	"github.com/quillfmt/quill/pkg/langdetect"
)

// region is one embedded template-literal body, addressed by the byte range
// between its backticks.
type region struct {
	start  int
	end    int
	parser string
}

// formatEmbeddedRegions delegates each embedded region to the host, in the
// order the regions are encountered, at most once each. A failed region
// keeps its original text and records a warning.
func (f *Formatter) formatEmbeddedRegions(ctx context.Context, source string, diags *diag.List) string {
	regions := scanEmbeddedRegions(source)
	if len(regions) == 0 {
		return source
	}

	var b strings.Builder
	b.Grow(len(source))
	last := 0

	for _, r := range regions {
		b.WriteString(source[last:r.start])

		body := source[r.start:r.end]
		formatted, err := f.delegate.FormatEmbedded(ctx, f.resolver.Raw(), r.parser, body)
		if err != nil {
			d := err.Diagnostic()
			d.Severity = diag.SeverityWarning
			diags.Append(d)
			b.WriteString(body)
		} else {
			b.WriteString(formatted)
		}

		last = r.end
	}
	b.WriteString(source[last:])

	return b.String()
}

// scanEmbeddedRegions finds delegable template-literal bodies. A region is
// delegable when its tag names a known parser, or it has no known tag but
// its content safely detects as one. Regions with interpolations are
// skipped: their final text is not known natively.
func scanEmbeddedRegions(source string) []region {
	var regions []region

	for i := 0; i < len(source); i++ {
		if source[i] != '`' {
			continue
		}

		end, interpolated := findTemplateEnd(source, i+1)
		if end < 0 {
			break
		}

		if !interpolated {
			body := source[i+1 : end]
			if parser, ok := regionParser(tagBefore(source, i), body); ok {
				regions = append(regions, region{start: i + 1, end: end, parser: parser})
			}
		}

		i = end
	}

	return regions
}

func regionParser(tag, body string) (string, bool) {
	if tag != "" {
		if parser, ok := langdetect.ParserForTag(tag); ok {
			return parser, true
		}
		return "", false
	}
	return langdetect.DetectParser([]byte(body))
}

// findTemplateEnd returns the index of the closing backtick starting the
// search at from, and whether the body contains a `${}` interpolation.
// Returns -1 when the template never closes.
func findTemplateEnd(source string, from int) (int, bool) {
	interpolated := false
	depth := 0

	for i := from; i < len(source); i++ {
		switch source[i] {
		case '\\':
			i++
		case '$':
			if i+1 < len(source) && source[i+1] == '{' {
				interpolated = true
				depth++
				i++
			}
		case '}':
			if depth > 0 {
				depth--
			}
		case '`':
			if depth == 0 {
				return i, interpolated
			}
		}
	}
	return -1, interpolated
}

// tagBefore extracts the template tag ending immediately before the opening
// backtick at index tick, if any. Dotted member tags are kept whole so
// styled.div resolves by its head segment.
func tagBefore(source string, tick int) string {
	end := tick
	i := tick - 1

	for i >= 0 {
		c := source[i]
		if isIdentChar(c) || c == '.' {
			i--
			continue
		}
		break
	}

	start := i + 1
	if start == end {
		return ""
	}

	tag := source[start:end]
	// A leading dot means we sliced a member expression mid-way; the tag is
	// still resolvable by its segments.
	return strings.Trim(tag, ".")
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
