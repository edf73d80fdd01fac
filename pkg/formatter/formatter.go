// Package formatter drives per-file formatting, delegating embedded regions,
// utility-class sorting, and foreign file kinds to the plugin host. Delegate
// failures are non-fatal: the original text always survives them.
package formatter

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/quillfmt/quill/pkg/delegate"
	"github.com/quillfmt/quill/pkg/diag"
	"github.com/quillfmt/quill/pkg/options"
	"github.com/quillfmt/quill/pkg/strategy"
)

// Result is the outcome of formatting one file. Code always holds usable
// text: on any failure it is the original input, with the failures recorded
// as diagnostics.
type Result struct {
	// Code is the formatted text, or the original text on failure.
	Code string

	// Changed reports whether Code differs from the input.
	Changed bool

	// Diagnostics collects every failure encountered, in discovery order.
	Diagnostics diag.List
}

// Formatter formats source files using canonical options resolved per file
// strategy. One Formatter serves a whole run; it is safe for concurrent use.
type Formatter struct {
	resolver *options.Resolver
	delegate *delegate.Delegate
}

// New creates a formatter. delegate may be nil, in which case embedded
// regions and class attributes are left untouched.
func New(resolver *options.Resolver, del *delegate.Delegate) *Formatter {
	return &Formatter{resolver: resolver, delegate: del}
}

// Format formats one natively-supported source file. The file's strategy
// decides the option variant; an unclassifiable path yields an
// unsupported-input diagnostic and the original text.
func (f *Formatter) Format(ctx context.Context, path, source string) Result {
	strat, d := strategy.FromPath(path)
	if d != nil {
		return Result{Code: source, Diagnostics: diag.List{*d}}
	}

	opts := f.resolver.Resolve(strat)

	var diags diag.List
	code := source

	if f.delegate != nil {
		code = f.formatEmbeddedRegions(ctx, code, &diags)
		if opts.TailwindEnabled() {
			code = f.sortClassAttributes(ctx, path, code, &diags)
		}
	}

	code = applyLineEnding(code, opts.LineEnding)

	return Result{
		Code:        code,
		Changed:     code != source,
		Diagnostics: diags,
	}
}

// FormatForeign delegates a whole file of a kind no native strategy covers
// to a host plugin parser. On delegate failure the original text is the
// result.
func (f *Formatter) FormatForeign(ctx context.Context, path, source string) Result {
	parser, ok := ForeignParser(path)
	if !ok {
		d := diag.Error("unsupported file type: " + path)
		return Result{Code: source, Diagnostics: diag.List{d}}
	}
	if f.delegate == nil {
		d := diag.Error("no external formatter available for " + path)
		return Result{Code: source, Diagnostics: diag.List{d}}
	}

	code, err := f.delegate.FormatFile(ctx, f.resolver.Raw(), parser, path, source)
	if err != nil {
		return Result{Code: source, Diagnostics: diag.List{err.Diagnostic()}}
	}
	return Result{Code: code, Changed: code != source}
}

// ForeignParser maps a non-native file extension to the host plugin parser
// that formats it.
func ForeignParser(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".scss", ".less":
		return "css", true
	case ".json", ".jsonc":
		return "json", true
	case ".md", ".markdown":
		return "markdown", true
	case ".yaml", ".yml":
		return "yaml", true
	case ".html", ".htm":
		return "html", true
	case ".graphql", ".gql":
		return "graphql", true
	default:
		return "", false
	}
}

// applyLineEnding rewrites the text with the canonical line ending.
func applyLineEnding(code string, ending options.LineEnding) string {
	normalized := strings.ReplaceAll(code, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	switch ending {
	case options.LineEndingCRLF:
		return strings.ReplaceAll(normalized, "\n", "\r\n")
	case options.LineEndingCR:
		return strings.ReplaceAll(normalized, "\n", "\r")
	default:
		return normalized
	}
}
