package engine

import (
	"context"
	"runtime"

	"github.com/quillfmt/quill/pkg/delegate"
	"github.com/quillfmt/quill/pkg/diag"
	"github.com/quillfmt/quill/pkg/formatter"
	"github.com/quillfmt/quill/pkg/options"
)

// FormatSource formats one in-memory source under the given raw options.
// The returned text is always usable: on any failure it is the original
// source, with the failures reported as diagnostics. Option validation is
// strict here, unlike the lenient normalization used for project config
// files, because the host hands these options over programmatically.
func FormatSource(ctx context.Context, fileName, source string, raw options.Raw, host *delegate.Host) (string, diag.List) {
	resolver := options.FromRaw(raw)
	if d := resolver.BuildAndValidate(); d != nil {
		return source, diag.List{*d}
	}

	var del *delegate.Delegate
	var diags diag.List

	if host != nil {
		del = delegate.New(*host, nil)

		// A failed delegate never aborts formatting: native passes
		// still run, only delegation-dependent ones are skipped.
		if _, initErr := del.Init(ctx, runtime.NumCPU()); initErr != nil {
			d := initErr.Diagnostic()
			d.Severity = diag.SeverityWarning
			diags.Append(d)
			del = nil
		}
	}

	result := formatter.New(resolver, del).Format(ctx, fileName, source)
	diags = append(diags, result.Diagnostics...)

	return result.Code, diags
}
