package options

import (
	"fmt"
	"sync"

	"github.com/quillfmt/quill/pkg/diag"
	"github.com/quillfmt/quill/pkg/strategy"
)

// Resolver turns one raw option payload into per-strategy canonical options.
// It validates once and memoizes one FormatOptions per strategy, so a single
// Resolver can serve many files cheaply. Safe for concurrent use.
type Resolver struct {
	raw  Raw
	base FormatOptions

	mu    sync.Mutex
	cache map[strategy.Strategy]FormatOptions
}

// FromRaw creates a resolver over the given payload. A nil payload resolves
// to the defaults for every strategy.
func FromRaw(raw Raw) *Resolver {
	return &Resolver{
		raw:   raw,
		base:  Normalize(raw),
		cache: make(map[strategy.Strategy]FormatOptions),
	}
}

// Raw returns the original payload, as forwarded to host delegate
// operations.
func (r *Resolver) Raw() Raw {
	return r.raw
}

// BuildAndValidate runs strict semantic validation over the raw payload and
// returns the first failure encountered. Unlike Normalize, fields whose
// value cannot carry the declared type and enum strings outside their domain
// are errors here, not defaults. Fields not in the recognized table are
// still ignored.
func (r *Resolver) BuildAndValidate() *diag.Diagnostic {
	if r.raw == nil {
		return nil
	}

	for _, field := range []string{fieldUseTabs, fieldSingleQuote, fieldJSXSingleQuote, fieldSemi} {
		v, present := r.raw[field]
		if !present {
			continue
		}
		if _, ok := boolValue(v); !ok {
			return validationError(field, "expected a boolean")
		}
	}

	if v, present := r.raw[fieldTabWidth]; present {
		w, ok := intValue(v)
		if !ok {
			return validationError(fieldTabWidth, "expected an integer")
		}
		if w < MinIndentWidth || w > MaxIndentWidth {
			return validationError(fieldTabWidth,
				fmt.Sprintf("value %d is outside the supported range %d-%d", w, MinIndentWidth, MaxIndentWidth))
		}
	}

	if v, present := r.raw[fieldPrintWidth]; present {
		w, ok := intValue(v)
		if !ok {
			return validationError(fieldPrintWidth, "expected an integer")
		}
		if w < MinLineWidth || w > MaxLineWidth {
			return validationError(fieldPrintWidth,
				fmt.Sprintf("value %d is outside the supported range %d-%d", w, MinLineWidth, MaxLineWidth))
		}
	}

	if v, present := r.raw[fieldEndOfLine]; present {
		s, ok := stringValue(v)
		if !ok {
			return validationError(fieldEndOfLine, "expected a string")
		}
		switch LineEnding(s) {
		case LineEndingLF, LineEndingCRLF, LineEndingCR:
		default:
			return validationError(fieldEndOfLine,
				fmt.Sprintf("unrecognized value %q, expected \"lf\", \"crlf\" or \"cr\"", s))
		}
	}

	return nil
}

func validationError(field, detail string) *diag.Diagnostic {
	d := diag.Error(fmt.Sprintf("invalid value for `%s`", field)).WithNote(detail)
	return &d
}

// Resolve returns the canonical options specialized for the given strategy.
// For strategies without JSX syntax the JSX quote style collapses to the
// normal quote style. Results are memoized per strategy.
func (r *Resolver) Resolve(s strategy.Strategy) FormatOptions {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opts, ok := r.cache[s]; ok {
		return opts
	}

	opts := r.base
	if !s.HasJSX() {
		opts.JSXQuote = opts.Quote
	}
	r.cache[s] = opts
	return opts
}
