package options

import (
	"encoding/json"

	"fortio.org/safecast"
)

// Recognized raw field names. Any field not listed here is ignored, never
// rejected.
const (
	fieldUseTabs        = "useTabs"
	fieldTabWidth       = "tabWidth"
	fieldPrintWidth     = "printWidth"
	fieldSingleQuote    = "singleQuote"
	fieldJSXSingleQuote = "jsxSingleQuote"
	fieldSemi           = "semi"
	fieldEndOfLine      = "endOfLine"
	fieldTailwind       = "experimentalTailwindcss"
	fieldTailwindPlugin = "_tailwindPluginEnabled"
	fieldSortImports    = "experimentalSortImports"
)

// Normalize converts a raw option tree into canonical format options. It is
// total: any raw field of the wrong shape is treated as absent and the
// default applies, so the result is always fully populated.
func Normalize(raw Raw) FormatOptions {
	opts := Default()
	if raw == nil {
		return opts
	}

	if useTabs, ok := boolValue(raw[fieldUseTabs]); ok {
		if useTabs {
			opts.IndentKind = IndentTab
		} else {
			opts.IndentKind = IndentSpace
		}
	}

	if width, ok := intValue(raw[fieldTabWidth]); ok {
		if w, err := safecast.Conv[uint8](width); err == nil && w <= MaxIndentWidth {
			opts.IndentWidth = w
		}
	}

	if width, ok := intValue(raw[fieldPrintWidth]); ok {
		if w, err := safecast.Conv[uint16](width); err == nil && w >= MinLineWidth && w <= MaxLineWidth {
			opts.LineWidth = w
		}
	}

	if single, ok := boolValue(raw[fieldSingleQuote]); ok {
		opts.Quote = quoteStyle(single)
	}

	if single, ok := boolValue(raw[fieldJSXSingleQuote]); ok {
		opts.JSXQuote = quoteStyle(single)
	}

	if semi, ok := boolValue(raw[fieldSemi]); ok {
		if semi {
			opts.Semicolons = SemicolonsAlways
		} else {
			opts.Semicolons = SemicolonsAsNeeded
		}
	}

	if eol, ok := stringValue(raw[fieldEndOfLine]); ok {
		switch LineEnding(eol) {
		case LineEndingLF, LineEndingCRLF, LineEndingCR:
			opts.LineEnding = LineEnding(eol)
		default:
			opts.LineEnding = LineEndingLF
		}
	}

	// Tailwind sorting is enabled either by the option itself or by the
	// internal plugin-enabled flag the host injects.
	pluginEnabled, _ := boolValue(raw[fieldTailwindPlugin])
	if _, present := raw[fieldTailwind]; present || pluginEnabled {
		opts.Tailwind = &TailwindOptions{}
	}

	if _, present := raw[fieldSortImports]; present {
		opts.SortImports = &SortImportsOptions{}
	}

	return opts
}

func quoteStyle(single bool) QuoteStyle {
	if single {
		return QuoteSingle
	}
	return QuoteDouble
}

func boolValue(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// intValue accepts the integer encodings produced by the JSON and YAML
// decoders. Non-integral floats do not count as integers.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		i, err := safecast.Conv[int64](n)
		return i, err == nil
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
