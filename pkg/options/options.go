// Package options converts the loosely-typed option payload supplied by the
// host into canonical, fully-defaulted format settings.
package options

// Raw is an untyped host-supplied option tree, as decoded from JSON or YAML.
type Raw map[string]any

// IndentKind selects the indentation character.
type IndentKind string

const (
	IndentSpace IndentKind = "space"
	IndentTab   IndentKind = "tab"
)

// QuoteStyle selects the preferred string quote character.
type QuoteStyle string

const (
	QuoteDouble QuoteStyle = "double"
	QuoteSingle QuoteStyle = "single"
)

// Semicolons selects the semicolon policy.
type Semicolons string

const (
	SemicolonsAlways   Semicolons = "always"
	SemicolonsAsNeeded Semicolons = "as-needed"
)

// LineEnding selects the line ending written to output.
type LineEnding string

const (
	LineEndingLF   LineEnding = "lf"
	LineEndingCRLF LineEnding = "crlf"
	LineEndingCR   LineEnding = "cr"
)

// TailwindOptions configures utility-class sorting. Present only when the
// Tailwind plugin is enabled.
type TailwindOptions struct{}

// SortImportsOptions configures import sorting. Present only when the
// import-sort experiment is enabled.
type SortImportsOptions struct{}

// Supported ranges for the bounded integer options. Values outside these
// ranges fall back to the default rather than erroring.
const (
	MinIndentWidth = 0
	MaxIndentWidth = 24
	MinLineWidth   = 1
	MaxLineWidth   = 320

	DefaultIndentWidth = 2
	DefaultLineWidth   = 80
)

// FormatOptions is the canonical, fully-populated settings record consumed
// by the formatting engine. Every field always holds a defined value; the
// two pointer fields are nil exactly when their feature is disabled.
// Immutable after construction; one instance may be reused across many files
// of the same strategy.
type FormatOptions struct {
	IndentKind  IndentKind
	IndentWidth uint8
	LineWidth   uint16
	Quote       QuoteStyle
	JSXQuote    QuoteStyle
	Semicolons  Semicolons
	LineEnding  LineEnding

	Tailwind    *TailwindOptions
	SortImports *SortImportsOptions
}

// Default returns the canonical defaults: two-space indents, 80-column
// lines, double quotes, semicolons always, LF endings, no sub-features.
func Default() FormatOptions {
	return FormatOptions{
		IndentKind:  IndentSpace,
		IndentWidth: DefaultIndentWidth,
		LineWidth:   DefaultLineWidth,
		Quote:       QuoteDouble,
		JSXQuote:    QuoteDouble,
		Semicolons:  SemicolonsAlways,
		LineEnding:  LineEndingLF,
	}
}

// TailwindEnabled reports whether utility-class sorting applies.
func (o FormatOptions) TailwindEnabled() bool {
	return o.Tailwind != nil
}
