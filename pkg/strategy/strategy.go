// Package strategy classifies target files into the parser/option variant
// that applies to them. Classification is purely extension based and
// side-effect free.
package strategy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quillfmt/quill/pkg/diag"
)

// Strategy is the classification of a target file.
type Strategy int

const (
	// Script is plain JavaScript (.js, .mjs, .cjs).
	Script Strategy = iota

	// JSX is JavaScript with JSX syntax (.jsx).
	JSX

	// TypeScript is plain TypeScript (.ts, .mts, .cts).
	TypeScript

	// TSX is TypeScript with JSX syntax (.tsx).
	TSX

	// Declaration is a TypeScript declaration file (.d.ts, .d.mts, .d.cts).
	Declaration
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Script:
		return "script"
	case JSX:
		return "jsx"
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	case Declaration:
		return "declaration"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// HasJSX reports whether the strategy parses JSX syntax, which is the only
// case where the JSX quote style differs from the normal quote style.
func (s Strategy) HasJSX() bool {
	return s == JSX || s == TSX
}

// ParserName returns the plugin parser name used when a file of this
// strategy is delegated whole to the host.
func (s Strategy) ParserName() string {
	switch s {
	case TypeScript, TSX, Declaration:
		return "typescript"
	default:
		return "babel"
	}
}

// FromPath classifies a file by its path. A path with no recognized
// extension yields an unsupported-input diagnostic naming the path.
func FromPath(path string) (Strategy, *diag.Diagnostic) {
	base := strings.ToLower(filepath.Base(path))

	if strings.HasSuffix(base, ".d.ts") || strings.HasSuffix(base, ".d.mts") || strings.HasSuffix(base, ".d.cts") {
		return Declaration, nil
	}

	switch filepath.Ext(base) {
	case ".js", ".mjs", ".cjs":
		return Script, nil
	case ".jsx":
		return JSX, nil
	case ".ts", ".mts", ".cts":
		return TypeScript, nil
	case ".tsx":
		return TSX, nil
	}

	d := diag.Error(fmt.Sprintf("unsupported file type: %s", path))
	return 0, &d
}

// All lists every supported strategy, in declaration order.
func All() []Strategy {
	return []Strategy{Script, JSX, TypeScript, TSX, Declaration}
}
