package configloader

import (
	"encoding/json"
	"fmt"
)

const yamlTemplate = `# quill configuration.
# Option names follow Prettier; unknown options are ignored.

# Indentation.
useTabs: false
tabWidth: 2

# Maximum line width before wrapping.
printWidth: 80

# Quotes and semicolons.
singleQuote: false
jsxSingleQuote: false
semi: true

# Line endings: lf, crlf or cr.
endOfLine: lf

# Glob patterns to skip.
ignore:
  - "node_modules/**"
  - "dist/**"
`

// GenerateTemplate produces a starter configuration file in the given
// format ("yaml" or "json").
func GenerateTemplate(format string) ([]byte, error) {
	switch format {
	case "yaml":
		return []byte(yamlTemplate), nil
	case "json":
		defaults := map[string]any{
			"useTabs":        false,
			"tabWidth":       2,
			"printWidth":     80,
			"singleQuote":    false,
			"jsxSingleQuote": false,
			"semi":           true,
			"endOfLine":      "lf",
			"ignore":         []string{"node_modules/**", "dist/**"},
		}
		data, err := json.MarshalIndent(defaults, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal template: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported template format %q", format)
	}
}
