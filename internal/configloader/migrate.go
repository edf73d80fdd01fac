package configloader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quillfmt/quill/pkg/options"
)

// prettierConfigNames are the Prettier config files migrate searches for,
// in priority order.
var prettierConfigNames = []string{
	".prettierrc",
	".prettierrc.json",
	".prettierrc.yaml",
	".prettierrc.yml",
	"prettier.config.js",
	".prettierrc.js",
	".prettierrc.cjs",
	".prettierrc.mjs",
}

// migratableFields are the Prettier options quill understands, carried over
// verbatim.
var migratableFields = map[string]bool{
	"useTabs":                 true,
	"tabWidth":                true,
	"printWidth":              true,
	"singleQuote":             true,
	"jsxSingleQuote":          true,
	"semi":                    true,
	"endOfLine":               true,
	"experimentalTailwindcss": true,
	"experimentalSortImports": true,
}

// MigrationResult holds a converted configuration plus warnings about
// options that could not be carried over.
type MigrationResult struct {
	Raw      options.Raw
	Warnings []string
}

// FindPrettierConfig returns the first Prettier config file found in dir,
// or "" when none exists.
func FindPrettierConfig(dir string) string {
	for _, name := range prettierConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// CanMigrate reports whether a Prettier config file can be converted
// automatically. JavaScript configs require manual migration.
func CanMigrate(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".cjs", ".mjs":
		return false
	}
	return true
}

// ConvertPrettierConfig reads a Prettier JSON or YAML config and converts
// it to a quill raw option payload. Options quill does not understand are
// dropped with a warning rather than failing the migration.
func ConvertPrettierConfig(path string) (*MigrationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// .prettierrc without an extension holds JSON or YAML; YAML parses both.
	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	result := &MigrationResult{Raw: options.Raw{}}

	dropped := make([]string, 0, len(parsed))
	for field, value := range parsed {
		if migratableFields[field] {
			result.Raw[field] = value
		} else {
			dropped = append(dropped, field)
		}
	}

	sort.Strings(dropped)
	for _, field := range dropped {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("option %q has no quill equivalent and was dropped", field))
	}

	return result, nil
}

// ToYAML serializes the migrated configuration with a provenance header.
func (r *MigrationResult) ToYAML(sourcePath string) ([]byte, error) {
	body, err := yaml.Marshal(r.Raw)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Migrated from %s by quill migrate.\n", filepath.Base(sourcePath))
	b.Write(body)
	return []byte(b.String()), nil
}
