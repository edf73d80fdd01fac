// Package configloader resolves the raw option payload for a run from the
// project config file, environment variables, and CLI overrides.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quillfmt/quill/internal/logging"
	"github.com/quillfmt/quill/pkg/options"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips QUILL_* environment overrides.
	IgnoreEnv bool

	// CLIOverrides are raw option fields set from CLI flags.
	// These take highest precedence.
	CLIOverrides options.Raw
}

// LoadResult contains the resolved raw payload and its provenance.
type LoadResult struct {
	// Raw is the merged option payload, ready for options.FromRaw.
	Raw options.Raw

	// Path is the config file that was loaded, or "" when none was found.
	Path string
}

// Load resolves the raw option payload by merging all sources.
// Precedence (highest to lowest): CLI flags, environment variables, config
// file, defaults (applied later by the normalizer).
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	result := &LoadResult{Raw: options.Raw{}}
	logger := logging.FromContext(ctx)

	path := opts.ExplicitPath
	if path == "" {
		var err error
		path, err = DiscoverPath(ctx, workDir)
		if err != nil {
			return nil, fmt.Errorf("discover config: %w", err)
		}
	}

	if path != "" {
		fileRaw, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		merge(result.Raw, fileRaw)
		result.Path = path
		logger.Debug("loaded config file", logging.FieldConfig, path)
	}

	if !opts.IgnoreEnv {
		merge(result.Raw, fromEnv())
	}

	merge(result.Raw, opts.CLIOverrides)

	return result, nil
}

// parseFile reads a YAML or JSON config file into a raw option tree. YAML is
// a JSON superset, so one decoder serves both.
func parseFile(path string) (options.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw options.Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return raw, nil
}

// merge overlays src onto dst, key by key.
func merge(dst, src options.Raw) {
	for k, v := range src {
		dst[k] = v
	}
}

// IgnoreGlobs extracts the "ignore" pattern list from a raw payload, if one
// is present and well-formed.
func IgnoreGlobs(raw options.Raw) []string {
	list, ok := raw["ignore"].([]any)
	if !ok {
		return nil
	}
	globs := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			globs = append(globs, s)
		}
	}
	return globs
}
