// Package hostconfig decodes the host's batched config-loading response into
// validated lint-config entries or diagnostics.
package hostconfig

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quillfmt/quill/pkg/bridge"
	"github.com/quillfmt/quill/pkg/diag"
)

// LintConfig is one validated lint configuration as reported by the host.
type LintConfig struct {
	Plugins    []string                   `json:"plugins,omitempty"`
	Categories map[string]string          `json:"categories,omitempty"`
	Rules      map[string]json.RawMessage `json:"rules,omitempty"`
	Extends    []string                   `json:"extends,omitempty"`
	Env        map[string]bool            `json:"env,omitempty"`
	Globals    map[string]string          `json:"globals,omitempty"`
}

// Entry pairs a config file path with its validated configuration. Entries
// are immutable once produced.
type Entry struct {
	Path   string
	Config LintConfig
}

// The tagged response has exactly three shapes, attempted in this order:
// a Success list of (path, raw config) pairs, a Failures list of
// (path, error text) pairs, or a single top-level Error string.
type responseEnvelope struct {
	Success  *[]successEntry `json:"Success"`
	Failures *[]failureEntry `json:"Failures"`
	Error    *string         `json:"Error"`
}

type successEntry struct {
	Path   string          `json:"path"`
	Config json.RawMessage `json:"config"`
}

type failureEntry struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// ParseResponse decodes a tagged host response. It returns either all
// entries or all diagnostics, never a mix: a config-loading batch is atomic,
// so one failing entry discards the successful entries from the same batch
// while still reporting every failure found.
func ParseResponse(raw json.RawMessage) ([]Entry, diag.List) {
	var envelope responseEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, diag.List{
			diag.Error("failed to parse config response").WithNote(err.Error()),
		}
	}

	switch {
	case envelope.Success != nil:
		return parseSuccess(*envelope.Success)

	case envelope.Failures != nil:
		var diags diag.List
		for _, failure := range *envelope.Failures {
			diags.Append(
				diag.Error(fmt.Sprintf("failed to load config: %s", failure.Path)).
					WithNote(failure.Error),
			)
		}
		return nil, diags

	case envelope.Error != nil:
		return nil, diag.List{
			diag.Error("failed to load config files").WithNote(*envelope.Error),
		}

	default:
		return nil, diag.List{
			diag.Error("failed to parse config response").
				WithNote("expected a Success, Failures or Error tag"),
		}
	}
}

func parseSuccess(entries []successEntry) ([]Entry, diag.List) {
	configs := make([]Entry, 0, len(entries))
	var diags diag.List

	for _, entry := range entries {
		var cfg LintConfig
		if err := json.Unmarshal(entry.Config, &cfg); err != nil {
			diags.Append(
				diag.Error(fmt.Sprintf("failed to parse config from %s", entry.Path)).
					WithNote(err.Error()),
			)
			continue
		}

		// Cross-boundary configs cannot resolve their extends chains.
		if len(cfg.Extends) != 0 {
			diags.Append(diag.Error(fmt.Sprintf(
				"`extends` in host configs is not supported (found in %s)", entry.Path,
			)))
			continue
		}

		configs = append(configs, Entry{Path: entry.Path, Config: cfg})
	}

	if len(diags) != 0 {
		return nil, diags
	}
	return configs, nil
}

// Loader wraps the host's config-loading callback. The callback receives the
// paths to load and resolves to the tagged response ParseResponse accepts.
type Loader struct {
	b *bridge.Bridge[[]string, json.RawMessage]
}

// NewLoader creates a loader over the host callback. A nil sched defaults to
// inline execution.
func NewLoader(fn bridge.HostFunc, sched bridge.Scheduler) *Loader {
	return &Loader{b: bridge.New[[]string, json.RawMessage]("config loading", fn, sched)}
}

// Load drives one batched config load through the host and parses the
// response. Host-side rejection and response decode failures each produce a
// single diagnostic.
func (l *Loader) Load(ctx context.Context, paths []string) ([]Entry, diag.List) {
	raw, err := l.b.Invoke(ctx, paths)
	if err != nil {
		return nil, diag.List{err.Diagnostic()}
	}
	return ParseResponse(raw)
}
