package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/pkg/engine"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		label string
		code  *int
	}{
		{name: "init runs host side", args: []string{"init"}, label: engine.LabelInit},
		{name: "init flags do not affect routing", args: []string{"init", "--force"}, label: engine.LabelInit},
		{name: "migrate runs host side", args: []string{"migrate"}, label: engine.LabelMigrate},
		{name: "migrate with input", args: []string{"migrate", ".prettierrc.json"}, label: engine.LabelMigrate},
		{name: "lsp continues natively", args: []string{"lsp"}, label: engine.LabelLSP},
		{name: "stdin via flag", args: []string{"--stdin-filepath", "a.ts"}, label: engine.LabelStdin},
		{name: "stdin via dash", args: []string{"-"}, label: engine.LabelStdin},
		{name: "plain paths", args: []string{"src/"}, label: engine.LabelCLI},
		{name: "no args", args: nil, label: engine.LabelCLI},
		{name: "check flag stays cli", args: []string{"--check", "src/"}, label: engine.LabelCLI},

		{name: "help flag", args: []string{"--help"}, label: engine.LabelHelp, code: intPtr(0)},
		{name: "help shorthand", args: []string{"-h"}, label: engine.LabelHelp, code: intPtr(0)},
		{name: "help subcommand", args: []string{"help"}, label: engine.LabelHelp, code: intPtr(0)},
		{name: "version flag", args: []string{"--version"}, label: engine.LabelVersion, code: intPtr(0)},
		{name: "version subcommand", args: []string{"version"}, label: engine.LabelVersion, code: intPtr(0)},

		{name: "unknown flag", args: []string{"--no-such-flag"}, label: engine.LabelError, code: intPtr(1)},
		{name: "malformed value", args: []string{"--jobs", "many"}, label: engine.LabelError, code: intPtr(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := engine.Route(tt.args)

			assert.Equal(t, tt.label, decision.Label)
			if tt.code == nil {
				assert.Nil(t, decision.Code)
			} else {
				require.NotNil(t, decision.Code)
				assert.Equal(t, *tt.code, *decision.Code)
			}
		})
	}
}

func intPtr(v int) *int {
	return &v
}
