package hostconfig_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/pkg/hostconfig"
)

func TestParseResponseSuccess(t *testing.T) {
	t.Run("decodes valid entries", func(t *testing.T) {
		raw := json.RawMessage(`{"Success": [
			{"path": "/a/.lintrc.js", "config": {"plugins": ["react"], "rules": {"no-var": "error"}}},
			{"path": "/b/.lintrc.js", "config": {}}
		]}`)

		entries, diags := hostconfig.ParseResponse(raw)
		require.Empty(t, diags)
		require.Len(t, entries, 2)
		assert.Equal(t, "/a/.lintrc.js", entries[0].Path)
		assert.Equal(t, []string{"react"}, entries[0].Config.Plugins)
		assert.Contains(t, entries[0].Config.Rules, "no-var")
		assert.Equal(t, "/b/.lintrc.js", entries[1].Path)
	})

	t.Run("empty success list", func(t *testing.T) {
		entries, diags := hostconfig.ParseResponse(json.RawMessage(`{"Success": []}`))
		assert.Empty(t, diags)
		assert.Empty(t, entries)
	})

	t.Run("entry decode failure names the path", func(t *testing.T) {
		raw := json.RawMessage(`{"Success": [
			{"path": "/bad/.lintrc.js", "config": {"plugins": "not-a-list"}}
		]}`)

		entries, diags := hostconfig.ParseResponse(raw)
		assert.Empty(t, entries)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "/bad/.lintrc.js")
	})

	t.Run("non-empty extends is rejected", func(t *testing.T) {
		raw := json.RawMessage(`{"Success": [
			{"path": "/x/.lintrc.js", "config": {"extends": ["airbnb"]}}
		]}`)

		entries, diags := hostconfig.ParseResponse(raw)
		assert.Empty(t, entries)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "`extends`")
		assert.Contains(t, diags[0].Message, "/x/.lintrc.js")
	})

	// A batch is atomic: one bad entry discards the good ones too, while
	// every failure in the batch is still reported.
	t.Run("all or nothing aggregation", func(t *testing.T) {
		raw := json.RawMessage(`{"Success": [
			{"path": "/good/.lintrc.js", "config": {"plugins": ["react"]}},
			{"path": "/ext/.lintrc.js", "config": {"extends": ["base"]}},
			{"path": "/bad/.lintrc.js", "config": {"env": "nope"}}
		]}`)

		entries, diags := hostconfig.ParseResponse(raw)
		assert.Empty(t, entries)
		require.Len(t, diags, 2)
		assert.Contains(t, diags[0].Message, "/ext/.lintrc.js")
		assert.Contains(t, diags[1].Message, "/bad/.lintrc.js")
	})
}

func TestParseResponseOtherShapes(t *testing.T) {
	t.Run("failures shape yields one diagnostic per failure", func(t *testing.T) {
		raw := json.RawMessage(`{"Failures": [
			{"path": "/a/.lintrc.js", "error": "SyntaxError: unexpected token"},
			{"path": "/b/.lintrc.js", "error": "Cannot find module"}
		]}`)

		entries, diags := hostconfig.ParseResponse(raw)
		assert.Empty(t, entries)
		require.Len(t, diags, 2)
		assert.Equal(t, "failed to load config: /a/.lintrc.js", diags[0].Message)
		assert.Equal(t, "SyntaxError: unexpected token", diags[0].Note)
	})

	t.Run("top-level error shape yields exactly one diagnostic", func(t *testing.T) {
		entries, diags := hostconfig.ParseResponse(json.RawMessage(`{"Error": "worker crashed"}`))
		assert.Empty(t, entries)
		require.Len(t, diags, 1)
		assert.Equal(t, "failed to load config files", diags[0].Message)
		assert.Equal(t, "worker crashed", diags[0].Note)
	})

	t.Run("malformed response", func(t *testing.T) {
		entries, diags := hostconfig.ParseResponse(json.RawMessage(`{"Success": [`))
		assert.Empty(t, entries)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "failed to parse config response")
	})

	t.Run("missing tag", func(t *testing.T) {
		entries, diags := hostconfig.ParseResponse(json.RawMessage(`{"Unknown": true}`))
		assert.Empty(t, entries)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Note, "Success, Failures or Error")
	})
}

func TestLoader(t *testing.T) {
	t.Run("drives paths through the host", func(t *testing.T) {
		loader := hostconfig.NewLoader(func(_ context.Context, req json.RawMessage) (json.RawMessage, error) {
			var paths []string
			require.NoError(t, json.Unmarshal(req, &paths))
			assert.Equal(t, []string{"/a/.lintrc.js"}, paths)
			return json.RawMessage(`{"Success": [{"path": "/a/.lintrc.js", "config": {}}]}`), nil
		}, nil)

		entries, diags := loader.Load(context.Background(), []string{"/a/.lintrc.js"})
		require.Empty(t, diags)
		require.Len(t, entries, 1)
	})

	t.Run("host rejection carries the error text verbatim", func(t *testing.T) {
		loader := hostconfig.NewLoader(func(context.Context, json.RawMessage) (json.RawMessage, error) {
			return nil, errors.New("loader thread died")
		}, nil)

		entries, diags := loader.Load(context.Background(), nil)
		assert.Empty(t, entries)
		require.Len(t, diags, 1)
		assert.Equal(t, "config loading threw an error", diags[0].Message)
		assert.Equal(t, "loader thread died", diags[0].Note)
	})
}
