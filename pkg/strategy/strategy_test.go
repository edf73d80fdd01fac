package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/pkg/strategy"
)

func TestFromPath(t *testing.T) {
	cases := []struct {
		path string
		want strategy.Strategy
	}{
		{"a.js", strategy.Script},
		{"a.mjs", strategy.Script},
		{"a.cjs", strategy.Script},
		{"a.jsx", strategy.JSX},
		{"src/deep/a.ts", strategy.TypeScript},
		{"a.mts", strategy.TypeScript},
		{"a.tsx", strategy.TSX},
		{"A.TSX", strategy.TSX},
		{"types.d.ts", strategy.Declaration},
		{"types.d.mts", strategy.Declaration},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, d := strategy.FromPath(tc.path)
			require.Nil(t, d)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown extension names the path", func(t *testing.T) {
		_, d := strategy.FromPath("a.unknownext")
		require.NotNil(t, d)
		assert.Equal(t, "unsupported file type: a.unknownext", d.Message)
	})

	t.Run("no extension", func(t *testing.T) {
		_, d := strategy.FromPath("Makefile")
		require.NotNil(t, d)
		assert.Contains(t, d.Message, "Makefile")
	})
}

func TestStrategyProperties(t *testing.T) {
	t.Run("jsx detection", func(t *testing.T) {
		assert.True(t, strategy.JSX.HasJSX())
		assert.True(t, strategy.TSX.HasJSX())
		assert.False(t, strategy.Script.HasJSX())
		assert.False(t, strategy.TypeScript.HasJSX())
		assert.False(t, strategy.Declaration.HasJSX())
	})

	t.Run("parser names", func(t *testing.T) {
		assert.Equal(t, "babel", strategy.Script.ParserName())
		assert.Equal(t, "babel", strategy.JSX.ParserName())
		assert.Equal(t, "typescript", strategy.TypeScript.ParserName())
		assert.Equal(t, "typescript", strategy.TSX.ParserName())
		assert.Equal(t, "typescript", strategy.Declaration.ParserName())
	})

	t.Run("strings", func(t *testing.T) {
		for _, s := range strategy.All() {
			assert.NotEmpty(t, s.String())
		}
	})
}
