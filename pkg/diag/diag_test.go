package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/pkg/diag"
)

func TestDiagnosticConstruction(t *testing.T) {
	t.Run("error severity", func(t *testing.T) {
		d := diag.Error("boom")
		assert.Equal(t, "boom", d.Message)
		assert.Equal(t, diag.SeverityError, d.Severity)
		assert.Empty(t, d.Note)
		assert.Nil(t, d.Span)
	})

	t.Run("with note does not mutate original", func(t *testing.T) {
		d := diag.Error("boom")
		noted := d.WithNote("details")
		assert.Empty(t, d.Note)
		assert.Equal(t, "details", noted.Note)
	})

	t.Run("with span", func(t *testing.T) {
		d := diag.Warning("odd").WithSpan(diag.Span{File: "a.ts", Start: 3, End: 9})
		require.NotNil(t, d.Span)
		assert.Equal(t, "a.ts", d.Span.File)
		assert.Equal(t, 3, d.Span.Start)
		assert.Equal(t, 9, d.Span.End)
	})

	t.Run("string rendering", func(t *testing.T) {
		d := diag.Error("config loading threw an error").WithNote("ENOENT")
		assert.Equal(t, "error: config loading threw an error (ENOENT)", d.String())
	})
}

func TestList(t *testing.T) {
	t.Run("preserves order and duplicates", func(t *testing.T) {
		var l diag.List
		l.Append(diag.Error("first"))
		l.Append(diag.Warning("second"), diag.Error("first"))

		require.Len(t, l, 3)
		assert.Equal(t, "first", l[0].Message)
		assert.Equal(t, "second", l[1].Message)
		assert.Equal(t, "first", l[2].Message)
	})

	t.Run("has errors", func(t *testing.T) {
		l := diag.List{diag.Warning("w")}
		assert.False(t, l.HasErrors())
		l.Append(diag.Error("e"))
		assert.True(t, l.HasErrors())
	})

	t.Run("messages", func(t *testing.T) {
		l := diag.List{diag.Warning("w"), diag.Error("e")}
		assert.Equal(t, []string{"warning: w", "error: e"}, l.Messages())
	})
}
