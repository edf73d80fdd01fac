package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.ts")

		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("const x = 1;\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "const x = 1;\n", string(data))
	})

	t.Run("replaces content and keeps mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.ts")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.ts")

		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("x")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.ts", entries[0].Name())
	})

	t.Run("respects cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "a.ts")
		err := fsutil.WriteAtomic(cancelled, path, []byte("x"))

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})
}
