package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/pkg/formatter"
	"github.com/quillfmt/quill/pkg/options"
	"github.com/quillfmt/quill/pkg/runner"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newRunner() *runner.Runner {
	return runner.New(formatter.New(options.FromRaw(nil), nil))
}

func TestRun(t *testing.T) {
	t.Run("check mode reports changes without writing", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "a.ts", "const x = 1\r\n")
		writeFile(t, dir, "b.ts", "const y = 2\n")

		res, err := newRunner().Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Mode:       runner.ModeCheck,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, res.Stats.FilesDiscovered)
		assert.Equal(t, 2, res.Stats.FilesProcessed)
		assert.Equal(t, 1, res.Stats.FilesChanged)
		assert.Equal(t, 0, res.Stats.FilesWritten)
		assert.True(t, res.HasChanges())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "const x = 1\r\n", string(data))
	})

	t.Run("write mode rewrites changed files only", func(t *testing.T) {
		dir := t.TempDir()
		changed := writeFile(t, dir, "a.ts", "const x = 1\r\n")
		unchanged := writeFile(t, dir, "b.ts", "const y = 2\n")

		res, err := newRunner().Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Mode:       runner.ModeWrite,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Stats.FilesWritten)

		data, err := os.ReadFile(changed)
		require.NoError(t, err)
		assert.Equal(t, "const x = 1\n", string(data))

		data, err = os.ReadFile(unchanged)
		require.NoError(t, err)
		assert.Equal(t, "const y = 2\n", string(data))
	})

	t.Run("outcomes follow discovery order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "c.ts", "3\n")
		writeFile(t, dir, "a.ts", "1\n")
		writeFile(t, dir, "b.ts", "2\n")

		res, err := newRunner().Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Mode:       runner.ModeCheck,
			Jobs:       3,
		})
		require.NoError(t, err)
		require.Len(t, res.Files, 3)
		assert.Equal(t, filepath.Join(dir, "a.ts"), res.Files[0].Path)
		assert.Equal(t, filepath.Join(dir, "b.ts"), res.Files[1].Path)
		assert.Equal(t, filepath.Join(dir, "c.ts"), res.Files[2].Path)
	})

	t.Run("empty directory", func(t *testing.T) {
		res, err := newRunner().Run(context.Background(), runner.Options{
			WorkingDir: t.TempDir(),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Stats.FilesDiscovered)
		assert.False(t, res.HasFailures())
	})

	t.Run("cancelled context", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.ts", "1\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newRunner().Run(ctx, runner.Options{WorkingDir: dir})
		require.Error(t, err)
	})
}
