package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/internal/configloader"
	"github.com/quillfmt/quill/pkg/options"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDiscoverPath(t *testing.T) {
	t.Run("finds config in working directory", func(t *testing.T) {
		dir := t.TempDir()
		want := writeConfig(t, dir, ".quillrc.yaml", "tabWidth: 4\n")

		got, err := configloader.DiscoverPath(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("walks up to ancestors", func(t *testing.T) {
		root := t.TempDir()
		want := writeConfig(t, root, ".quillrc.yml", "semi: false\n")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		got, err := configloader.DiscoverPath(context.Background(), nested)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("nearest config wins", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, ".quillrc.yaml", "tabWidth: 8\n")
		nested := filepath.Join(root, "pkg")
		require.NoError(t, os.MkdirAll(nested, 0755))
		want := writeConfig(t, nested, ".quillrc.json", `{"tabWidth": 2}`)

		got, err := configloader.DiscoverPath(context.Background(), nested)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("no config returns empty", func(t *testing.T) {
		got, err := configloader.DiscoverPath(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoad(t *testing.T) {
	t.Run("yaml config file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".quillrc.yaml", "useTabs: true\ntabWidth: 4\nignore:\n  - dist/**\n")

		res, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		require.NoError(t, err)

		assert.Equal(t, true, res.Raw["useTabs"])
		assert.Equal(t, 4, res.Raw["tabWidth"])
		assert.Equal(t, []string{"dist/**"}, configloader.IgnoreGlobs(res.Raw))
		assert.NotEmpty(t, res.Path)
	})

	t.Run("json config file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "fmt.json", `{"singleQuote": true, "printWidth": 100}`)

		res, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   dir,
			ExplicitPath: path,
			IgnoreEnv:    true,
		})
		require.NoError(t, err)

		opts := options.Normalize(res.Raw)
		assert.Equal(t, options.QuoteSingle, opts.Quote)
		assert.Equal(t, uint16(100), opts.LineWidth)
	})

	t.Run("cli overrides beat the file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".quillrc.yaml", "tabWidth: 4\n")

		res, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   dir,
			IgnoreEnv:    true,
			CLIOverrides: options.Raw{"tabWidth": 8},
		})
		require.NoError(t, err)
		assert.Equal(t, 8, res.Raw["tabWidth"])
	})

	t.Run("env overrides beat the file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".quillrc.yaml", "printWidth: 100\n")
		t.Setenv("QUILL_PRINT_WIDTH", "120")

		res, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, 120, res.Raw["printWidth"])
	})

	t.Run("unparseable env override is dropped", func(t *testing.T) {
		t.Setenv("QUILL_TAB_WIDTH", "four")

		res, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: t.TempDir(),
		})
		require.NoError(t, err)
		_, present := res.Raw["tabWidth"]
		assert.False(t, present)
	})

	t.Run("malformed config file errors", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".quillrc.yaml", "useTabs: [unclosed\n")

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		require.Error(t, err)
	})

	t.Run("no config anywhere yields empty payload", func(t *testing.T) {
		res, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: t.TempDir(),
			IgnoreEnv:  true,
		})
		require.NoError(t, err)
		assert.Empty(t, res.Raw)
		assert.Empty(t, res.Path)
	})
}
