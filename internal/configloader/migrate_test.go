package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfmt/quill/internal/configloader"
)

func TestFindPrettierConfig(t *testing.T) {
	t.Run("prefers plain rc file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".prettierrc", "{}")
		writeConfig(t, dir, ".prettierrc.json", "{}")

		found := configloader.FindPrettierConfig(dir)
		assert.Equal(t, filepath.Join(dir, ".prettierrc"), found)
	})

	t.Run("empty when nothing present", func(t *testing.T) {
		assert.Empty(t, configloader.FindPrettierConfig(t.TempDir()))
	})
}

func TestCanMigrate(t *testing.T) {
	assert.True(t, configloader.CanMigrate(".prettierrc"))
	assert.True(t, configloader.CanMigrate(".prettierrc.json"))
	assert.True(t, configloader.CanMigrate(".prettierrc.yaml"))
	assert.False(t, configloader.CanMigrate("prettier.config.js"))
	assert.False(t, configloader.CanMigrate(".prettierrc.cjs"))
	assert.False(t, configloader.CanMigrate(".prettierrc.mjs"))
}

func TestConvertPrettierConfig(t *testing.T) {
	t.Run("carries known options and warns on the rest", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, ".prettierrc.json",
			`{"tabWidth": 4, "semi": false, "arrowParens": "avoid", "proseWrap": "always"}`)

		result, err := configloader.ConvertPrettierConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 4, result.Raw["tabWidth"])
		assert.Equal(t, false, result.Raw["semi"])
		assert.NotContains(t, result.Raw, "arrowParens")

		require.Len(t, result.Warnings, 2)
		assert.Contains(t, result.Warnings[0], "arrowParens")
		assert.Contains(t, result.Warnings[1], "proseWrap")
	})

	t.Run("yaml input", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, ".prettierrc.yaml", "singleQuote: true\n")

		result, err := configloader.ConvertPrettierConfig(path)
		require.NoError(t, err)
		assert.Equal(t, true, result.Raw["singleQuote"])
	})

	t.Run("malformed input errors", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, ".prettierrc", "{unclosed")

		_, err := configloader.ConvertPrettierConfig(path)
		assert.Error(t, err)
	})
}

func TestMigrationResultToYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".prettierrc.json", `{"useTabs": true}`)

	result, err := configloader.ConvertPrettierConfig(path)
	require.NoError(t, err)

	out, err := result.ToYAML(path)
	require.NoError(t, err)

	assert.Contains(t, string(out), "# Migrated from .prettierrc.json")
	assert.Contains(t, string(out), "useTabs: true")
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		out, err := configloader.GenerateTemplate("yaml")
		require.NoError(t, err)
		assert.Contains(t, string(out), "tabWidth: 2")
		assert.Contains(t, string(out), "node_modules/**")
	})

	t.Run("json", func(t *testing.T) {
		out, err := configloader.GenerateTemplate("json")
		require.NoError(t, err)
		assert.Contains(t, string(out), `"endOfLine": "lf"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := configloader.GenerateTemplate("toml")
		assert.Error(t, err)
	})
}

func TestTemplateRoundTrip(t *testing.T) {
	// The generated template must load cleanly through the config loader.
	dir := t.TempDir()
	content, err := configloader.GenerateTemplate("yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".quillrc.yaml"), content, 0o644))

	result, err := configloader.Load(t.Context(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 80, result.Raw["printWidth"])
	assert.Equal(t, []string{"node_modules/**", "dist/**"}, configloader.IgnoreGlobs(result.Raw))
}
