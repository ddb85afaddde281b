package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	f, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), f)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "focus_minutes: 25\nbreak_minutes: 5\ntheme: mono\nshow_icons: false\nfullscreen: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileExt), []byte(content), 0o644))

	f, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 25, f.FocusMinutes)
	assert.Equal(t, 5, f.BreakMinutes)
	assert.Equal(t, "mono", f.Theme)
	assert.False(t, f.ShowIcons)
	assert.True(t, f.Fullscreen)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileExt), []byte("focus_minutes: 25\n"), 0o644))
	t.Setenv("LEXODORO_FOCUS_MINUTES", "40")

	f, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 40, f.FocusMinutes)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileExt), []byte("focus_minutes: [\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestWriteDefaultCreatesOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	path, err := WriteDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileExt), path)

	f, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), f)

	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 30\n"), 0o644))
	_, err = WriteDefault(dir)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "focus_minutes: 30\n", string(data))
}

func TestResolveConfigDirPrecedence(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("LEXODORO_CONFIG_DIR", "")
	assert.Equal(t, filepath.Join(xdg, AppName), ResolveConfigDir(""))

	t.Setenv("LEXODORO_CONFIG_DIR", "/tmp/from-env")
	assert.Equal(t, "/tmp/from-env", ResolveConfigDir(""))
	assert.Equal(t, "/tmp/from-flag", ResolveConfigDir("/tmp/from-flag"))
}
