package config

import (
	"path/filepath"
	"testing"

	"github.com/ravenscar-systems/vterm/vterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigResolveShellFallsBackToEnv(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	cfg := DefaultConfig()
	path, _ := cfg.ResolveShell()
	assert.Equal(t, "/usr/bin/zsh", path)
}

func TestResolveShellUsesConfiguredPathFirst(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	cfg := DefaultConfig()
	cfg.Shell.Path = "/usr/bin/fish"
	path, _ := cfg.ResolveShell()
	assert.Equal(t, "/usr/bin/fish", path)
}

func TestResolveShellFallsBackToBinSh(t *testing.T) {
	t.Setenv("SHELL", "")
	cfg := DefaultConfig()
	path, _ := cfg.ResolveShell()
	assert.Equal(t, "/bin/sh", path)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg := DefaultConfig()
	cfg.Shell.Path = "/usr/bin/fish"
	cfg.Palette.Red = RGB{R: 0x12, G: 0x34, B: 0x56}

	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, ".config", "vterm", "config.toml"))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/fish", loaded.Shell.Path)
	assert.Equal(t, RGB{R: 0x12, G: 0x34, B: 0x56}, loaded.Palette.Red)
}

func TestLoadReturnsDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestPaletteResolveBrightVariant(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Red, p.Resolve(vterm.ColorRed, false))
	assert.Equal(t, p.BrightRed, p.Resolve(vterm.ColorRed, true))
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#aa0000", RGB{0xaa, 0x00, 0x00}.Hex())
}
