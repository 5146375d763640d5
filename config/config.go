// Package config loads and saves the ambient settings for a vterm-backed
// host: which shell to spawn under a pty and which RGB colors to render
// the core's 3-bit color indices as.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds a host's persisted settings.
type Config struct {
	Shell   ShellConfig `toml:"shell"`
	Palette Palette     `toml:"palette"`
}

// ShellConfig describes which shell to spawn under a pty.
type ShellConfig struct {
	Path     string   `toml:"path"`
	Args     []string `toml:"args"`
	SourceRC bool     `toml:"source_rc"`
}

// DefaultConfig returns the default configuration: no shell path override
// (ResolveShell falls back to $SHELL or a platform default) and the
// built-in palette.
func DefaultConfig() *Config {
	return &Config{
		Shell:   ShellConfig{SourceRC: true},
		Palette: DefaultPalette(),
	}
}

// GetConfigPath returns the path to the TOML config file, creating its
// parent directory if needed.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".vterm.toml"
	}
	configDir := filepath.Join(homeDir, ".config", "vterm")
	os.MkdirAll(configDir, 0755)
	return filepath.Join(configDir, "config.toml")
}

// Load reads the configuration from disk, returning DefaultConfig when no
// file exists yet.
func Load() (*Config, error) {
	configPath := GetConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to disk as TOML.
func (c *Config) Save() error {
	configPath := GetConfigPath()
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// ResolveShell returns the shell command to spawn: the configured path if
// set, otherwise $SHELL, otherwise /bin/sh.
func (c *Config) ResolveShell() (path string, args []string) {
	if c.Shell.Path != "" {
		return c.Shell.Path, c.Shell.Args
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env, c.Shell.Args
	}
	return "/bin/sh", c.Shell.Args
}

// GetAvailableShells returns a list of installed shells, most specific
// first, deduplicated by basename.
func GetAvailableShells() []string {
	shells := []string{}
	possibleShells := []string{
		"/bin/bash",
		"/usr/bin/bash",
		"/bin/zsh",
		"/usr/bin/zsh",
		"/bin/fish",
		"/usr/bin/fish",
		"/bin/sh",
		"/usr/bin/sh",
		"/bin/dash",
		"/usr/bin/dash",
		"/bin/tcsh",
		"/usr/bin/tcsh",
		"/bin/ksh",
		"/usr/bin/ksh",
	}

	seen := make(map[string]bool)
	for _, shell := range possibleShells {
		if _, err := os.Stat(shell); err == nil {
			base := filepath.Base(shell)
			if !seen[base] {
				seen[base] = true
				shells = append(shells, shell)
			}
		}
	}
	return shells
}
