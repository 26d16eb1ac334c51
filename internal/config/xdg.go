package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config, adapted from
// verte-zerg-tuipe/internal/config/xdg.go.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns <user-config>/autocorrect/config.toml.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "autocorrect", "config.toml")
}

// DefaultPersonalDictionaryPath returns
// <user-config>/autocorrect/personal_dictionary.txt (spec §6).
func DefaultPersonalDictionaryPath() string {
	return filepath.Join(XDGConfigHome(), "autocorrect", "personal_dictionary.txt")
}
