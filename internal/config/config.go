// Package config loads <user-config>/autocorrect/config.toml (spec §6)
// with github.com/BurntSushi/toml, the same library and "missing file is
// not an error" shape as verte-zerg-tuipe/internal/config/toml.go.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigParseError is non-fatal (spec §7): defaults are applied and the
// caller proceeds.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("config: failed to parse %s: %v", e.Path, e.Err)
}
func (e *ConfigParseError) Unwrap() error { return e.Err }

// Config mirrors the config.toml keys of spec §6. Fields are plain values,
// not pointers: unlike verte-zerg-tuipe's FileConfig (which distinguishes
// "unset" from "zero" for a TUI's layered defaults), every key here has a
// single well-defined default applied in Load, so "did the file set this"
// is not a distinction this service needs to make.
type Config struct {
	MaxEditDistance    int    `toml:"max_edit_distance"`
	EnabledByDefault   bool   `toml:"enabled_by_default"`
	UndoTimeoutSeconds int    `toml:"undo_timeout_seconds"`
	HotkeyToggle       string `toml:"hotkey_toggle"`
	AutoCheckUpdates   bool   `toml:"auto_check_updates"`
}

// Default returns the spec §6 defaults.
func Default() Config {
	return Config{
		MaxEditDistance:    2,
		EnabledByDefault:   true,
		UndoTimeoutSeconds: 5,
		HotkeyToggle:       "Ctrl+Shift+A",
		AutoCheckUpdates:   true,
	}
}

// Load reads path and overlays it onto Default(). A missing file is not
// an error — it returns the defaults, mirroring toml.go's LoadConfig. A
// decode failure is non-fatal too: it returns *ConfigParseError alongside
// the defaults, per spec §7 ("ConfigParseError — non-fatal; defaults
// applied").
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &ConfigParseError{Path: path, Err: err}
	}

	var raw rawConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return cfg, &ConfigParseError{Path: path, Err: err}
	}
	cfg.applyOverrides(raw)
	return cfg, nil
}

// rawConfig uses pointers so Load can tell "present in the file" from
// "absent", which Config.applyOverrides needs to fall back to a default
// per-key on an out-of-range value rather than failing the whole decode.
type rawConfig struct {
	MaxEditDistance    *int    `toml:"max_edit_distance"`
	EnabledByDefault   *bool   `toml:"enabled_by_default"`
	UndoTimeoutSeconds *int    `toml:"undo_timeout_seconds"`
	HotkeyToggle       *string `toml:"hotkey_toggle"`
	AutoCheckUpdates   *bool   `toml:"auto_check_updates"`
}

func (cfg *Config) applyOverrides(raw rawConfig) {
	if raw.MaxEditDistance != nil && *raw.MaxEditDistance >= 1 && *raw.MaxEditDistance <= 3 {
		cfg.MaxEditDistance = *raw.MaxEditDistance
	}
	if raw.EnabledByDefault != nil {
		cfg.EnabledByDefault = *raw.EnabledByDefault
	}
	if raw.UndoTimeoutSeconds != nil && *raw.UndoTimeoutSeconds >= 1 {
		cfg.UndoTimeoutSeconds = *raw.UndoTimeoutSeconds
	}
	if raw.HotkeyToggle != nil && *raw.HotkeyToggle != "" {
		cfg.HotkeyToggle = *raw.HotkeyToggle
	}
	if raw.AutoCheckUpdates != nil {
		cfg.AutoCheckUpdates = *raw.AutoCheckUpdates
	}
}
