package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(missing) = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
max_edit_distance = 1
enabled_by_default = false
hotkey_toggle = "Ctrl+Alt+Z"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxEditDistance != 1 || cfg.EnabledByDefault != false || cfg.HotkeyToggle != "Ctrl+Alt+Z" {
		t.Fatalf("Load(overrides) = %+v", cfg)
	}
	if cfg.UndoTimeoutSeconds != 5 {
		t.Errorf("UndoTimeoutSeconds = %d, want default 5 unchanged", cfg.UndoTimeoutSeconds)
	}
}

func TestLoad_OutOfRangeFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("max_edit_distance = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxEditDistance != Default().MaxEditDistance {
		t.Errorf("MaxEditDistance = %d, want default %d for out-of-range value", cfg.MaxEditDistance, Default().MaxEditDistance)
	}
}

func TestLoad_MalformedFileReturnsConfigParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if _, ok := err.(*ConfigParseError); !ok {
		t.Fatalf("Load(malformed) err = %v, want *ConfigParseError", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(malformed) = %+v, want defaults on parse error", cfg)
	}
}
