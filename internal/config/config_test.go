package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, "api_url = \"http://pi.local:5009\"\nrefresh_seconds = 30\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.APIURL != "http://pi.local:5009" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.RefreshSeconds != 30 {
		t.Errorf("RefreshSeconds = %d, want 30", cfg.RefreshSeconds)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "api_url = \"http://pi.local:5009\"\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.RefreshSeconds != Default().RefreshSeconds {
		t.Errorf("RefreshSeconds = %d, want default %d", cfg.RefreshSeconds, Default().RefreshSeconds)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := writeConfig(t, "api_url = [broken\n")

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadFromNegativeRefreshClamped(t *testing.T) {
	path := writeConfig(t, "refresh_seconds = -5\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.RefreshSeconds != 0 {
		t.Errorf("RefreshSeconds = %d, want 0", cfg.RefreshSeconds)
	}
}
