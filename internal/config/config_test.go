package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg, err := Load(path, dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BaseURL == "" {
		t.Error("Load() returned empty base URL")
	}
	if cfg.Mock.Enabled {
		t.Error("mocking should default to disabled")
	}
	if cfg.Debug {
		t.Error("debug should default to off")
	}

	// Default config file should have been written
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not written: %v", err)
	}
}

func TestLoadReadsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	content := []byte("api:\n  base_url: http://localhost:8080/api/v1\nmock:\n  enabled: true\ndebug: true\n")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got, want := cfg.API.BaseURL, "http://localhost:8080/api/v1"; got != want {
		t.Errorf("BaseURL = %q, want %q", got, want)
	}
	if !cfg.Mock.Enabled {
		t.Error("Mock.Enabled = false, want true")
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}
