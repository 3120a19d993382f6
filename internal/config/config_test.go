package config

import (
	"os"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	// Load applies defaults even with no config file present; run from
	// a temp dir so a developer's ./config.toml cannot leak in.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HasAPIBase() {
		t.Errorf("APIBase = %q, want unset by default", cfg.APIBase)
	}
	if cfg.Performer != "kanata" {
		t.Errorf("Performer = %q, want kanata", cfg.Performer)
	}
	if cfg.View != "#/shuffle" {
		t.Errorf("View = %q, want #/shuffle", cfg.View)
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want unicode", cfg.Icons)
	}
	if cfg.PollInterval() != 200*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 200ms", cfg.PollInterval())
	}
	if cfg.PlayConfirmWindow() != 300*time.Millisecond {
		t.Errorf("PlayConfirmWindow() = %v, want 300ms", cfg.PlayConfirmWindow())
	}
}

func TestLoadFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir+"/config.toml", `
api_base = "https://archive.example.net/api/"
performer = "someone"
view = "#/list"
icons = "none"
poll_interval_ms = 500
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIBase != "https://archive.example.net/api" {
		t.Errorf("APIBase = %q, want trailing slash trimmed", cfg.APIBase)
	}
	if cfg.Performer != "someone" {
		t.Errorf("Performer = %q", cfg.Performer)
	}
	if cfg.View != "#/list" {
		t.Errorf("View = %q", cfg.View)
	}
	if cfg.Icons != "none" {
		t.Errorf("Icons = %q", cfg.Icons)
	}
	if cfg.PollIntervalMs != 500 {
		t.Errorf("PollIntervalMs = %d", cfg.PollIntervalMs)
	}
	if cfg.PlayConfirmMs != 300 {
		t.Errorf("PlayConfirmMs = %d, want default", cfg.PlayConfirmMs)
	}
}
