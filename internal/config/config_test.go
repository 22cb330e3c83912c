package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Effects.FPS != nil || cfg.Portfolio.Content != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[portfolio]\ncontent = \"/tmp/me.yaml\"\n\n[effects]\nfps = 30\ntrail = false\ntrail-segments = 4\nreduced-motion = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Portfolio.Content == nil || *cfg.Portfolio.Content != "/tmp/me.yaml" {
		t.Fatalf("unexpected content path: %v", cfg.Portfolio.Content)
	}
	if cfg.Effects.FPS == nil || *cfg.Effects.FPS != 30 {
		t.Fatalf("unexpected fps: %v", cfg.Effects.FPS)
	}
	if cfg.Effects.Trail == nil || *cfg.Effects.Trail {
		t.Fatalf("expected trail disabled")
	}
	if cfg.Effects.TrailSegments == nil || *cfg.Effects.TrailSegments != 4 {
		t.Fatalf("unexpected trail segments")
	}
	if cfg.Effects.ReducedMotion == nil || !*cfg.Effects.ReducedMotion {
		t.Fatalf("expected reduced motion")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[effects]\nsparkles = true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestDefaultContentPathHonoursEnv(t *testing.T) {
	t.Setenv(ContentEnv, "/srv/portfolio.yaml")
	if got := DefaultContentPath(); got != "/srv/portfolio.yaml" {
		t.Fatalf("expected env override, got %s", got)
	}
	t.Setenv(ContentEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	if got := DefaultContentPath(); got != filepath.Join("/cfg", "termfolio", "content.yaml") {
		t.Fatalf("unexpected default path %s", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := ExpandHome("~/.config/termfolio/content.yaml"); got != filepath.Join(home, ".config", "termfolio", "content.yaml") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if got := ExpandHome("~"); got != home {
		t.Fatalf("expected home, got %q", got)
	}
	for _, path := range []string{"/tmp/me.yaml", "me.yaml", "~other/me.yaml", ""} {
		if got := ExpandHome(path); got != path {
			t.Fatalf("expected %q unchanged, got %q", path, got)
		}
	}
}

func TestDefaultContentPathExpandsEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(ContentEnv, "~/me.yaml")
	if got := DefaultContentPath(); got != filepath.Join(home, "me.yaml") {
		t.Fatalf("unexpected content path: %q", got)
	}
}
