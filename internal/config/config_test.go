package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, defaultPort)
	}
	if cfg.UTCOffsetHours != 1 {
		t.Errorf("UTCOffsetHours = %d, want 1", cfg.UTCOffsetHours)
	}
	if cfg.Sources.CalendarAPI == "" || cfg.Sources.ReadingsEWTN == "" || cfg.Sources.ReadingsUSCCB == "" || cfg.Sources.SaintBio == "" {
		t.Errorf("source URLs must default: %+v", cfg.Sources)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
port: 9001
env: production
utc_offset_hours: 2
sources:
  readings_ewtn: "http://mirror.local/readings"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9002")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9002 {
		t.Errorf("env should override yaml: Port = %d", cfg.Port)
	}
	if cfg.UTCOffsetHours != 2 {
		t.Errorf("UTCOffsetHours = %d, want 2", cfg.UTCOffsetHours)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.Sources.ReadingsEWTN != "http://mirror.local/readings" {
		t.Errorf("ReadingsEWTN = %q", cfg.Sources.ReadingsEWTN)
	}
	if cfg.IsDev() {
		t.Error("production env should not report dev")
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
