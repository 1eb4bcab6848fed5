package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quizforge/quizforge/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("STORE_PATH", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := config.FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.StoreDriver != "sqlite" {
		t.Fatalf("driver = %q", cfg.StoreDriver)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("cors = %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg := config.FromEnv()
	if cfg.HTTPAddr != ":9090" || cfg.StoreDriver != "file" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example" {
		t.Fatalf("cors = %v", cfg.CORSOrigins)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizforge.yaml")
	body := "http_addr: \":7070\"\nstore_driver: memory\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_PATH", "/tmp/x")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("file value lost: addr = %q", cfg.HTTPAddr)
	}
	if cfg.StoreDriver != "memory" {
		t.Fatalf("driver = %q", cfg.StoreDriver)
	}
	// env values without file counterparts survive
	if cfg.StorePath != "/tmp/x" {
		t.Fatalf("store path = %q", cfg.StorePath)
	}
}

func TestLoadBadFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
