package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "base.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != ":8080" {
		t.Errorf("port = %q, want :8080", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9000"
db:
  host: "dbhost"
  port: 5433
jwt:
  secret: "s3cret"
gemini:
  api_key: "k"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != ":9000" {
		t.Errorf("port = %q, want :9000", cfg.Server.Port)
	}
	if cfg.DB.Host != "dbhost" || cfg.DB.Port != 5433 {
		t.Errorf("db = %s:%d, want dbhost:5433", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.JWT.Secret != "s3cret" {
		t.Errorf("jwt secret = %q", cfg.JWT.Secret)
	}
	if cfg.Gemini.APIKey != "k" {
		t.Errorf("gemini key = %q", cfg.Gemini.APIKey)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9000"
db:
  host: "dbhost"
`)

	t.Setenv("SERVER_PORT", ":7777")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != ":7777" {
		t.Errorf("port = %q, want env override :7777", cfg.Server.Port)
	}
	if cfg.DB.Host != "envhost" {
		t.Errorf("db host = %q, want envhost", cfg.DB.Host)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("gemini key = %q, want env-key", cfg.Gemini.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
