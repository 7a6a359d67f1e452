package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfigFile(t, `
server:
  port: "9090"
  mode: release

ai:
  base_url: https://api.example.com/v1
  api_key: ""
  model: test-model

cors:
  allowed_origins:
    - http://localhost:3000

tracing:
  enabled: false
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9090" || cfg.Server.Mode != "release" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.AI.BaseURL != "https://api.example.com/v1" || cfg.AI.Model != "test-model" {
		t.Errorf("ai = %+v", cfg.AI)
	}
	if cfg.AI.APIKey != "" {
		t.Errorf("api_key = %q, want empty (heuristic-only mode)", cfg.AI.APIKey)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 {
		t.Errorf("cors = %+v", cfg.CORS)
	}
	if cfg.Tracing.Enabled {
		t.Error("tracing enabled without being configured")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfigFile(t, `
server:
  port: "8080"
  mode: debug

ai:
  base_url: https://api.example.com/v1
  api_key: ""
  model: test-model
`)

	t.Setenv("AI_API_KEY", "sk-from-env")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.AI.APIKey != "sk-from-env" {
		t.Errorf("api_key = %q, want env override", cfg.AI.APIKey)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("port = %q, want env override", cfg.Server.Port)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("want error for missing config file")
	}
}
