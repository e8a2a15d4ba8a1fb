package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"sentai/internal/config"
)

func TestLoadEnvFileSetsMissingVariables(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	os.Unsetenv(config.EnvAPIKey)
	t.Setenv(config.EnvModel, "already-set")

	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nOPENAI_API_KEY=from-dotenv\nSENTAI_MODEL=ignored\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if err := config.LoadEnvFile(path, true); err != nil {
		t.Fatalf("LoadEnvFile returned error: %v", err)
	}
	if got := os.Getenv(config.EnvAPIKey); got != "from-dotenv" {
		t.Fatalf("expected key from env file, got %q", got)
	}
	if got := os.Getenv(config.EnvModel); got != "already-set" {
		t.Fatalf("expected existing variable to win, got %q", got)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	if err := config.LoadEnvFile(missing, false); err != nil {
		t.Fatalf("expected optional missing file to be ignored, got %v", err)
	}
	if err := config.LoadEnvFile(missing, true); err == nil {
		t.Fatal("expected required missing file to fail")
	}
}
