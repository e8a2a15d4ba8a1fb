package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"sentai/internal/config"
)

// isolateEnv points HOME and the working directory at temp dirs and clears
// every variable the config layer reads.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{config.EnvAPIKey, config.EnvBaseURL, config.EnvModel, config.EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
