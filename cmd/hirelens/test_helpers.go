package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the hirelens binary for CLI tests.
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "hirelens")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// withoutAPIKey strips GEMINI_API_KEY from a copy of the environment.
func withoutAPIKey(env []string) []string {
	out := make([]string, 0, len(env))
	for _, e := range env {
		if len(e) < 15 || e[:15] != "GEMINI_API_KEY=" {
			out = append(out, e)
		}
	}
	return out
}
