package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the content_validator binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "content_validator"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/content_validator ./cmd/content_validator'", binaryPath)
	}

	return binaryPath
}

// writeFile writes content into dir and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
