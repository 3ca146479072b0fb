package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain picks up a .env from the package directory or the repo root.
// Neither is required; CI runs without one.
func TestMain(m *testing.M) {
	for _, path := range []string{".env", filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
	os.Exit(m.Run())
}
