// Package testutil provides shared helpers for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteWordFile writes a word file with the given JSON document into a
// fresh temp directory and returns its path.
func WriteWordFile(t *testing.T, document string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		t.Fatalf("Failed to create word file %s: %v", path, err)
	}
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}
