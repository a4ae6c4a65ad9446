// Package testkit provides testing helpers
package testkit

import (
	"os"
	"path/filepath"
	"testing"
)

// Env sets every key for the duration of the test
func Env(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

// Fixture reads testdata/name relative to the calling package, failing the test when missing
func Fixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return b
}
