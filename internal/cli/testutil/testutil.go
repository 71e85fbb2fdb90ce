// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SetupTestProject creates a temporary project with test sections.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, "sections"), 0755); err != nil {
		t.Fatalf("failed to create sections directory: %v", err)
	}

	config := `sections_dir: sections
output: english.json
state_path: ":memory:"
`
	if err := os.WriteFile(filepath.Join(tmpDir, "mazo.yaml"), []byte(config), 0644); err != nil {
		t.Fatalf("failed to create mazo.yaml: %v", err)
	}

	sec001 := `[
  {
    "id": 901,
    "term": "hola",
    "translation": "hello",
    "part_of_speech": "interjection"
  },
  {
    "id": 902,
    "term": "gracias",
    "translation": "thank you",
    "part_of_speech": "interjection"
  }
]`
	if err := os.WriteFile(filepath.Join(tmpDir, "sections", "sec_001.json"),
		[]byte(sec001), 0644); err != nil {
		t.Fatalf("failed to create sec_001.json: %v", err)
	}

	sec002 := `[
  {
    "id": 1,
    "term": "uno",
    "translation": "one",
    "part_of_speech": "numeral"
  }
]`
	if err := os.WriteFile(filepath.Join(tmpDir, "sections", "sec_002.json"),
		[]byte(sec002), 0644); err != nil {
		t.Fatalf("failed to create sec_002.json: %v", err)
	}

	return tmpDir
}

// WriteSection writes a raw section file into the project's sections directory.
func WriteSection(t *testing.T, projectDir, name, content string) string {
	t.Helper()

	path := filepath.Join(projectDir, "sections", name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

// AssertContains checks that the string contains the expected substring.
func AssertContains(t *testing.T, s, expected string) {
	t.Helper()
	if !strings.Contains(s, expected) {
		t.Errorf("string %q does not contain expected %q", s, expected)
	}
}

// AssertNotContains checks that the string does not contain the substring.
func AssertNotContains(t *testing.T, s, unexpected string) {
	t.Helper()
	if strings.Contains(s, unexpected) {
		t.Errorf("string %q unexpectedly contains %q", s, unexpected)
	}
}
