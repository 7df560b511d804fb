package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"butter/constants"
)

// CreateTempProject creates a temporary project directory with a minimal
// butter.toml whose native step is disabled.
func CreateTempProject(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	config := "[default]\nname = \"demo\"\n\n[build]\nentry = \"main.btr\"\n\n[native]\nenabled = false\n"
	if err := os.WriteFile(filepath.Join(tempDir, constants.CONFIG_FILE), []byte(config), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", constants.CONFIG_FILE, err)
	}

	return tempDir
}

// CreateTestFile creates main.btr with content inside a fresh project
func CreateTestFile(t *testing.T, content string) string {
	t.Helper()
	return CreateTestFileInDir(t, CreateTempProject(t), "main"+constants.EXT, content)
}

// CreateTestFileInDir creates a test file in a specific directory
func CreateTestFileInDir(t *testing.T, dir, filename, content string) string {
	t.Helper()
	// Ensure the target directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return filePath
}

// ReadFile returns the contents of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
