package fs

import (
	"os"
	"path/filepath"
	"strings"

	"butter/constants"
)

// Check if file exists and is a regular file
func IsValidFile(filename string) bool {
	fileInfo, err := os.Stat(filepath.FromSlash(filename))
	return err == nil && fileInfo.Mode().IsRegular()
}

// HasSourceExt reports whether path names a .btr source file.
func HasSourceExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), constants.EXT)
}

// BaseName strips the directory and the last extension: "src/app.btr" -> "app".
func BaseName(path string) string {
	base := filepath.Base(filepath.FromSlash(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputBase joins outDir and the base name of the source file. An empty
// outDir means the current directory.
func OutputBase(outDir, sourcePath string) string {
	if outDir == "" {
		return BaseName(sourcePath)
	}
	return filepath.Join(outDir, BaseName(sourcePath))
}

// CSourcePath is the generated C file for an output base.
func CSourcePath(base string) string {
	return base + constants.C_EXT
}

// WriteFile writes content to filePath, creating parent directories first.
func WriteFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, content, 0644)
}
