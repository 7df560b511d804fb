package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.btr")
	if err := os.WriteFile(file, []byte("func main() {}"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"Regular file", file, true},
		{"Directory", dir, false},
		{"Missing", filepath.Join(dir, "nope.btr"), false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFile(tt.path); got != tt.want {
				t.Errorf("IsValidFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.btr", "main"},
		{"src/app.btr", "app"},
		{"/abs/dir/tool.btr", "tool"},
		{"archive.tar.btr", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := BaseName(tt.path); got != tt.want {
				t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	if got := OutputBase("", "src/app.btr"); got != "app" {
		t.Errorf("OutputBase without dir = %q, want %q", got, "app")
	}
	want := filepath.Join("build", "app")
	if got := OutputBase("build", "src/app.btr"); got != want {
		t.Errorf("OutputBase = %q, want %q", got, want)
	}
	if got := CSourcePath(want); got != want+".c" {
		t.Errorf("CSourcePath = %q, want %q", got, want+".c")
	}
}

func TestHasSourceExt(t *testing.T) {
	for path, want := range map[string]bool{"a.btr": true, "A.BTR": true, "a.c": false, "btr": false} {
		if got := HasSourceExt(path); got != want {
			t.Errorf("HasSourceExt(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "out.c")
	if err := WriteFile(target, []byte("int x;\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "int x;\n" {
		t.Errorf("unexpected content %q", data)
	}
}
