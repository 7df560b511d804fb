package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butter/colors"
	"butter/internal/testutil"
)

func TestAppCommands(t *testing.T) {
	app := newApp()
	for _, name := range []string{"build", "emit", "init", "watch", "version"} {
		assert.NotNil(t, app.Command(name), "missing command %q", name)
	}
}

func TestFileArgumentBuilds(t *testing.T) {
	restore := colors.SetOutput(&bytes.Buffer{})
	defer restore()

	dir := t.TempDir()
	testutil.CreateTestFileInDir(t, dir, "sum.btr", "func sum(a: int, b: int) -> int { return a + b; }")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, newApp().Run([]string{"butter", "--no-native", "sum.btr"}))
	assert.FileExists(t, filepath.Join(dir, "sum.c"))
}
