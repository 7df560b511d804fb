package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rjeczalik/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"butter/cmd/flags"
	"butter/colors"
	"butter/constants"
	"butter/internal/testutil"
)

// run executes a throwaway app wired like main's, from dir.
func run(t *testing.T, dir string, argv ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	restore := colors.SetOutput(&buf)
	defer restore()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	app := cli.NewApp()
	app.Name = "butter"
	app.Flags = flags.GlobalFlags
	app.Commands = []cli.Command{
		{Name: "build", Flags: flags.BuildFlags, Action: flags.MigrateFlags(HandleBuildCommand)},
		{Name: "init", Action: HandleInitCommand},
		{Name: "version", Action: HandleVersionCommand},
	}
	err = app.Run(append([]string{"butter"}, argv...))
	return buf.String(), err
}

func TestInitCreatesProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")

	out, err := run(t, t.TempDir(), "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	assert.FileExists(t, filepath.Join(dir, constants.CONFIG_FILE))
	assert.FileExists(t, filepath.Join(dir, "main.btr"))

	_, err = run(t, t.TempDir(), "init", dir)
	assert.Error(t, err, "second init must not overwrite")
}

func TestBuildProjectEntry(t *testing.T) {
	root := testutil.CreateTempProject(t)
	testutil.CreateTestFileInDir(t, root, "main.btr", "func main() -> int { return 0; }")

	out, err := run(t, root, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(root, "build", "demo.c")), "int64_t main() {\n    return 0;\n}\n")
}

func TestBuildStandaloneFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateTestFileInDir(t, dir, "a.btr", "func a() {}")
	testutil.CreateTestFileInDir(t, dir, "b.btr", "func b() {}")

	_, err := run(t, dir, "build", "--no-native", "--out-dir", "gen", "--jobs", "2", "a.btr", "b.btr")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "gen", "a.c"))
	assert.FileExists(t, filepath.Join(dir, "gen", "b.c"))
}

func TestBuildStandaloneWritesNextToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateTestFileInDir(t, dir, "calc.btr", "func calc() {}")

	_, err := run(t, dir, "--no-native", "build", "calc.btr")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "calc.c"))
}

func TestBuildFailures(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateTestFileInDir(t, dir, "bad.btr", "func bad( {")

	_, err := run(t, dir, "build", "--no-native", "bad.btr")
	assert.Error(t, err)

	_, err = run(t, dir, "build", "--no-native", "missing.btr")
	require.Error(t, err)

	_, err = run(t, t.TempDir(), "build")
	assert.EqualError(t, err, NO_INPUT_ERROR)
}

func TestBuildRejectsNewerProjectVersion(t *testing.T) {
	root := t.TempDir()
	testutil.CreateTestFileInDir(t, root, constants.CONFIG_FILE, "[default]\nname = \"demo\"\n\n[compiler]\nversion = \"99.0.0\"\n")
	testutil.CreateTestFileInDir(t, root, "main.btr", "func main() {}")

	_, err := run(t, root, "build", "--no-native")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99.0.0")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "butter "+constants.BUTTER_VERSION+"\n", out)
}

type fakeEvent struct{ path string }

func (e fakeEvent) Event() notify.Event { return notify.Write }
func (e fakeEvent) Path() string        { return e.path }
func (e fakeEvent) Sys() interface{}    { return nil }

func TestWatchLoopRebuildsOnChange(t *testing.T) {
	restore := colors.SetOutput(&bytes.Buffer{})
	defer restore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	file := filepath.Join(t.TempDir(), "main.btr")
	events := make(chan notify.EventInfo, 8)
	rebuilt := make(chan struct{}, 8)
	var count atomic.Int32

	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, file, events, 10*time.Millisecond, func() {
			count.Add(1)
			rebuilt <- struct{}{}
		})
	}()

	waitRebuild := func() {
		t.Helper()
		select {
		case <-rebuilt:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for rebuild")
		}
	}

	waitRebuild() // initial build

	// a burst of writes settles into one rebuild; other files are ignored
	events <- fakeEvent{filepath.Join(filepath.Dir(file), "other.btr")}
	events <- fakeEvent{file}
	events <- fakeEvent{file}
	waitRebuild()

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(2), count.Load())
}
