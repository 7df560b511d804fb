package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"butter/config"
)

// parse runs a throwaway app with a "build" command and returns what the
// command handler saw.
func parse(t *testing.T, argv ...string) *Args {
	t.Helper()
	var got *Args

	app := cli.NewApp()
	app.Name = "butter"
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Flags: BuildFlags,
			Action: MigrateFlags(func(ctx *cli.Context) error {
				got = ParseArgs(ctx)
				return nil
			}),
		},
	}

	require.NoError(t, app.Run(append([]string{"butter"}, argv...)))
	require.NotNil(t, got)
	return got
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Args
	}{
		{
			name: "defaults",
			argv: []string{"build", "main.btr"},
			want: Args{Files: []string{"main.btr"}},
		},
		{
			name: "global flags",
			argv: []string{"--debug", "--no-color", "--cc", "clang", "build", "a.btr", "b.btr"},
			want: Args{Files: []string{"a.btr", "b.btr"}, Debug: true, NoColor: true, CC: "clang"},
		},
		{
			name: "command flags",
			argv: []string{"build", "--out-dir", "bin", "--no-native", "--jobs", "3", "--config", "x.toml", "main.btr"},
			want: Args{Files: []string{"main.btr"}, OutDir: "bin", NoNative: true, Jobs: 3, ConfigPath: "x.toml"},
		},
		{
			name: "command flag overrides global",
			argv: []string{"--cc", "gcc", "build", "--cc", "tcc", "main.btr"},
			want: Args{Files: []string{"main.btr"}, CC: "tcc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse(t, tt.argv...)
			assert.Equal(t, tt.want.Files, got.Files)
			got.Files = tt.want.Files
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestApply(t *testing.T) {
	conf := config.Default("demo")
	(&Args{}).Apply(conf)
	assert.Equal(t, config.Default("demo"), conf, "empty args change nothing")

	(&Args{OutDir: "out", CC: "clang", NoNative: true, Jobs: 4}).Apply(conf)
	assert.Equal(t, "out", conf.Build.OutDir)
	assert.Equal(t, "clang", conf.Native.CC)
	assert.False(t, conf.Native.Enabled)
	assert.Equal(t, 4, conf.Build.Jobs)
}
