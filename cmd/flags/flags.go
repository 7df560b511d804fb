package flags

import (
	"gopkg.in/urfave/cli.v1"

	"butter/config"
)

var (
	DebugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "Print compiler phases, the parsed AST and a report summary",
	}
	NoColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file (default: nearest butter.toml)",
	}
	OutDirFlag = cli.StringFlag{
		Name:  "out-dir",
		Usage: "Directory for generated C sources and executables",
	}
	CCFlag = cli.StringFlag{
		Name:  "cc",
		Usage: "C compiler used to build the executable",
	}
	NoNativeFlag = cli.BoolFlag{
		Name:  "no-native",
		Usage: "Only write <name>.c, do not run the C compiler",
	}
	JobsFlag = cli.IntFlag{
		Name:  "jobs",
		Usage: "Number of files compiled in parallel (default: one per CPU)",
	}
)

// GlobalFlags are accepted before any command.
var GlobalFlags = []cli.Flag{
	DebugFlag,
	NoColorFlag,
	ConfigFlag,
	OutDirFlag,
	CCFlag,
	NoNativeFlag,
	JobsFlag,
}

// BuildFlags are accepted after build-like commands as well.
var BuildFlags = []cli.Flag{
	DebugFlag,
	ConfigFlag,
	OutDirFlag,
	CCFlag,
	NoNativeFlag,
	JobsFlag,
}

// Args holds the parsed command line arguments
type Args struct {
	Files      []string
	Debug      bool
	NoColor    bool
	ConfigPath string
	OutDir     string
	CC         string
	NoNative   bool
	Jobs       int
}

// MigrateFlags makes flags given after a command visible as global flags,
// so handlers read one place regardless of where the user put them.
func MigrateFlags(action func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, name := range ctx.FlagNames() {
			if ctx.IsSet(name) {
				ctx.GlobalSet(name, ctx.String(name))
			}
		}
		return action(ctx)
	}
}

func ParseArgs(ctx *cli.Context) *Args {
	return &Args{
		Files:      ctx.Args(),
		Debug:      ctx.GlobalBool(DebugFlag.Name),
		NoColor:    ctx.GlobalBool(NoColorFlag.Name),
		ConfigPath: ctx.GlobalString(ConfigFlag.Name),
		OutDir:     ctx.GlobalString(OutDirFlag.Name),
		CC:         ctx.GlobalString(CCFlag.Name),
		NoNative:   ctx.GlobalBool(NoNativeFlag.Name),
		Jobs:       ctx.GlobalInt(JobsFlag.Name),
	}
}

// Apply overrides conf with the options given on the command line.
func (a *Args) Apply(conf *config.ProjectConfig) {
	if a.OutDir != "" {
		conf.Build.OutDir = a.OutDir
	}
	if a.CC != "" {
		conf.Native.CC = a.CC
	}
	if a.NoNative {
		conf.Native.Enabled = false
	}
	if a.Jobs > 0 {
		conf.Build.Jobs = a.Jobs
	}
}
