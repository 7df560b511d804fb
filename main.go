package main

import (
	"os"

	"gopkg.in/urfave/cli.v1"

	commands "butter/cmd/cli"
	"butter/cmd/flags"
	"butter/colors"
	"butter/constants"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "butter"
	app.Usage = "compile butter programs to C and native executables"
	app.Version = constants.BUTTER_VERSION
	app.HideVersion = true
	app.Flags = flags.GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "Compile files (or the project entry) to <name>.c and an executable",
			ArgsUsage: "[files...]",
			Flags:     flags.BuildFlags,
			Action:    flags.MigrateFlags(commands.HandleBuildCommand),
		},
		{
			Name:      "emit",
			Usage:     "Print the generated C for a file without writing anything",
			ArgsUsage: "<file>",
			Flags:     flags.BuildFlags,
			Action:    flags.MigrateFlags(commands.HandleEmitCommand),
		},
		{
			Name:      "init",
			Usage:     "Create " + constants.CONFIG_FILE + " and a starter entry file",
			ArgsUsage: "[path]",
			Action:    commands.HandleInitCommand,
		},
		{
			Name:      "watch",
			Usage:     "Rebuild a file every time it changes",
			ArgsUsage: "<file>",
			Flags:     flags.BuildFlags,
			Action:    flags.MigrateFlags(commands.HandleWatchCommand),
		},
		{
			Name:   "version",
			Usage:  "Print the compiler version",
			Action: commands.HandleVersionCommand,
		},
	}
	// `butter main.btr` is shorthand for `butter build main.btr`
	app.Action = func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return cli.ShowAppHelp(ctx)
		}
		return commands.HandleBuildCommand(ctx)
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		colors.RED.Println(err)
		os.Exit(1)
	}
}
