package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/urfave/cli.v1"

	"butter/cmd"
	"butter/cmd/flags"
	"butter/colors"
	"butter/config"
	"butter/constants"
	"butter/internal/utils/fs"
)

const (
	CONFIG_LOAD_ERROR = "⚠️  Error loading project configuration: %w"
	NO_INPUT_ERROR    = "no input file: pass a " + constants.EXT + " file or run inside a project with an entry in " + constants.CONFIG_FILE
)

const helloSource = `func main() -> int {
    let mut i = 0;
    while i < 3 {
        i += 1;
    }
    return 0;
}
`

func setup(args *flags.Args) {
	if args.NoColor {
		colors.SetEnabled(false)
	}
	if args.Debug {
		colors.BLUE.Println("Debug mode enabled")
	}
}

// loadConfig resolves the configuration for a run: an explicit --config,
// else the butter.toml above the first input (or the working directory),
// else defaults for a standalone file. Command line flags are applied last.
func loadConfig(args *flags.Args) (*config.ProjectConfig, error) {
	var (
		conf *config.ProjectConfig
		err  error
	)

	switch {
	case args.ConfigPath != "":
		conf, err = config.LoadFile(args.ConfigPath)
	default:
		from := "."
		if len(args.Files) > 0 {
			from = filepath.Dir(args.Files[0])
		}
		root, findErr := config.FindProjectRoot(filepath.Join(from, constants.CONFIG_FILE))
		if findErr != nil {
			if len(args.Files) == 0 {
				return nil, errors.New(NO_INPUT_ERROR)
			}
			conf = config.Default(fs.BaseName(args.Files[0]))
			conf.Build.OutDir = ""
			break
		}
		conf, err = config.LoadProjectConfig(root)
	}
	if err != nil {
		return nil, fmt.Errorf(CONFIG_LOAD_ERROR, err)
	}

	args.Apply(conf)

	if conf.ProjectRoot != "" {
		if err := config.ValidateProjectConfig(conf); err != nil {
			return nil, err
		}
	}
	if err := cmd.CheckCompilerVersion(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// inputFiles returns the files named on the command line, or the project's
// entry when none were given.
func inputFiles(args *flags.Args, conf *config.ProjectConfig) ([]string, error) {
	files := args.Files
	if len(files) == 0 {
		if conf.ProjectRoot == "" || conf.Build.Entry == "" {
			return nil, errors.New(NO_INPUT_ERROR)
		}
		files = []string{filepath.Join(conf.ProjectRoot, conf.Build.Entry)}
	}

	for _, file := range files {
		if !fs.HasSourceExt(file) {
			colors.YELLOW.Printf("⚠️  %s does not have the %s extension\n", file, constants.EXT)
		}
	}
	return files, nil
}

// HandleBuildCommand handles "butter build [files...]"
func HandleBuildCommand(ctx *cli.Context) error {
	args := flags.ParseArgs(ctx)
	setup(args)

	conf, err := loadConfig(args)
	if err != nil {
		return err
	}
	files, err := inputFiles(args, conf)
	if err != nil {
		return err
	}

	opts := cmd.Options{Debug: args.Debug, Toolchain: cmd.ToolchainFor(conf)}
	_, err = cmd.CompileAll(context.Background(), files, conf, opts, conf.JobCount())
	return err
}

// HandleEmitCommand handles "butter emit <file>": the generated C goes to
// stdout and nothing is written to disk.
func HandleEmitCommand(ctx *cli.Context) error {
	args := flags.ParseArgs(ctx)
	setup(args)

	if len(args.Files) > 1 {
		return fmt.Errorf("emit takes a single file, got %d", len(args.Files))
	}

	conf, err := loadConfig(args)
	if err != nil {
		return err
	}
	files, err := inputFiles(args, conf)
	if err != nil {
		return err
	}

	// diagnostics go to stderr so stdout stays valid C
	restore := colors.SetOutput(os.Stderr)
	defer restore()

	pass := cmd.Compile(context.Background(), files[0], conf, cmd.Options{Debug: args.Debug, EmitOnly: true, Stdout: os.Stdout})
	pass.Context.Reports.DisplayAll()
	return pass.Err
}

// HandleInitCommand handles "butter init [path]"
func HandleInitCommand(ctx *cli.Context) error {
	setup(flags.ParseArgs(ctx))

	dir := "."
	if ctx.NArg() > 0 {
		dir = ctx.Args().First()
	}

	conf, err := config.CreateDefaultProjectConfig(dir, "")
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize project configuration: %w", err)
	}
	colors.GREEN.Printf("📁 Created %s successfully!\n", filepath.Join(conf.ProjectRoot, constants.CONFIG_FILE))

	entry := filepath.Join(conf.ProjectRoot, conf.Build.Entry)
	if !fs.IsValidFile(entry) {
		if err := fs.WriteFile(entry, []byte(helloSource)); err != nil {
			return err
		}
		colors.GREEN.Printf("📄 Created %s\n", entry)
	}
	return nil
}

// HandleVersionCommand handles "butter version"
func HandleVersionCommand(ctx *cli.Context) error {
	colors.Plainf("butter %s\n", constants.BUTTER_VERSION)
	return nil
}
