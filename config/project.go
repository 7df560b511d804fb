package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/naoina/toml"

	"butter/constants"
)

// ProjectConfig is the decoded butter.toml of a project.
type ProjectConfig struct {
	Default  DefaultConfig  `toml:"default"`
	Compiler CompilerConfig `toml:"compiler"`
	Build    BuildConfig    `toml:"build"`
	Native   NativeConfig   `toml:"native"`

	// Directory holding butter.toml; not stored in the file.
	ProjectRoot string `toml:"-"`
}

type DefaultConfig struct {
	Name string `toml:"name"`
}

// CompilerConfig contains compiler-specific settings
type CompilerConfig struct {
	Version string `toml:"version"` // minimum compiler version
}

// BuildConfig defines build settings
type BuildConfig struct {
	Entry  string `toml:"entry"`   // entrypoint file
	Output string `toml:"output"`  // base name of the generated files
	OutDir string `toml:"out_dir"` // where <output>.c and the executable go
	Jobs   int    `toml:"jobs"`    // parallel builds, 0 means one per CPU
}

// NativeConfig controls the C compiler run on the generated source.
type NativeConfig struct {
	Enabled bool     `toml:"enabled"`
	CC      string   `toml:"cc"`
	Flags   []string `toml:"flags"`
}

// tomlSettings rejects keys that no field accepts, so typos in butter.toml
// surface instead of being ignored.
var tomlSettings = toml.Config{
	NormFieldName: toml.DefaultConfig.NormFieldName,
	FieldToKey:    toml.DefaultConfig.FieldToKey,
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, sectionName(rt))
	},
}

func sectionName(rt reflect.Type) string {
	switch rt {
	case reflect.TypeOf(ProjectConfig{}):
		return "the top level"
	case reflect.TypeOf(DefaultConfig{}):
		return "[default]"
	case reflect.TypeOf(CompilerConfig{}):
		return "[compiler]"
	case reflect.TypeOf(BuildConfig{}):
		return "[build]"
	case reflect.TypeOf(NativeConfig{}):
		return "[native]"
	}
	return rt.String()
}

// Default returns the configuration written by `butter init`.
func Default(projectName string) *ProjectConfig {
	return &ProjectConfig{
		Default:  DefaultConfig{Name: projectName},
		Compiler: CompilerConfig{Version: constants.BUTTER_VERSION},
		Build: BuildConfig{
			Entry:  "main" + constants.EXT,
			Output: projectName,
			OutDir: "build",
		},
		Native: NativeConfig{
			Enabled: true,
			CC:      constants.DEFAULT_CC,
			Flags:   []string{},
		},
	}
}

// Name is the project name from the [default] section.
func (conf *ProjectConfig) Name() string {
	return conf.Default.Name
}

// JobCount resolves Build.Jobs, where zero or less means one job per CPU.
func (conf *ProjectConfig) JobCount() int {
	if conf.Build.Jobs > 0 {
		return conf.Build.Jobs
	}
	return runtime.NumCPU()
}

// OutputDir resolves Build.OutDir against the project root.
func (conf *ProjectConfig) OutputDir() string {
	if conf.Build.OutDir == "" || filepath.IsAbs(conf.Build.OutDir) || conf.ProjectRoot == "" {
		return conf.Build.OutDir
	}
	return filepath.Join(conf.ProjectRoot, conf.Build.OutDir)
}

// Encode renders the configuration as TOML.
func (conf *ProjectConfig) Encode() ([]byte, error) {
	return tomlSettings.Marshal(conf)
}

// Save writes the configuration to butter.toml in its project root.
func (conf *ProjectConfig) Save() error {
	out, err := conf.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	path := filepath.Join(conf.ProjectRoot, constants.CONFIG_FILE)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// CreateDefaultProjectConfig writes a default butter.toml into dir. It
// refuses to overwrite an existing file.
func CreateDefaultProjectConfig(dir, projectName string) (*ProjectConfig, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if projectName == "" {
		projectName = filepath.Base(dir)
	}
	if err := ValidateProjectName(projectName); err != nil {
		return nil, err
	}
	if IsProjectRoot(dir) {
		return nil, fmt.Errorf("%s already exists in %s", constants.CONFIG_FILE, dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	conf := Default(projectName)
	conf.ProjectRoot = dir
	if err := conf.Save(); err != nil {
		return nil, err
	}
	return conf, nil
}

// ValidateProjectName rejects names that cannot be used as a file name.
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.New("project name must not be empty")
	}
	//must not contain spaces or special characters in the middle
	if strings.ContainsAny(name, " \t\n\r") || strings.ContainsAny(name, "!@#$%^&*()+=[]{}|;:'\",.<>?/\\") {
		return fmt.Errorf("project name %q must not contain spaces or special characters", name)
	}
	return nil
}

func ValidateProjectConfig(config *ProjectConfig) error {
	if config == nil {
		return errors.New("project configuration is nil")
	}

	if config.Name() == "" {
		return errors.New("project name is required in the configuration file")
	}

	if config.Build.Entry == "" {
		return errors.New("build entry point is required in the configuration file")
	}

	if config.Build.Jobs < 0 {
		return fmt.Errorf("build jobs must not be negative, got %d", config.Build.Jobs)
	}

	if config.Native.Enabled && config.Native.CC == "" {
		return errors.New("native compiler (cc) is required when native compilation is enabled")
	}

	if config.ProjectRoot == "" {
		return errors.New("project root is required in the configuration file")
	}

	return nil
}

// IsProjectRoot checks if the given directory contains a butter.toml file
func IsProjectRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, constants.CONFIG_FILE))
	return err == nil
}

// Decode parses butter.toml contents over the defaults, so keys missing
// from the file keep their default values.
func Decode(data []byte, projectRoot string) (*ProjectConfig, error) {
	conf := Default("")
	if err := tomlSettings.NewDecoder(bufio.NewReader(bytes.NewReader(data))).Decode(conf); err != nil {
		return nil, err
	}
	conf.ProjectRoot = projectRoot
	if conf.Build.Output == "" {
		conf.Build.Output = conf.Name()
	}
	return conf, nil
}

func LoadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path of project root: %w", err)
	}
	return LoadFile(filepath.Join(projectRoot, constants.CONFIG_FILE))
}

// LoadFile reads an explicit configuration file. Its directory becomes the
// project root.
func LoadFile(path string) (*ProjectConfig, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file %s not found, create one with 'butter init'", path)
		}
		return nil, err
	}

	conf, err := Decode(data, filepath.Dir(path))
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(path + ", " + err.Error())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return conf, nil
}

// FindProjectRoot walks up from filePath's directory to the first directory
// holding butter.toml.
func FindProjectRoot(filePath string) (string, error) {
	filePath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of entry: %w", err)
	}

	dir := filepath.Dir(filePath)
	start := dir

	for {
		if IsProjectRoot(dir) {
			return dir, nil
		}

		// Move up to parent directory
		parent := filepath.Dir(dir)

		// Stop if we can't go up further (reached filesystem root)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", fmt.Errorf("%s not found (searched from: %s up to filesystem root)", constants.CONFIG_FILE, start)
}
