package ctx

import (
	"path/filepath"

	"butter/config"
	"butter/internal/utils/fs"
	"butter/report"
)

// CompilerContext is the state of one compilation pass. Passes never share a
// context, so nothing here is synchronized.
type CompilerContext struct {
	EntryPath string // source file being compiled, slash separated
	Reports   report.Reports
	Config    *config.ProjectConfig
	Debug     bool
}

func NewCompilerContext(entryPath string, conf *config.ProjectConfig, debug bool) *CompilerContext {
	if conf == nil {
		panic("Cannot create compiler context: project configuration is nil")
	}
	return &CompilerContext{
		EntryPath: filepath.ToSlash(entryPath),
		Config:    conf,
		Debug:     debug,
	}
}

// IsEntry reports whether this pass compiles the project's configured entry.
func (c *CompilerContext) IsEntry() bool {
	if c.Config.Build.Entry == "" || c.Config.ProjectRoot == "" {
		return false
	}
	entry, err := filepath.Abs(filepath.Join(c.Config.ProjectRoot, c.Config.Build.Entry))
	if err != nil {
		return false
	}
	path, err := filepath.Abs(filepath.FromSlash(c.EntryPath))
	return err == nil && path == entry
}

// OutputBase is the path of the generated files without extension:
// <out_dir>/<output> for the project entry, <out_dir>/<file stem> otherwise.
func (c *CompilerContext) OutputBase() string {
	name := fs.BaseName(c.EntryPath)
	if c.IsEntry() && c.Config.Build.Output != "" {
		name = c.Config.Build.Output
	}
	if dir := c.Config.OutputDir(); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}
