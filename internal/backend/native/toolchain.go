// Package native runs the host C compiler over generated sources.
package native

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"butter/constants"
	"butter/internal/utils/fs"
)

// Toolchain turns <base>.c into the executable <base>.
type Toolchain interface {
	Build(ctx context.Context, base string) error
}

// CC invokes a cc-compatible driver as `<Path> [Flags...] <base>.c -o <base>`.
type CC struct {
	Path  string
	Flags []string
}

func NewCC(path string, flags ...string) *CC {
	if path == "" {
		path = constants.DEFAULT_CC
	}
	return &CC{Path: path, Flags: flags}
}

// Args returns the command line for base, without the program name.
func (c *CC) Args(base string) []string {
	args := make([]string, 0, len(c.Flags)+3)
	args = append(args, c.Flags...)
	return append(args, fs.CSourcePath(base), "-o", base)
}

func (c *CC) String() string {
	return c.Path
}

// Build runs the compiler once. A failure carries the tool's combined
// output; it is never retried.
func (c *CC) Build(ctx context.Context, base string) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args(base)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return &BuildError{Tool: c.Path, Base: base, Output: strings.TrimSpace(out.String()), Err: err}
	}
	return nil
}

// BuildError is returned when the native compiler cannot be started or
// exits unsuccessfully.
type BuildError struct {
	Tool   string
	Base   string
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	msg := fmt.Sprintf("%s failed to build %s: %v", e.Tool, e.Base, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
