package backend

import (
	"context"
	"fmt"

	"butter/internal/backend/cgen"
	"butter/internal/backend/native"
	"butter/internal/frontend/ast"
	"butter/internal/utils/fs"
)

// Options controls what Transpile does after generating C.
type Options struct {
	// Toolchain builds the executable from <base>.c; nil skips that step.
	Toolchain native.Toolchain
}

// Result describes the artifacts of one pass.
type Result struct {
	Source     string // generated C
	SourcePath string // <base>.c
	Executable string // <base>, empty when no toolchain ran
}

// Generate renders program as a C translation unit using a fresh generator.
func Generate(program *ast.Program) string {
	return cgen.New().Generate(program)
}

// Transpile generates C for program, writes it to <base>.c and then asks the
// toolchain to build <base>. A write failure stops the pass before the
// toolchain runs.
func Transpile(ctx context.Context, program *ast.Program, base string, opts Options) (*Result, error) {
	result := &Result{
		Source:     Generate(program),
		SourcePath: fs.CSourcePath(base),
	}

	if err := writeToFile(result.SourcePath, result.Source); err != nil {
		return result, fmt.Errorf("failed to write generated source %s: %w", result.SourcePath, err)
	}

	if opts.Toolchain == nil {
		return result, nil
	}

	if err := opts.Toolchain.Build(ctx, base); err != nil {
		return result, fmt.Errorf("native compilation failed: %w", err)
	}
	result.Executable = base

	return result, nil
}

// writeToFile writes content to a file, creating directories if needed
func writeToFile(filePath, content string) error {
	return fs.WriteFile(filePath, []byte(content))
}
