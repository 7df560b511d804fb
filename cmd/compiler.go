package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-stack/stack"
	"golang.org/x/sync/errgroup"

	"butter/colors"
	"butter/config"
	"butter/internal/backend"
	"butter/internal/backend/native"
	"butter/internal/ctx"
	"butter/internal/frontend/ast"
	"butter/internal/frontend/parser"
	"butter/internal/semantic/lint"
	"butter/internal/utils"
)

var ErrSyntax = errors.New("compilation stopped due to syntax errors")

// Options configures a compilation pass.
type Options struct {
	Debug bool
	// EmitOnly prints the generated C to Stdout instead of writing files.
	EmitOnly bool
	Stdout   io.Writer
	// Toolchain builds the executable; nil stops after <base>.c is written.
	Toolchain native.Toolchain
}

// ToolchainFor returns the native compiler configured for conf, or nil when
// native compilation is disabled.
func ToolchainFor(conf *config.ProjectConfig) native.Toolchain {
	if !conf.Native.Enabled {
		return nil
	}
	return native.NewCC(conf.Native.CC, conf.Native.Flags...)
}

// Pass is the outcome of compiling one file. Console output of the pass is
// buffered in the pass until Print, so parallel passes do not interleave.
type Pass struct {
	File    string
	Context *ctx.CompilerContext
	Result  *backend.Result
	Err     error

	log strings.Builder
}

func (p *Pass) logf(c colors.COLOR, format string, a ...any) {
	p.log.WriteString(c.Sprintf(format, a...))
}

func (p *Pass) phase(name string) {
	if p.Context.Debug {
		p.logf(colors.BLUE, "---------- [%s done] ----------\n", name)
	}
}

// Print writes the pass log, its diagnostics and its status.
func (p *Pass) Print() {
	colors.Plain(p.log.String())
	if p.Context != nil {
		p.Context.Reports.DisplayAll()
		if p.Context.Debug && p.Context.Reports.Len() > 0 {
			p.Context.Reports.WriteSummary(colors.Output)
		}
	}
	if p.Err != nil {
		colors.RED.Printf("❌ %s: %v\n", p.File, p.Err)
		return
	}
	if p.Context != nil {
		p.Context.Reports.ShowStatus()
	}
	if p.Result != nil {
		colors.GREEN.Printf("✅ Wrote %s\n", p.Result.SourcePath)
		if p.Result.Executable != "" {
			colors.GREEN.Printf("✅ Built %s\n", p.Result.Executable)
		}
	}
}

// Compile runs one pass over filePath: parse, lint, generate C, write
// <base>.c and build <base>. Panics inside the pass are recovered and
// returned as the pass error.
func Compile(runCtx context.Context, filePath string, conf *config.ProjectConfig, opts Options) (pass *Pass) {
	pass = &Pass{File: filePath}
	pass.Context = ctx.NewCompilerContext(filePath, conf, opts.Debug)

	defer func() {
		if r := recover(); r != nil {
			pass.logf(colors.ORANGE, "PANIC occurred: %v\n", r)
			pass.logf(colors.ORANGE, "Stack trace:\n")
			for _, call := range stack.Trace().TrimRuntime() {
				pass.logf(colors.GREY, "    %+v (%n)\n", call, call)
			}
			pass.Err = fmt.Errorf("internal compiler error: %v", r)
		}
	}()

	src, err := os.ReadFile(filePath)
	if err != nil {
		pass.Err = fmt.Errorf("failed to read file '%s': %w", filePath, err)
		return pass
	}

	program := parser.New(pass.Context.EntryPath, src, &pass.Context.Reports).Parse()
	if pass.Context.Reports.HasErrors() {
		pass.Err = ErrSyntax
		return pass
	}
	pass.phase("Parsing")

	if opts.Debug {
		pass.log.WriteString(dumpAST(program))
	}

	warnings := lint.Run(program, &pass.Context.Reports)
	if opts.Debug && warnings > 0 {
		pass.logf(colors.YELLOW, "%d lint %s\n", warnings, utils.Plural(warnings, "warning", "warnings"))
	}
	pass.phase("Linting")

	if opts.EmitOnly {
		out := utils.Ternary[io.Writer](opts.Stdout != nil, opts.Stdout, os.Stdout)
		_, pass.Err = io.WriteString(out, backend.Generate(program))
		return pass
	}

	pass.Result, pass.Err = backend.Transpile(runCtx, program, pass.Context.OutputBase(), backend.Options{Toolchain: opts.Toolchain})
	if pass.Err == nil {
		pass.phase("Code generation")
	}
	return pass
}

// CompileAll compiles every file, at most jobs at a time. Each pass is
// independent; one failing pass does not stop the others. Results are
// printed as passes finish.
func CompileAll(runCtx context.Context, files []string, conf *config.ProjectConfig, opts Options, jobs int) ([]*Pass, error) {
	passes := make([]*Pass, len(files))

	var (
		g      errgroup.Group
		mu     sync.Mutex
		failed int
	)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, file := range files {
		g.Go(func() error {
			pass := Compile(runCtx, file, conf, opts)
			passes[i] = pass

			mu.Lock()
			defer mu.Unlock()
			pass.Print()
			if pass.Err != nil {
				failed++
			}
			return nil
		})
	}
	g.Wait()

	if failed > 0 {
		return passes, fmt.Errorf("%d of %d %s failed to compile", failed, len(files), utils.Plural(len(files), "file", "files"))
	}
	return passes, nil
}

var astDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dumpAST(program *ast.Program) string {
	return colors.GREY.Sprint(astDumper.Sdump(program))
}
