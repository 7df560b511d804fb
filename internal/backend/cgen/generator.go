// Package cgen lowers a parsed BUTTER program to C source text.
package cgen

import (
	"strings"

	"butter/internal/frontend/ast"
)

// Preamble is written once at the top of every generated file.
const Preamble = "#include <stdint.h>\n" +
	"#include <stdbool.h>\n" +
	"#include <stdio.h>\n\n"

// Generator accumulates the C translation of one program. A Generator owns its
// buffer; create a new one for every pass.
type Generator struct {
	buf strings.Builder
}

// New creates a new C code generator
func New() *Generator {
	return &Generator{}
}

// Generate returns the complete C translation unit for program: the preamble
// followed by one definition per top-level function, in declaration order.
// Other top-level statements are not emitted.
func (g *Generator) Generate(program *ast.Program) string {
	g.buf.Reset()
	g.buf.WriteString(Preamble)

	for _, stmt := range program.Stmts {
		if fn, ok := stmt.(*ast.FuncDecl); ok {
			g.EmitFunction(fn)
		}
	}

	return g.buf.String()
}

// EmitFunction appends the definition of fn followed by a blank line.
func (g *Generator) EmitFunction(fn *ast.FuncDecl) {
	g.buf.WriteString(TypeToC(fn.ReturnType))
	g.buf.WriteByte(' ')
	g.buf.WriteString(fn.Name)
	g.buf.WriteByte('(')

	for i, param := range fn.Params {
		if i > 0 {
			g.buf.WriteString(", ")
		}
		g.buf.WriteString(TypeToC(param.Type))
		g.buf.WriteByte(' ')
		g.buf.WriteString(param.Name)
	}

	g.buf.WriteString(") {\n")
	newStmtEmitter(&g.buf, 0).emitBlock(fn.Body)
	g.buf.WriteString("}\n\n")
}

// String returns everything emitted so far.
func (g *Generator) String() string {
	return g.buf.String()
}

// ExprString renders a single expression.
func ExprString(expr ast.Expression) string {
	var out strings.Builder
	(&exprEmitter{out: &out}).emit(expr)
	return out.String()
}

// StmtString renders a single statement at the given depth.
func StmtString(stmt ast.Statement, depth int) string {
	var out strings.Builder
	newStmtEmitter(&out, depth).emit(stmt)
	return out.String()
}
