package cgen

import (
	"strings"

	"butter/internal/frontend/ast"
)

const (
	// StructPlaceholder replaces struct declarations.
	StructPlaceholder = "/* TODO struct decl */"
	// NestedFuncPlaceholder replaces function declarations below top level.
	NestedFuncPlaceholder = "/* nested func? TODO */"

	indentStr = "    "
)

// stmtEmitter appends fully indented, newline terminated C statements.
type stmtEmitter struct {
	out   *strings.Builder
	depth int
	exprs *exprEmitter
}

func newStmtEmitter(out *strings.Builder, depth int) *stmtEmitter {
	return &stmtEmitter{
		out:   out,
		depth: depth,
		exprs: &exprEmitter{out: out},
	}
}

func (s *stmtEmitter) nested() *stmtEmitter {
	return &stmtEmitter{out: s.out, depth: s.depth + 1, exprs: s.exprs}
}

func (s *stmtEmitter) writeIndent() {
	for range s.depth {
		s.out.WriteString(indentStr)
	}
}

func (s *stmtEmitter) line(text string) {
	s.writeIndent()
	s.out.WriteString(text)
	s.out.WriteByte('\n')
}

func (s *stmtEmitter) emit(stmt ast.Statement) {
	stmt.Accept(s)
}

// emitBlock writes the statements of b one level deeper than s.
func (s *stmtEmitter) emitBlock(b *ast.Block) {
	if b == nil {
		return
	}
	inner := s.nested()
	for _, stmt := range b.Stmts {
		inner.emit(stmt)
	}
}

// Locals are always declared int64_t; the declared type and the initializer
// type are ignored.
func (s *stmtEmitter) VisitLet(n *ast.LetStmt) {
	s.writeIndent()
	s.out.WriteString("int64_t ")
	s.out.WriteString(n.Name)
	if n.Value != nil {
		s.out.WriteString(" = ")
		s.exprs.emit(n.Value)
	}
	s.out.WriteString(";\n")
}

func (s *stmtEmitter) VisitExpressionStmt(n *ast.ExpressionStmt) {
	s.writeIndent()
	s.exprs.emit(n.X)
	s.out.WriteString(";\n")
}

func (s *stmtEmitter) VisitReturn(n *ast.ReturnStmt) {
	s.writeIndent()
	s.out.WriteString("return")
	if n.Value != nil {
		s.out.WriteByte(' ')
		s.exprs.emit(n.Value)
	}
	s.out.WriteString(";\n")
}

func (s *stmtEmitter) VisitWhile(n *ast.WhileStmt) {
	s.writeIndent()
	s.out.WriteString("while (")
	s.exprs.emit(n.Cond)
	s.out.WriteString(") {\n")
	s.emitBlock(n.Body)
	s.line("}")
}

func (s *stmtEmitter) VisitIf(n *ast.IfStmt) {
	s.writeIndent()
	s.emitIfChain(n)
}

// emitIfChain writes an if statement starting at the current column. An
// `else if` continues on the closing-brace line at the same depth, so chains
// of any length stay flat.
func (s *stmtEmitter) emitIfChain(n *ast.IfStmt) {
	s.out.WriteString("if (")
	s.exprs.emit(n.Cond)
	s.out.WriteString(") {\n")
	s.emitBlock(n.Then)
	s.writeIndent()
	s.out.WriteByte('}')

	switch branch := n.Else.(type) {
	case *ast.Block:
		s.out.WriteString(" else {\n")
		s.emitBlock(branch)
		s.line("}")
	case *ast.IfStmt:
		s.out.WriteString(" else ")
		s.emitIfChain(branch)
	default:
		s.out.WriteByte('\n')
	}
}

func (s *stmtEmitter) VisitBlock(n *ast.BlockStmt) {
	s.line("{")
	s.emitBlock(n.Body)
	s.line("}")
}

func (s *stmtEmitter) VisitStruct(n *ast.StructDecl) {
	s.line(StructPlaceholder)
}

func (s *stmtEmitter) VisitOut(n *ast.OutStmt) {
	s.line("break;")
}

func (s *stmtEmitter) VisitSkip(n *ast.SkipStmt) {
	s.line("continue;")
}

// Functions are only lowered at top level, see Generator.EmitFunction.
func (s *stmtEmitter) VisitFunc(n *ast.FuncDecl) {
	s.line(NestedFuncPlaceholder)
}
