// Package lint reports source constructs that the C backend cannot lower
// faithfully. It only reads the tree; the generated C is the same whether or
// not lint runs.
package lint

import (
	"fmt"

	"butter/internal/backend/cgen"
	"butter/internal/frontend/ast"
	"butter/internal/utils/stack"
	"butter/report"
)

type scope int

const (
	funcScope scope = iota
	loopScope
	blockScope
)

type linter struct {
	filePath string
	reports  *report.Reports
	scopes   *stack.Stack[scope]
	warnings int
}

// Run lints program and returns the number of warnings it added to reports.
func Run(program *ast.Program, reports *report.Reports) int {
	l := &linter{
		filePath: program.FullPath,
		reports:  reports,
		scopes:   stack.New[scope](),
	}

	for _, stmt := range program.Stmts {
		fn, ok := stmt.(*ast.FuncDecl)
		if !ok {
			l.warn(stmt, report.TOP_LEVEL_NOT_EMITTED)
			continue
		}
		l.scopes.Push(funcScope)
		l.block(fn.Body)
		l.scopes.Pop()
	}

	return l.warnings
}

func (l *linter) warn(node ast.Node, msg string) *report.Report {
	l.warnings++
	return l.reports.AddWarning(l.filePath, *node.Loc(), msg, report.LINT_PHASE)
}

func (l *linter) inLoop() bool {
	loop := l.scopes.Search(func(s scope) bool { return s == loopScope })
	fn := l.scopes.Search(func(s scope) bool { return s == funcScope })
	return loop >= 0 && (fn < 0 || loop < fn)
}

func (l *linter) block(b *ast.Block) {
	if b == nil {
		return
	}
	for _, stmt := range b.Stmts {
		stmt.Accept(l)
	}
}

func (l *linter) scoped(s scope, b *ast.Block) {
	l.scopes.Push(s)
	l.block(b)
	l.scopes.Pop()
}

// expr checks every subexpression of e. Unsupported expressions are
// replaced wholesale by a placeholder, so their children are not visited.
func (l *linter) expr(e ast.Expression) {
	if e == nil {
		return
	}
	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.IndexExpr, *ast.StructLiteral, *ast.FieldAccessExpr:
			l.warn(n, report.UNSUPPORTED_EXPRESSION).AddHint("emitted as " + cgen.ExprPlaceholder)
			return false
		case *ast.StringLiteral:
			if needsEscaping(n.Value) {
				l.warn(n, report.STRING_NEEDS_ESCAPING)
			}
		}
		return true
	})
}

func (l *linter) VisitLet(n *ast.LetStmt)                   { l.expr(n.Value) }
func (l *linter) VisitExpressionStmt(n *ast.ExpressionStmt) { l.expr(n.X) }
func (l *linter) VisitReturn(n *ast.ReturnStmt)             { l.expr(n.Value) }

func (l *linter) VisitWhile(n *ast.WhileStmt) {
	l.expr(n.Cond)
	l.scoped(loopScope, n.Body)
}

func (l *linter) VisitIf(n *ast.IfStmt) {
	l.expr(n.Cond)
	l.scoped(blockScope, n.Then)
	switch e := n.Else.(type) {
	case *ast.Block:
		l.scoped(blockScope, e)
	case *ast.IfStmt:
		l.VisitIf(e)
	}
}

func (l *linter) VisitBlock(n *ast.BlockStmt) {
	l.scoped(blockScope, n.Body)
}

func (l *linter) VisitStruct(n *ast.StructDecl) {
	l.warn(n, report.UNSUPPORTED_STRUCT).AddHint("emitted as " + cgen.StructPlaceholder)
}

func (l *linter) VisitOut(n *ast.OutStmt) {
	if !l.inLoop() {
		l.warn(n, fmt.Sprintf(report.LOOP_CONTROL_OUTSIDE, "out"))
	}
}

func (l *linter) VisitSkip(n *ast.SkipStmt) {
	if !l.inLoop() {
		l.warn(n, fmt.Sprintf(report.LOOP_CONTROL_OUTSIDE, "skip"))
	}
}

// nested functions are not emitted, so their bodies are not linted either
func (l *linter) VisitFunc(n *ast.FuncDecl) {
	l.warn(n, report.NESTED_FUNCTION).AddHint("emitted as " + cgen.NestedFuncPlaceholder)
}

// needsEscaping reports whether s changes meaning when written between
// quotes in C without escaping.
func needsEscaping(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' || c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}
