package cgen

import (
	"strconv"
	"strings"

	"butter/internal/frontend/ast"
)

// ExprPlaceholder replaces expressions that have no C lowering yet.
const ExprPlaceholder = "/* TODO complex expr */"

// exprEmitter appends the C rendering of an expression to out.
type exprEmitter struct {
	out *strings.Builder
}

func (e *exprEmitter) emit(expr ast.Expression) {
	expr.Accept(e)
}

func (e *exprEmitter) VisitIntLiteral(n *ast.IntLiteral) {
	e.out.WriteString(strconv.FormatInt(n.Value, 10))
}

func (e *exprEmitter) VisitFloatLiteral(n *ast.FloatLiteral) {
	e.out.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
}

func (e *exprEmitter) VisitBoolLiteral(n *ast.BoolLiteral) {
	if n.Value {
		e.out.WriteByte('1')
	} else {
		e.out.WriteByte('0')
	}
}

// String contents are written verbatim. Quotes and backslashes inside the
// literal are not escaped, so such literals produce invalid C.
func (e *exprEmitter) VisitStringLiteral(n *ast.StringLiteral) {
	e.out.WriteByte('"')
	e.out.WriteString(n.Value)
	e.out.WriteByte('"')
}

func (e *exprEmitter) VisitNilLiteral(n *ast.NilLiteral) {
	e.out.WriteByte('0')
}

func (e *exprEmitter) VisitIdentifier(n *ast.IdentifierExpr) {
	e.out.WriteString(n.Name)
}

// The operand is not grouped: -(a + b) only survives because the infix
// rendering brings its own parentheses.
func (e *exprEmitter) VisitPrefix(n *ast.PrefixExpr) {
	e.out.WriteString(n.Op.Token())
	e.emit(n.Rhs)
}

func (e *exprEmitter) VisitInfix(n *ast.InfixExpr) {
	e.out.WriteByte('(')
	e.emit(n.Lhs)
	e.out.WriteByte(' ')
	e.out.WriteString(n.Op.Token())
	e.out.WriteByte(' ')
	e.emit(n.Rhs)
	e.out.WriteByte(')')
}

func (e *exprEmitter) VisitCall(n *ast.CallExpr) {
	e.emit(n.Callee)
	e.out.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			e.out.WriteString(", ")
		}
		e.emit(arg)
	}
	e.out.WriteByte(')')
}

func (e *exprEmitter) VisitIndex(n *ast.IndexExpr) {
	e.out.WriteString(ExprPlaceholder)
}

func (e *exprEmitter) VisitStructLiteral(n *ast.StructLiteral) {
	e.out.WriteString(ExprPlaceholder)
}

func (e *exprEmitter) VisitFieldAccess(n *ast.FieldAccessExpr) {
	e.out.WriteString(ExprPlaceholder)
}

func (e *exprEmitter) VisitGroup(n *ast.GroupExpr) {
	e.out.WriteByte('(')
	e.emit(n.Inner)
	e.out.WriteByte(')')
}
