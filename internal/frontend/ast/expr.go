package ast

import "butter/internal/source"

type IntLiteral struct {
	Value int64
	source.Location
}

type FloatLiteral struct {
	Value float64
	source.Location
}

type BoolLiteral struct {
	Value bool
	source.Location
}

// StringLiteral holds the decoded contents, without surrounding quotes.
type StringLiteral struct {
	Value string
	source.Location
}

type NilLiteral struct {
	source.Location
}

type IdentifierExpr struct {
	Name string
	source.Location
}

// PrefixExpr is `-x` or `!x`.
type PrefixExpr struct {
	Op  PrefixOp
	Rhs Expression
	source.Location
}

// InfixExpr covers arithmetic, comparison, logical and assignment operators.
type InfixExpr struct {
	Op  InfixOp
	Lhs Expression
	Rhs Expression
	source.Location
}

type CallExpr struct {
	Callee Expression
	Args   []Expression
	source.Location
}

// IndexExpr is `target[index]`.
type IndexExpr struct {
	Target Expression
	Index  Expression
	source.Location
}

type FieldInit struct {
	Name  string
	Value Expression
}

// StructLiteral is `Name { field: value, ... }`.
type StructLiteral struct {
	Name   string
	Fields []FieldInit
	source.Location
}

// FieldAccessExpr is `target.field`.
type FieldAccessExpr struct {
	Target Expression
	Field  string
	source.Location
}

// GroupExpr is an explicitly parenthesized expression in the source.
type GroupExpr struct {
	Inner Expression
	source.Location
}

func (e *IntLiteral) INode()      {} // Impliments Node interface
func (e *FloatLiteral) INode()    {} // Impliments Node interface
func (e *BoolLiteral) INode()     {} // Impliments Node interface
func (e *StringLiteral) INode()   {} // Impliments Node interface
func (e *NilLiteral) INode()      {} // Impliments Node interface
func (e *IdentifierExpr) INode()  {} // Impliments Node interface
func (e *PrefixExpr) INode()      {} // Impliments Node interface
func (e *InfixExpr) INode()       {} // Impliments Node interface
func (e *CallExpr) INode()        {} // Impliments Node interface
func (e *IndexExpr) INode()       {} // Impliments Node interface
func (e *StructLiteral) INode()   {} // Impliments Node interface
func (e *FieldAccessExpr) INode() {} // Impliments Node interface
func (e *GroupExpr) INode()       {} // Impliments Node interface

func (e *IntLiteral) Accept(v ExprVisitor)      { v.VisitIntLiteral(e) }
func (e *FloatLiteral) Accept(v ExprVisitor)    { v.VisitFloatLiteral(e) }
func (e *BoolLiteral) Accept(v ExprVisitor)     { v.VisitBoolLiteral(e) }
func (e *StringLiteral) Accept(v ExprVisitor)   { v.VisitStringLiteral(e) }
func (e *NilLiteral) Accept(v ExprVisitor)      { v.VisitNilLiteral(e) }
func (e *IdentifierExpr) Accept(v ExprVisitor)  { v.VisitIdentifier(e) }
func (e *PrefixExpr) Accept(v ExprVisitor)      { v.VisitPrefix(e) }
func (e *InfixExpr) Accept(v ExprVisitor)       { v.VisitInfix(e) }
func (e *CallExpr) Accept(v ExprVisitor)        { v.VisitCall(e) }
func (e *IndexExpr) Accept(v ExprVisitor)       { v.VisitIndex(e) }
func (e *StructLiteral) Accept(v ExprVisitor)   { v.VisitStructLiteral(e) }
func (e *FieldAccessExpr) Accept(v ExprVisitor) { v.VisitFieldAccess(e) }
func (e *GroupExpr) Accept(v ExprVisitor)       { v.VisitGroup(e) }
