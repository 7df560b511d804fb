package ast

import "butter/internal/source"

// LetStmt declares a local binding. Type is nil when not annotated.
type LetStmt struct {
	Name    string
	Mutable bool
	Type    *Type
	Value   Expression
	source.Location
}

// ExpressionStmt evaluates X for its side effects.
type ExpressionStmt struct {
	X Expression
	source.Location
}

type ReturnStmt struct {
	Value Expression
	source.Location
}

type WhileStmt struct {
	Cond Expression
	Body *Block
	source.Location
}

// IfStmt is `if cond {...}` with an optional else branch, which is either a
// *Block or another *IfStmt for `else if` chains.
type IfStmt struct {
	Cond Expression
	Then *Block
	Else ElseBranch
	source.Location
}

// BlockStmt is a bare nested scope.
type BlockStmt struct {
	Body *Block
	source.Location
}

type FieldDecl struct {
	Name string
	Type Type
}

type StructDecl struct {
	Name   string
	Fields []FieldDecl
	source.Location
}

// OutStmt leaves the innermost loop.
type OutStmt struct {
	source.Location
}

// SkipStmt jumps to the next iteration of the innermost loop.
type SkipStmt struct {
	source.Location
}

type Param struct {
	Name string
	Type Type
}

type FuncDecl struct {
	Name       string
	Params     []Param
	ReturnType Type
	Body       *Block
	source.Location
}

func (s *LetStmt) INode()        {} // Impliments Node interface
func (s *ExpressionStmt) INode() {} // Impliments Node interface
func (s *ReturnStmt) INode()     {} // Impliments Node interface
func (s *WhileStmt) INode()      {} // Impliments Node interface
func (s *IfStmt) INode()         {} // Impliments Node interface
func (s *BlockStmt) INode()      {} // Impliments Node interface
func (s *StructDecl) INode()     {} // Impliments Node interface
func (s *OutStmt) INode()        {} // Impliments Node interface
func (s *SkipStmt) INode()       {} // Impliments Node interface
func (s *FuncDecl) INode()       {} // Impliments Node interface

func (s *IfStmt) elseBranch() {}

func (s *LetStmt) Accept(v StmtVisitor)        { v.VisitLet(s) }
func (s *ExpressionStmt) Accept(v StmtVisitor) { v.VisitExpressionStmt(s) }
func (s *ReturnStmt) Accept(v StmtVisitor)     { v.VisitReturn(s) }
func (s *WhileStmt) Accept(v StmtVisitor)      { v.VisitWhile(s) }
func (s *IfStmt) Accept(v StmtVisitor)         { v.VisitIf(s) }
func (s *BlockStmt) Accept(v StmtVisitor)      { v.VisitBlock(s) }
func (s *StructDecl) Accept(v StmtVisitor)     { v.VisitStruct(s) }
func (s *OutStmt) Accept(v StmtVisitor)        { v.VisitOut(s) }
func (s *SkipStmt) Accept(v StmtVisitor)       { v.VisitSkip(s) }
func (s *FuncDecl) Accept(v StmtVisitor)       { v.VisitFunc(s) }
