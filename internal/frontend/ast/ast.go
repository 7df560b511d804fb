package ast

import (
	"butter/internal/source"
)

type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Accept(v ExprVisitor)
}

// Statement represents any node that doesn't produce a value
type Statement interface {
	Node
	Accept(v StmtVisitor)
}

// ElseBranch is what may follow `else`: either a *Block or another *IfStmt.
type ElseBranch interface {
	Node
	elseBranch()
}

// Program is the root of a parsed source file. It is read-only for every
// pass after the parser.
type Program struct {
	FullPath string
	Stmts    []Statement
	source.Location
}

func (p *Program) INode() {} // Impliments Node interface

// Functions returns the top-level function declarations in declaration order.
func (p *Program) Functions() []*FuncDecl {
	funcs := make([]*FuncDecl, 0, len(p.Stmts))
	for _, stmt := range p.Stmts {
		if fn, ok := stmt.(*FuncDecl); ok {
			funcs = append(funcs, fn)
		}
	}
	return funcs
}

// Block is an ordered sequence of statements delimited by braces.
type Block struct {
	Stmts []Statement
	source.Location
}

func (b *Block) INode()      {} // Impliments Node interface
func (b *Block) elseBranch() {}

// NewBlock is a shorthand used mostly by tests and tools building trees by hand.
func NewBlock(stmts ...Statement) *Block {
	return &Block{Stmts: stmts}
}
