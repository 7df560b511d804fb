package ast

// Inspect traverses the tree rooted at node depth-first, left to right. It
// calls f for each node; when f returns false the children of that node are
// skipped. Inspect never modifies the tree.
func Inspect(node Node, f func(Node) bool) {
	if node == nil {
		return
	}
	w := &inspector{f: f}
	w.node(node)
}

type inspector struct {
	f func(Node) bool
}

func (w *inspector) node(n Node) {
	switch n := n.(type) {
	case *Program:
		if w.f(n) {
			w.stmts(n.Stmts)
		}
	case *Block:
		if w.f(n) {
			w.stmts(n.Stmts)
		}
	case Statement:
		n.Accept(w)
	case Expression:
		n.Accept(w)
	}
}

func (w *inspector) stmts(stmts []Statement) {
	for _, stmt := range stmts {
		stmt.Accept(w)
	}
}

func (w *inspector) block(b *Block) {
	if b != nil {
		w.node(b)
	}
}

func (w *inspector) expr(e Expression) {
	if e != nil {
		e.Accept(w)
	}
}

func (w *inspector) VisitIntLiteral(e *IntLiteral)       { w.f(e) }
func (w *inspector) VisitFloatLiteral(e *FloatLiteral)   { w.f(e) }
func (w *inspector) VisitBoolLiteral(e *BoolLiteral)     { w.f(e) }
func (w *inspector) VisitStringLiteral(e *StringLiteral) { w.f(e) }
func (w *inspector) VisitNilLiteral(e *NilLiteral)       { w.f(e) }
func (w *inspector) VisitIdentifier(e *IdentifierExpr)   { w.f(e) }

func (w *inspector) VisitPrefix(e *PrefixExpr) {
	if w.f(e) {
		w.expr(e.Rhs)
	}
}

func (w *inspector) VisitInfix(e *InfixExpr) {
	if w.f(e) {
		w.expr(e.Lhs)
		w.expr(e.Rhs)
	}
}

func (w *inspector) VisitCall(e *CallExpr) {
	if w.f(e) {
		w.expr(e.Callee)
		for _, arg := range e.Args {
			w.expr(arg)
		}
	}
}

func (w *inspector) VisitIndex(e *IndexExpr) {
	if w.f(e) {
		w.expr(e.Target)
		w.expr(e.Index)
	}
}

func (w *inspector) VisitStructLiteral(e *StructLiteral) {
	if w.f(e) {
		for _, field := range e.Fields {
			w.expr(field.Value)
		}
	}
}

func (w *inspector) VisitFieldAccess(e *FieldAccessExpr) {
	if w.f(e) {
		w.expr(e.Target)
	}
}

func (w *inspector) VisitGroup(e *GroupExpr) {
	if w.f(e) {
		w.expr(e.Inner)
	}
}

func (w *inspector) VisitLet(s *LetStmt) {
	if w.f(s) {
		w.expr(s.Value)
	}
}

func (w *inspector) VisitExpressionStmt(s *ExpressionStmt) {
	if w.f(s) {
		w.expr(s.X)
	}
}

func (w *inspector) VisitReturn(s *ReturnStmt) {
	if w.f(s) {
		w.expr(s.Value)
	}
}

func (w *inspector) VisitWhile(s *WhileStmt) {
	if w.f(s) {
		w.expr(s.Cond)
		w.block(s.Body)
	}
}

func (w *inspector) VisitIf(s *IfStmt) {
	if !w.f(s) {
		return
	}
	w.expr(s.Cond)
	w.block(s.Then)
	switch branch := s.Else.(type) {
	case *Block:
		w.block(branch)
	case *IfStmt:
		branch.Accept(w)
	}
}

func (w *inspector) VisitBlock(s *BlockStmt) {
	if w.f(s) {
		w.block(s.Body)
	}
}

func (w *inspector) VisitStruct(s *StructDecl) { w.f(s) }
func (w *inspector) VisitOut(s *OutStmt)       { w.f(s) }
func (w *inspector) VisitSkip(s *SkipStmt)     { w.f(s) }

func (w *inspector) VisitFunc(s *FuncDecl) {
	if w.f(s) {
		w.block(s.Body)
	}
}
