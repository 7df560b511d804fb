package ast

// ExprVisitor has one method per expression variant. Adding a variant means
// adding a method here, which every emitter and walker must then implement.
type ExprVisitor interface {
	VisitIntLiteral(*IntLiteral)
	VisitFloatLiteral(*FloatLiteral)
	VisitBoolLiteral(*BoolLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitNilLiteral(*NilLiteral)
	VisitIdentifier(*IdentifierExpr)
	VisitPrefix(*PrefixExpr)
	VisitInfix(*InfixExpr)
	VisitCall(*CallExpr)
	VisitIndex(*IndexExpr)
	VisitStructLiteral(*StructLiteral)
	VisitFieldAccess(*FieldAccessExpr)
	VisitGroup(*GroupExpr)
}

// StmtVisitor has one method per statement variant.
type StmtVisitor interface {
	VisitLet(*LetStmt)
	VisitExpressionStmt(*ExpressionStmt)
	VisitReturn(*ReturnStmt)
	VisitWhile(*WhileStmt)
	VisitIf(*IfStmt)
	VisitBlock(*BlockStmt)
	VisitStruct(*StructDecl)
	VisitOut(*OutStmt)
	VisitSkip(*SkipStmt)
	VisitFunc(*FuncDecl)
}
