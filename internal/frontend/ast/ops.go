package ast

// InfixOp is a binary operator, including assignment forms.
type InfixOp int

const (
	ADD InfixOp = iota
	SUB
	MUL
	DIV
	MOD
	EQ
	NE
	LT
	LE
	GT
	GE
	AND
	OR
	ASSIGN
	ADD_ASSIGN
	SUB_ASSIGN
	MUL_ASSIGN
	DIV_ASSIGN
)

var infixTokens = [...]string{
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	MOD:        "%",
	EQ:         "==",
	NE:         "!=",
	LT:         "<",
	LE:         "<=",
	GT:         ">",
	GE:         ">=",
	AND:        "&&",
	OR:         "||",
	ASSIGN:     "=",
	ADD_ASSIGN: "+=",
	SUB_ASSIGN: "-=",
	MUL_ASSIGN: "*=",
	DIV_ASSIGN: "/=",
}

// Token returns the operator spelling, which is shared by the source
// language and C.
func (op InfixOp) Token() string {
	if op < 0 || int(op) >= len(infixTokens) {
		return "?"
	}
	return infixTokens[op]
}

func (op InfixOp) String() string { return op.Token() }

// IsAssignment reports whether op writes to its left operand.
func (op InfixOp) IsAssignment() bool {
	return op >= ASSIGN && op <= DIV_ASSIGN
}

// PrefixOp is a unary operator.
type PrefixOp int

const (
	NEG PrefixOp = iota
	NOT
)

func (op PrefixOp) Token() string {
	switch op {
	case NEG:
		return "-"
	case NOT:
		return "!"
	}
	return "?"
}

func (op PrefixOp) String() string { return op.Token() }
