package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butter/internal/backend/cgen"
	"butter/internal/frontend/ast"
	"butter/report"
)

func parse(t *testing.T, src string) (*ast.Program, *report.Reports) {
	t.Helper()
	reports := &report.Reports{}
	program := ParseSource("test.btr", []byte(src), reports)
	require.NotNil(t, program)
	return program, reports
}

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, reports := parse(t, src)
	for _, r := range *reports {
		t.Errorf("unexpected report: %s", r.Message)
	}
	return program
}

// parseExpr wraps src in a function body and returns the single expression.
func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	program := parseOK(t, "func f() { "+src+"; }")
	require.Len(t, program.Stmts, 1)
	fn := program.Stmts[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.Stmts, 1)
	stmt, ok := fn.Body.Stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok, "expected an expression statement, got %T", fn.Body.Stmts[0])
	return stmt.X
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b % c", "((a / b) % c)"},
		{"a < b == c > d", "((a < b) == (c > d))"},
		{"a || b && c", "(a || (b && c))"},
		{"a && b || c && d", "((a && b) || (c && d))"},
		{"a != b && c <= d", "((a != b) && (c <= d))"},
		{"x = y = 3", "(x = (y = 3))"},
		{"x += a * 2", "(x += (a * 2))"},
		{"x -= 1", "(x -= 1)"},
		{"x *= 2", "(x *= 2)"},
		{"x /= 2", "(x /= 2)"},
		{"-a * b", "(-a * b)"},
		{"!a && b", "(!a && b)"},
		{"--a", "--a"},
		{"(1 + 2) * 3", "(((1 + 2)) * 3)"},
		{"f(1, g(2), a + b)", "f(1, g(2), (a + b))"},
		{"f()", "f()"},
		{"f(x)(y)", "f(x)(y)"},
		{"1.5 + x", "(1.5 + x)"},
		{"true || false", "(1 || 0)"},
		{"nil", "0"},
		{`"hi"`, `"hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, cgen.ExprString(parseExpr(t, tt.src)))
		})
	}
}

func TestPostfixShapes(t *testing.T) {
	index, ok := parseExpr(t, "xs[i + 1]").(*ast.IndexExpr)
	require.True(t, ok)
	assert.Equal(t, "xs", index.Target.(*ast.IdentifierExpr).Name)
	assert.Equal(t, "(i + 1)", cgen.ExprString(index.Index))

	field, ok := parseExpr(t, "p.pos.x").(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "x", field.Field)
	inner, ok := field.Target.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "pos", inner.Field)

	call, ok := parseExpr(t, "obj.run(1)").(*ast.CallExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.FieldAccessExpr{}, call.Callee)
	assert.Len(t, call.Args, 1)

	assign, ok := parseExpr(t, "xs[0] = 1").(*ast.InfixExpr)
	require.True(t, ok)
	assert.Equal(t, ast.ASSIGN, assign.Op)
	assert.IsType(t, &ast.IndexExpr{}, assign.Lhs)
}

func TestStructLiteral(t *testing.T) {
	program := parseOK(t, "func f() { let p = Point { x: 1, y: Inner {} }; }")
	let := program.Stmts[0].(*ast.FuncDecl).Body.Stmts[0].(*ast.LetStmt)
	lit, ok := let.Value.(*ast.StructLiteral)
	require.True(t, ok)
	assert.Equal(t, "Point", lit.Name)
	require.Len(t, lit.Fields, 2)
	assert.Equal(t, "x", lit.Fields[0].Name)
	assert.IsType(t, &ast.StructLiteral{}, lit.Fields[1].Value)
}

func TestStructLiteralNotAllowedInCondition(t *testing.T) {
	program := parseOK(t, "func f() { if ok { out; } while (P { a: 1 }) == q { skip; } }")
	body := program.Stmts[0].(*ast.FuncDecl).Body.Stmts

	ifStmt := body[0].(*ast.IfStmt)
	assert.IsType(t, &ast.IdentifierExpr{}, ifStmt.Cond)
	assert.IsType(t, &ast.OutStmt{}, ifStmt.Then.Stmts[0])

	while := body[1].(*ast.WhileStmt)
	cmp := while.Cond.(*ast.InfixExpr)
	assert.IsType(t, &ast.StructLiteral{}, cmp.Lhs.(*ast.GroupExpr).Inner)
}

func TestFunctionDecl(t *testing.T) {
	program := parseOK(t, `
func add(a: int, b: int) -> int {
    return a + b;
}

func main() {
}

func scale(v: float, label: string, p: Point) -> bool { return true; }
`)
	fns := program.Functions()
	require.Len(t, fns, 3)

	add := fns[0]
	assert.Equal(t, "add", add.Name)
	assert.Equal(t, []ast.Param{{Name: "a", Type: ast.IntType}, {Name: "b", Type: ast.IntType}}, add.Params)
	assert.Equal(t, ast.IntType, add.ReturnType)
	require.Len(t, add.Body.Stmts, 1)
	assert.IsType(t, &ast.ReturnStmt{}, add.Body.Stmts[0])

	main := fns[1]
	assert.Empty(t, main.Params)
	assert.Equal(t, ast.NilType, main.ReturnType)
	assert.Empty(t, main.Body.Stmts)

	scale := fns[2]
	assert.Equal(t, ast.FloatType, scale.Params[0].Type)
	assert.Equal(t, ast.StringType, scale.Params[1].Type)
	assert.Equal(t, ast.CustomType("Point"), scale.Params[2].Type)
	assert.Equal(t, ast.BoolType, scale.ReturnType)

	assert.Equal(t, 2, add.Start.Line)
	assert.Equal(t, 4, add.End.Line)
}

func TestStatements(t *testing.T) {
	program := parseOK(t, `func f() {
    let x;
    let mut y: float = 2.5;
    let s: string = "hi";
    y += 1;
    return;
    return x;
    out;
    skip;
    { let z = 1; }
    struct Point { x: int, y: int, }
    func inner() {}
    ;
}`)
	stmts := program.Stmts[0].(*ast.FuncDecl).Body.Stmts
	require.Len(t, stmts, 11)

	x := stmts[0].(*ast.LetStmt)
	assert.Equal(t, "x", x.Name)
	assert.False(t, x.Mutable)
	assert.Nil(t, x.Type)
	assert.Nil(t, x.Value)

	y := stmts[1].(*ast.LetStmt)
	assert.True(t, y.Mutable)
	require.NotNil(t, y.Type)
	assert.Equal(t, ast.FloatType, *y.Type)
	assert.IsType(t, &ast.FloatLiteral{}, y.Value)

	assert.Equal(t, ast.StringType, *stmts[2].(*ast.LetStmt).Type)
	assert.IsType(t, &ast.ExpressionStmt{}, stmts[3])
	assert.Nil(t, stmts[4].(*ast.ReturnStmt).Value)
	assert.NotNil(t, stmts[5].(*ast.ReturnStmt).Value)
	assert.IsType(t, &ast.OutStmt{}, stmts[6])
	assert.IsType(t, &ast.SkipStmt{}, stmts[7])
	assert.Len(t, stmts[8].(*ast.BlockStmt).Body.Stmts, 1)

	st := stmts[9].(*ast.StructDecl)
	assert.Equal(t, "Point", st.Name)
	assert.Equal(t, []ast.FieldDecl{{Name: "x", Type: ast.IntType}, {Name: "y", Type: ast.IntType}}, st.Fields)

	assert.Equal(t, "inner", stmts[10].(*ast.FuncDecl).Name)
}

func TestIfElseChain(t *testing.T) {
	program := parseOK(t, `func f(n: int) {
    if n < 0 { return; } else if n == 0 { out; } else if n == 1 { skip; } else { n = 2; }
}`)
	first := program.Stmts[0].(*ast.FuncDecl).Body.Stmts[0].(*ast.IfStmt)

	second, ok := first.Else.(*ast.IfStmt)
	require.True(t, ok)
	third, ok := second.Else.(*ast.IfStmt)
	require.True(t, ok)
	last, ok := third.Else.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, last.Stmts, 1)

	plain := parseOK(t, "func f() { if a { } }")
	assert.Nil(t, plain.Stmts[0].(*ast.FuncDecl).Body.Stmts[0].(*ast.IfStmt).Else)
}

func TestTopLevelStatementsAreKept(t *testing.T) {
	program := parseOK(t, "let g = 1;\nstruct S { a: int }\nfunc main() {}\n")
	require.Len(t, program.Stmts, 3)
	assert.IsType(t, &ast.LetStmt{}, program.Stmts[0])
	assert.IsType(t, &ast.StructDecl{}, program.Stmts[1])
	assert.Len(t, program.Functions(), 1)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
		line    int
	}{
		{"missing semicolon", "func f() {\n    let x = 1\n}", report.EXPECTED_SEMICOLON, 2},
		{"missing expression", "func f() { let x = ; }", report.INVALID_EXPRESSION + ", found `;`", 1},
		{"bad assignment target", "func f() { 1 = 2; }", report.INVALID_ASSIGNMENT, 1},
		{"missing close paren", "func f() { g(1; }", report.EXPECTED_CLOSE_PAREN, 1},
		{"missing brace", "func f() \n return 1; }", report.EXPECTED_OPEN_BRACE, 2},
		{"missing param type", "func f(a) {}", report.EXPECTED_COLON, 1},
		{"bad type", "func f(a: 1) {}", report.EXPECTED_TYPE + ", found `1`", 1},
		{"unclosed block", "func f() {\n let x = 1;", report.EXPECTED_CLOSE_BRACE, 2},
		{"stray brace", "}", report.INVALID_EXPRESSION + ", found `}`", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, reports := parse(t, tt.src)
			require.GreaterOrEqual(t, reports.Len(), 1)
			first := (*reports)[0]
			assert.Equal(t, tt.message, first.Message)
			assert.Equal(t, report.SYNTAX_ERROR, first.Level)
			assert.Equal(t, report.PARSING_PHASE, first.Phase)
			assert.Equal(t, tt.line, first.Location.Start.Line)
			assert.True(t, reports.HasErrors())
		})
	}
}

func TestRecoveryKeepsLaterStatements(t *testing.T) {
	program, reports := parse(t, `func f() {
    let a = ;
    let b = 2;
}
func g() { }`)
	assert.Equal(t, 1, reports.Len())

	fns := program.Functions()
	require.Len(t, fns, 2)
	require.Len(t, fns[0].Body.Stmts, 1)
	assert.Equal(t, "b", fns[0].Body.Stmts[0].(*ast.LetStmt).Name)
}

func TestLexErrorsAreReported(t *testing.T) {
	_, reports := parse(t, "func f() { let s = \"open; }")
	require.GreaterOrEqual(t, reports.Len(), 1)
	assert.Equal(t, report.LEXING_PHASE, (*reports)[0].Phase)
}
