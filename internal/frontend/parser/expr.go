package parser

import (
	"strconv"

	"butter/internal/frontend/ast"
	"butter/internal/frontend/lexer"
	"butter/internal/source"
	"butter/report"
)

var assignmentOps = map[lexer.TOKEN]ast.InfixOp{
	lexer.EQUALS_TOKEN:       ast.ASSIGN,
	lexer.PLUS_EQUALS_TOKEN:  ast.ADD_ASSIGN,
	lexer.MINUS_EQUALS_TOKEN: ast.SUB_ASSIGN,
	lexer.MUL_EQUALS_TOKEN:   ast.MUL_ASSIGN,
	lexer.DIV_EQUALS_TOKEN:   ast.DIV_ASSIGN,
}

// binary precedence levels, lowest first
var binaryLevels = []map[lexer.TOKEN]ast.InfixOp{
	{lexer.OR_TOKEN: ast.OR},
	{lexer.AND_TOKEN: ast.AND},
	{lexer.DOUBLE_EQUAL_TOKEN: ast.EQ, lexer.NOT_EQUAL_TOKEN: ast.NE},
	{lexer.LESS_TOKEN: ast.LT, lexer.LESS_EQUAL_TOKEN: ast.LE, lexer.GREATER_TOKEN: ast.GT, lexer.GREATER_EQUAL_TOKEN: ast.GE},
	{lexer.PLUS_TOKEN: ast.ADD, lexer.MINUS_TOKEN: ast.SUB},
	{lexer.MUL_TOKEN: ast.MUL, lexer.DIV_TOKEN: ast.DIV, lexer.MOD_TOKEN: ast.MOD},
}

// parseExpression returns nil only after reporting a syntax error.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// assignments are right associative: a = b = c is a = (b = c)
func (p *Parser) parseAssignment() ast.Expression {
	lhs := p.parseBinary(0)
	if lhs == nil {
		return nil
	}

	op, ok := assignmentOps[p.peek().Kind]
	if !ok {
		return lhs
	}

	switch lhs.(type) {
	case *ast.IdentifierExpr, *ast.IndexExpr, *ast.FieldAccessExpr:
	default:
		p.errorAtLocation(*lhs.Loc(), report.INVALID_ASSIGNMENT)
		return nil
	}

	p.advance()
	rhs := p.parseAssignment()
	if rhs == nil {
		return nil
	}
	return &ast.InfixExpr{Op: op, Lhs: lhs, Rhs: rhs, Location: spanNodes(lhs, rhs)}
}

func (p *Parser) parseBinary(level int) ast.Expression {
	if level == len(binaryLevels) {
		return p.parsePrefix()
	}

	lhs := p.parseBinary(level + 1)
	if lhs == nil {
		return nil
	}

	for {
		op, ok := binaryLevels[level][p.peek().Kind]
		if !ok {
			return lhs
		}
		p.advance()
		rhs := p.parseBinary(level + 1)
		if rhs == nil {
			return nil
		}
		lhs = &ast.InfixExpr{Op: op, Lhs: lhs, Rhs: rhs, Location: spanNodes(lhs, rhs)}
	}
}

func (p *Parser) parsePrefix() ast.Expression {
	var op ast.PrefixOp
	switch p.peek().Kind {
	case lexer.MINUS_TOKEN:
		op = ast.NEG
	case lexer.NOT_TOKEN:
		op = ast.NOT
	default:
		return p.parsePostfix()
	}

	start := p.advance()
	rhs := p.parsePrefix()
	if rhs == nil {
		return nil
	}
	return &ast.PrefixExpr{Op: op, Rhs: rhs, Location: source.NewLocation(start.Start, rhs.Loc().End)}
}

// parsePostfix handles calls, indexing and field access, all left to right.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch p.peek().Kind {
		case lexer.OPEN_PAREN:
			p.advance()
			args, ok := p.parseArguments()
			if !ok {
				return nil
			}
			expr = &ast.CallExpr{Callee: expr, Args: args, Location: source.NewLocation(expr.Loc().Start, p.previous().End)}
		case lexer.OPEN_BRACKET:
			p.advance()
			index := p.allowingStructLiterals(p.parseExpression)
			if index == nil {
				return nil
			}
			if _, ok := p.consume(lexer.CLOSE_BRACKET, report.EXPECTED_CLOSE_BRACKET); !ok {
				return nil
			}
			expr = &ast.IndexExpr{Target: expr, Index: index, Location: source.NewLocation(expr.Loc().Start, p.previous().End)}
		case lexer.DOT_TOKEN:
			p.advance()
			field, ok := p.consume(lexer.IDENTIFIER_TOKEN, report.EXPECTED_IDENTIFIER)
			if !ok {
				return nil
			}
			expr = &ast.FieldAccessExpr{Target: expr, Field: field.Value, Location: source.NewLocation(expr.Loc().Start, field.End)}
		default:
			return expr
		}
	}
}

// parseArguments parses call arguments after the opening '('.
func (p *Parser) parseArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}
	for !p.check(lexer.CLOSE_PAREN) {
		arg := p.allowingStructLiterals(p.parseExpression)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if !p.check(lexer.COMMA_TOKEN) {
			break
		}
		p.advance()
	}
	if _, ok := p.consume(lexer.CLOSE_PAREN, report.EXPECTED_CLOSE_PAREN); !ok {
		return nil, false
	}
	return args, true
}

func (p *Parser) allowingStructLiterals(parse func() ast.Expression) ast.Expression {
	saved := p.noStructLiteral
	p.noStructLiteral = false
	defer func() { p.noStructLiteral = saved }()
	return parse()
}

func (p *Parser) parsePrimary() ast.Expression {
	token := p.peek()
	loc := token.Location()

	switch token.Kind {
	case lexer.INT_TOKEN:
		p.advance()
		value, err := strconv.ParseInt(token.Value, 10, 64)
		if err != nil {
			p.errorAt(token, report.INVALID_NUMBER+" `"+token.Value+"`")
			return nil
		}
		return &ast.IntLiteral{Value: value, Location: loc}
	case lexer.FLOAT_TOKEN:
		p.advance()
		value, err := strconv.ParseFloat(token.Value, 64)
		if err != nil {
			p.errorAt(token, report.INVALID_NUMBER+" `"+token.Value+"`")
			return nil
		}
		return &ast.FloatLiteral{Value: value, Location: loc}
	case lexer.TRUE_TOKEN, lexer.FALSE_TOKEN:
		p.advance()
		return &ast.BoolLiteral{Value: token.Kind == lexer.TRUE_TOKEN, Location: loc}
	case lexer.NIL_TOKEN:
		p.advance()
		return &ast.NilLiteral{Location: loc}
	case lexer.STRING_TOKEN:
		p.advance()
		return &ast.StringLiteral{Value: token.Value, Location: loc}
	case lexer.IDENTIFIER_TOKEN:
		if p.startsStructLiteral() {
			return p.parseStructLiteral()
		}
		p.advance()
		return &ast.IdentifierExpr{Name: token.Value, Location: loc}
	case lexer.OPEN_PAREN:
		p.advance()
		inner := p.allowingStructLiterals(p.parseExpression)
		if inner == nil {
			return nil
		}
		if _, ok := p.consume(lexer.CLOSE_PAREN, report.EXPECTED_CLOSE_PAREN); !ok {
			return nil
		}
		return &ast.GroupExpr{Inner: inner, Location: p.span(token)}
	}

	p.unexpected(report.INVALID_EXPRESSION)
	return nil
}

// startsStructLiteral looks for `Name {` followed by `field:` or `}`.
func (p *Parser) startsStructLiteral() bool {
	if p.noStructLiteral || p.peekAt(1).Kind != lexer.OPEN_CURLY {
		return false
	}
	switch p.peekAt(2).Kind {
	case lexer.CLOSE_CURLY:
		return true
	case lexer.IDENTIFIER_TOKEN:
		return p.peekAt(3).Kind == lexer.COLON_TOKEN
	}
	return false
}

func (p *Parser) parseStructLiteral() ast.Expression {
	name := p.advance()
	p.advance() // {

	lit := &ast.StructLiteral{Name: name.Value}
	for !p.check(lexer.CLOSE_CURLY) && !p.isAtEnd() {
		field, ok := p.consume(lexer.IDENTIFIER_TOKEN, report.EXPECTED_IDENTIFIER)
		if !ok {
			return nil
		}
		if _, ok := p.consume(lexer.COLON_TOKEN, report.EXPECTED_COLON); !ok {
			return nil
		}
		value := p.allowingStructLiterals(p.parseExpression)
		if value == nil {
			return nil
		}
		lit.Fields = append(lit.Fields, ast.FieldInit{Name: field.Value, Value: value})
		if !p.check(lexer.COMMA_TOKEN) {
			break
		}
		p.advance()
	}

	if _, ok := p.consume(lexer.CLOSE_CURLY, report.EXPECTED_CLOSE_BRACE); !ok {
		return nil
	}
	lit.Location = p.span(name)
	return lit
}
