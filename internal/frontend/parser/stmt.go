package parser

import (
	"butter/internal/frontend/ast"
	"butter/internal/frontend/lexer"
	"butter/report"
)

// parseStatement returns nil for an empty `;` and whenever a syntax error
// was reported.
func (p *Parser) parseStatement() ast.Statement {
	switch p.peek().Kind {
	case lexer.FUNC_TOKEN:
		return p.parseFunction()
	case lexer.LET_TOKEN:
		return p.parseLet()
	case lexer.WHILE_TOKEN:
		return p.parseWhile()
	case lexer.IF_TOKEN:
		return p.parseIf()
	case lexer.RETURN_TOKEN:
		return p.parseReturn()
	case lexer.OUT_TOKEN, lexer.SKIP_TOKEN:
		return p.parseLoopControl()
	case lexer.STRUCT_TOKEN:
		return p.parseStruct()
	case lexer.OPEN_CURLY:
		start := p.peek()
		body := p.parseBlock()
		if body == nil {
			return nil
		}
		return &ast.BlockStmt{Body: body, Location: p.span(start)}
	case lexer.SEMICOLON_TOKEN:
		p.advance()
		return nil
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	start, ok := p.consume(lexer.OPEN_CURLY, report.EXPECTED_OPEN_BRACE)
	if !ok {
		return nil
	}

	block := &ast.Block{}
	for !p.check(lexer.CLOSE_CURLY) && !p.isAtEnd() {
		before := p.tokenNo
		stmt := p.parseStatement()
		if p.panicking {
			p.synchronize()
			stmt = nil
		}
		if p.tokenNo == before && !p.check(lexer.CLOSE_CURLY) {
			p.advance()
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	if _, ok := p.consume(lexer.CLOSE_CURLY, report.EXPECTED_CLOSE_BRACE); !ok {
		return nil
	}
	block.Location = p.span(start)
	return block
}

// parseLet parses `let [mut] name[: Type] [= value];`
func (p *Parser) parseLet() ast.Statement {
	start := p.advance()

	mutable := false
	if p.check(lexer.MUT_TOKEN) {
		p.advance()
		mutable = true
	}

	name, ok := p.consume(lexer.IDENTIFIER_TOKEN, report.EXPECTED_IDENTIFIER)
	if !ok {
		return nil
	}

	stmt := &ast.LetStmt{Name: name.Value, Mutable: mutable}

	if p.check(lexer.COLON_TOKEN) {
		p.advance()
		typ, ok := p.parseType()
		if !ok {
			return nil
		}
		stmt.Type = &typ
	}

	if p.check(lexer.EQUALS_TOKEN) {
		p.advance()
		if stmt.Value = p.parseExpression(); stmt.Value == nil {
			return nil
		}
	}

	if !p.expectSemicolon() {
		return nil
	}
	stmt.Location = p.span(start)
	return stmt
}

func (p *Parser) parseExpressionStmt() ast.Statement {
	start := p.peek()
	expr := p.parseExpression()
	if expr == nil || !p.expectSemicolon() {
		return nil
	}
	return &ast.ExpressionStmt{X: expr, Location: p.span(start)}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.advance()
	stmt := &ast.ReturnStmt{}
	if !p.check(lexer.SEMICOLON_TOKEN) {
		if stmt.Value = p.parseExpression(); stmt.Value == nil {
			return nil
		}
	}
	if !p.expectSemicolon() {
		return nil
	}
	stmt.Location = p.span(start)
	return stmt
}

// parseLoopControl parses `out;` and `skip;`
func (p *Parser) parseLoopControl() ast.Statement {
	start := p.advance()
	if !p.expectSemicolon() {
		return nil
	}
	if start.Kind == lexer.OUT_TOKEN {
		return &ast.OutStmt{Location: p.span(start)}
	}
	return &ast.SkipStmt{Location: p.span(start)}
}

// parseCondition parses the condition of `if`/`while`, where `Name {`
// starts the body rather than a struct literal.
func (p *Parser) parseCondition() ast.Expression {
	saved := p.noStructLiteral
	p.noStructLiteral = true
	defer func() { p.noStructLiteral = saved }()
	return p.parseExpression()
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.advance()
	cond := p.parseCondition()
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.WhileStmt{Cond: cond, Body: body, Location: p.span(start)}
}

// parseIf parses an if statement and its else/else-if chain.
func (p *Parser) parseIf() ast.Statement {
	stmt := p.parseIfChain()
	if stmt == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseIfChain() *ast.IfStmt {
	start := p.advance()
	cond := p.parseCondition()
	if cond == nil {
		return nil
	}
	then := p.parseBlock()
	if then == nil {
		return nil
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.check(lexer.ELSE_TOKEN) {
		p.advance()
		if p.check(lexer.IF_TOKEN) {
			elseIf := p.parseIfChain()
			if elseIf == nil {
				return nil
			}
			stmt.Else = elseIf
		} else {
			block := p.parseBlock()
			if block == nil {
				return nil
			}
			stmt.Else = block
		}
	}

	stmt.Location = p.span(start)
	return stmt
}

// parseStruct parses `struct Name { field: Type, ... }`
func (p *Parser) parseStruct() ast.Statement {
	start := p.advance()
	name, ok := p.consume(lexer.IDENTIFIER_TOKEN, report.EXPECTED_IDENTIFIER)
	if !ok {
		return nil
	}
	if _, ok := p.consume(lexer.OPEN_CURLY, report.EXPECTED_OPEN_BRACE); !ok {
		return nil
	}

	stmt := &ast.StructDecl{Name: name.Value}
	for !p.check(lexer.CLOSE_CURLY) && !p.isAtEnd() {
		field, ok := p.consume(lexer.IDENTIFIER_TOKEN, report.EXPECTED_IDENTIFIER)
		if !ok {
			return nil
		}
		if _, ok := p.consume(lexer.COLON_TOKEN, report.EXPECTED_COLON); !ok {
			return nil
		}
		typ, ok := p.parseType()
		if !ok {
			return nil
		}
		stmt.Fields = append(stmt.Fields, ast.FieldDecl{Name: field.Value, Type: typ})
		if !p.check(lexer.COMMA_TOKEN) {
			break
		}
		p.advance()
	}

	if _, ok := p.consume(lexer.CLOSE_CURLY, report.EXPECTED_CLOSE_BRACE); !ok {
		return nil
	}
	stmt.Location = p.span(start)
	return stmt
}

// parseType accepts a type keyword, `nil`, or any other identifier as a
// custom type name.
func (p *Parser) parseType() (ast.Type, bool) {
	switch p.peek().Kind {
	case lexer.IDENTIFIER_TOKEN:
		return ast.TypeFromName(p.advance().Value), true
	case lexer.NIL_TOKEN:
		p.advance()
		return ast.NilType, true
	}
	p.unexpected(report.EXPECTED_TYPE)
	return ast.Type{}, false
}
