package parser

import (
	"butter/internal/frontend/ast"
	"butter/internal/frontend/lexer"
	"butter/report"
)

// parseFunction parses `func name(a: T, b: T) [-> T] { ... }`. A missing
// return type means the function returns nothing.
func (p *Parser) parseFunction() ast.Statement {
	start := p.advance()

	name, ok := p.consume(lexer.IDENTIFIER_TOKEN, report.EXPECTED_IDENTIFIER)
	if !ok {
		return nil
	}

	params, ok := p.parseParams()
	if !ok {
		return nil
	}

	returnType := ast.NilType
	if p.check(lexer.ARROW_TOKEN) {
		p.advance()
		if returnType, ok = p.parseType(); !ok {
			return nil
		}
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.FuncDecl{
		Name:       name.Value,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Location:   p.span(start),
	}
}

func (p *Parser) parseParams() ([]ast.Param, bool) {
	if _, ok := p.consume(lexer.OPEN_PAREN, report.EXPECTED_OPEN_PAREN); !ok {
		return nil, false
	}

	params := []ast.Param{}
	for !p.check(lexer.CLOSE_PAREN) {
		name, ok := p.consume(lexer.IDENTIFIER_TOKEN, report.EXPECTED_IDENTIFIER)
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.COLON_TOKEN, report.EXPECTED_COLON); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{Name: name.Value, Type: typ})

		if !p.check(lexer.COMMA_TOKEN) {
			break
		}
		p.advance()
	}

	if _, ok := p.consume(lexer.CLOSE_PAREN, report.EXPECTED_CLOSE_PAREN); !ok {
		return nil, false
	}
	return params, true
}
