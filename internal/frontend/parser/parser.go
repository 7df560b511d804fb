package parser

import (
	"fmt"
	"slices"

	"butter/internal/frontend/ast"
	"butter/internal/frontend/lexer"
	"butter/internal/source"
	"butter/report"
)

type Parser struct {
	tokens   []lexer.Token
	tokenNo  int
	fullPath string
	reports  *report.Reports

	// set after a syntax error until the parser resynchronizes, so one
	// mistake yields one report
	panicking bool
	// while parsing `if` and `while` conditions, `Name {` opens the body
	noStructLiteral bool
}

// New lexes src and prepares a parser over the tokens. Lexing problems land
// in reports alongside the parser's own.
func New(filePath string, src []byte, reports *report.Reports) *Parser {
	if reports == nil {
		reports = &report.Reports{}
	}
	return &Parser{
		tokens:   lexer.Tokenize(filePath, src, reports),
		fullPath: filePath,
		reports:  reports,
	}
}

// Parse parses a whole file. Statements that fail to parse are dropped from
// the tree and reported as syntax errors.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{FullPath: p.fullPath}
	first := p.peek()

	for !p.isAtEnd() {
		before := p.tokenNo
		stmt := p.parseStatement()
		if p.panicking {
			p.synchronize()
			stmt = nil
		}
		if p.tokenNo == before {
			// a stray token that starts no statement, e.g. `}` at top level
			p.advance()
		}
		if stmt != nil {
			program.Stmts = append(program.Stmts, stmt)
		}
	}

	program.Location = source.NewLocation(first.Start, p.peek().End)
	return program
}

// current token
func (p *Parser) peek() lexer.Token {
	return p.tokens[p.tokenNo]
}

// peekAt looks offset tokens ahead, clamped to EOF
func (p *Parser) peekAt(offset int) lexer.Token {
	if p.tokenNo+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.tokenNo+offset]
}

// previous token
func (p *Parser) previous() lexer.Token {
	if p.tokenNo == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.tokenNo-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF_TOKEN
}

// consume the current token and return that token
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.tokenNo++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TOKEN) bool {
	return p.peek().Kind == kind
}

// match reports whether the current token is any of kinds, without consuming it
func (p *Parser) match(kinds ...lexer.TOKEN) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// consume the current token if it is of the given kind, otherwise report
// message at the current token
func (p *Parser) consume(kind lexer.TOKEN, message string) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), message)
	return p.peek(), false
}

func (p *Parser) errorAt(token lexer.Token, message string) {
	p.errorAtLocation(token.Location(), message)
}

func (p *Parser) errorAtLocation(location source.Location, message string) {
	if p.panicking {
		return
	}
	p.panicking = true
	p.reports.AddSyntaxError(p.fullPath, location, message, report.PARSING_PHASE)
}

func (p *Parser) unexpected(message string) {
	token := p.peek()
	if token.Kind == lexer.EOF_TOKEN {
		p.errorAt(token, message+", found end of file")
		return
	}
	p.errorAt(token, fmt.Sprintf("%s, found `%s`", message, token.Value))
}

// expectSemicolon reports a missing ';' just after the previous token
func (p *Parser) expectSemicolon() bool {
	if p.check(lexer.SEMICOLON_TOKEN) {
		p.advance()
		return true
	}
	prev := p.previous()
	loc := source.NewLocation(prev.End, prev.End)
	loc.End.Column++
	p.errorAtLocation(loc, report.EXPECTED_SEMICOLON)
	return false
}

// synchronize skips tokens until a likely statement boundary
func (p *Parser) synchronize() {
	p.panicking = false
	for !p.isAtEnd() {
		if p.tokenNo > 0 && p.previous().Kind == lexer.SEMICOLON_TOKEN {
			return
		}
		switch p.peek().Kind {
		case lexer.FUNC_TOKEN, lexer.LET_TOKEN, lexer.WHILE_TOKEN, lexer.IF_TOKEN,
			lexer.RETURN_TOKEN, lexer.OUT_TOKEN, lexer.SKIP_TOKEN, lexer.STRUCT_TOKEN,
			lexer.CLOSE_CURLY:
			return
		}
		p.advance()
	}
}

// span covers from start to the last consumed token
func (p *Parser) span(start lexer.Token) source.Location {
	return source.NewLocation(start.Start, p.previous().End)
}

func spanNodes(from, to ast.Node) source.Location {
	return source.NewLocation(from.Loc().Start, to.Loc().End)
}

// ParseSource is a shorthand for New(filePath, src, reports).Parse().
func ParseSource(filePath string, src []byte, reports *report.Reports) *ast.Program {
	return New(filePath, src, reports).Parse()
}
