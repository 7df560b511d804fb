package lexer

import (
	"fmt"
	"strings"

	"butter/internal/source"
	"butter/report"
)

// Lexer turns a source file into a flat token stream. Problems are recorded
// in the shared reports and the offending input is skipped, so the stream
// always ends with EOF_TOKEN.
type Lexer struct {
	filePath string
	src      []byte
	reports  *report.Reports

	index  int
	line   int
	column int

	tokens []Token
}

func New(filePath string, src []byte, reports *report.Reports) *Lexer {
	if reports == nil {
		reports = &report.Reports{}
	}
	return &Lexer{
		filePath: filePath,
		src:      src,
		reports:  reports,
		line:     1,
		column:   1,
	}
}

// Tokenize lexes src in one call.
func Tokenize(filePath string, src []byte, reports *report.Reports) []Token {
	return New(filePath, src, reports).Tokenize()
}

func (l *Lexer) Tokenize() []Token {
	l.tokens = l.tokens[:0]
	for {
		l.skipTrivia()
		if l.atEnd() {
			break
		}
		l.scanToken()
	}
	pos := l.position()
	l.tokens = append(l.tokens, Token{Kind: EOF_TOKEN, Start: pos, End: pos})
	return l.tokens
}

func (l *Lexer) position() source.Position {
	return source.Position{Line: l.line, Column: l.column, Index: l.index}
}

func (l *Lexer) atEnd() bool {
	return l.index >= len(l.src)
}

func (l *Lexer) peekAt(offset int) byte {
	if l.index+offset >= len(l.src) {
		return 0
	}
	return l.src[l.index+offset]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.index]
	l.index++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) errorAt(start source.Position, msg string) {
	l.reports.AddSyntaxError(l.filePath, source.NewLocation(start, l.position()), msg, report.LEXING_PHASE)
}

func (l *Lexer) skipTrivia() {
	for !l.atEnd() {
		switch ch := l.peekAt(0); {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.peekAt(0) != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekAt(1) == '*':
			start := l.position()
			l.advance()
			l.advance()
			closed := false
			for !l.atEnd() {
				if l.peekAt(0) == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				l.errorAt(start, report.UNTERMINATED_COMMENT)
			}
		default:
			return
		}
	}
}

func (l *Lexer) push(kind TOKEN, value string, start source.Position) {
	l.tokens = append(l.tokens, Token{Kind: kind, Value: value, Start: start, End: l.position()})
}

func (l *Lexer) scanToken() {
	start := l.position()
	ch := l.peekAt(0)

	switch {
	case isIdentStart(ch):
		l.scanIdentifier(start)
		return
	case isDigit(ch):
		l.scanNumber(start)
		return
	case ch == '"':
		l.scanString(start)
		return
	}

	if kind, ok := operators[string([]byte{ch, l.peekAt(1)})]; ok {
		l.advance()
		l.advance()
		l.push(kind, string(kind), start)
		return
	}
	if kind, ok := operators[string(ch)]; ok {
		l.advance()
		l.push(kind, string(kind), start)
		return
	}

	l.advance()
	l.errorAt(start, fmt.Sprintf("%s '%c'", report.UNEXPECTED_CHARACTER, ch))
}

func (l *Lexer) scanIdentifier(start source.Position) {
	from := l.index
	for !l.atEnd() && isIdentPart(l.peekAt(0)) {
		l.advance()
	}
	word := string(l.src[from:l.index])
	if kind, ok := keywords[word]; ok {
		l.push(kind, word, start)
		return
	}
	l.push(IDENTIFIER_TOKEN, word, start)
}

// scanNumber reads an integer or a float. A '.' only continues the number
// when a digit follows it, so `a.0` style field access is not swallowed.
func (l *Lexer) scanNumber(start source.Position) {
	from := l.index
	kind := INT_TOKEN
	for !l.atEnd() && isDigit(l.peekAt(0)) {
		l.advance()
	}
	if l.peekAt(0) == '.' && isDigit(l.peekAt(1)) {
		kind = FLOAT_TOKEN
		l.advance()
		for !l.atEnd() && isDigit(l.peekAt(0)) {
			l.advance()
		}
	}
	if isIdentStart(l.peekAt(0)) {
		for !l.atEnd() && isIdentPart(l.peekAt(0)) {
			l.advance()
		}
		l.errorAt(start, fmt.Sprintf("%s `%s`", report.INVALID_NUMBER, l.src[from:l.index]))
		return
	}
	l.push(kind, string(l.src[from:l.index]), start)
}

// scanString reads a double quoted literal. The token value holds the
// decoded text without the quotes.
func (l *Lexer) scanString(start source.Position) {
	l.advance()
	var sb strings.Builder
	for {
		if l.atEnd() || l.peekAt(0) == '\n' {
			l.errorAt(start, report.UNTERMINATED_STRING)
			return
		}
		ch := l.advance()
		if ch == '"' {
			break
		}
		if ch != '\\' || l.atEnd() {
			sb.WriteByte(ch)
			continue
		}
		switch esc := l.advance(); esc {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(esc)
		}
	}
	l.push(STRING_TOKEN, sb.String(), start)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
