package lexer

import (
	"fmt"

	"butter/internal/source"
)

type TOKEN string

const (
	EOF_TOKEN        TOKEN = "end of file"
	IDENTIFIER_TOKEN TOKEN = "identifier"
	INT_TOKEN        TOKEN = "integer"
	FLOAT_TOKEN      TOKEN = "float"
	STRING_TOKEN     TOKEN = "string"

	// keywords
	FUNC_TOKEN   TOKEN = "func"
	LET_TOKEN    TOKEN = "let"
	MUT_TOKEN    TOKEN = "mut"
	WHILE_TOKEN  TOKEN = "while"
	IF_TOKEN     TOKEN = "if"
	ELSE_TOKEN   TOKEN = "else"
	RETURN_TOKEN TOKEN = "return"
	OUT_TOKEN    TOKEN = "out"
	SKIP_TOKEN   TOKEN = "skip"
	STRUCT_TOKEN TOKEN = "struct"
	TRUE_TOKEN   TOKEN = "true"
	FALSE_TOKEN  TOKEN = "false"
	NIL_TOKEN    TOKEN = "nil"

	// punctuation
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	OPEN_BRACKET    TOKEN = "["
	CLOSE_BRACKET   TOKEN = "]"
	COMMA_TOKEN     TOKEN = ","
	COLON_TOKEN     TOKEN = ":"
	SEMICOLON_TOKEN TOKEN = ";"
	DOT_TOKEN       TOKEN = "."
	ARROW_TOKEN     TOKEN = "->"

	// operators
	PLUS_TOKEN          TOKEN = "+"
	MINUS_TOKEN         TOKEN = "-"
	MUL_TOKEN           TOKEN = "*"
	DIV_TOKEN           TOKEN = "/"
	MOD_TOKEN           TOKEN = "%"
	NOT_TOKEN           TOKEN = "!"
	EQUALS_TOKEN        TOKEN = "="
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	LESS_TOKEN          TOKEN = "<"
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_TOKEN       TOKEN = ">"
	GREATER_EQUAL_TOKEN TOKEN = ">="
	AND_TOKEN           TOKEN = "&&"
	OR_TOKEN            TOKEN = "||"
	PLUS_EQUALS_TOKEN   TOKEN = "+="
	MINUS_EQUALS_TOKEN  TOKEN = "-="
	MUL_EQUALS_TOKEN    TOKEN = "*="
	DIV_EQUALS_TOKEN    TOKEN = "/="
)

var keywords = map[string]TOKEN{
	"func":   FUNC_TOKEN,
	"let":    LET_TOKEN,
	"mut":    MUT_TOKEN,
	"while":  WHILE_TOKEN,
	"if":     IF_TOKEN,
	"else":   ELSE_TOKEN,
	"return": RETURN_TOKEN,
	"out":    OUT_TOKEN,
	"skip":   SKIP_TOKEN,
	"struct": STRUCT_TOKEN,
	"true":   TRUE_TOKEN,
	"false":  FALSE_TOKEN,
	"nil":    NIL_TOKEN,
}

// operators maps every operator and punctuation spelling to its kind. The
// lexer always tries the two-character spelling first.
var operators = map[string]TOKEN{
	"(": OPEN_PAREN, ")": CLOSE_PAREN,
	"{": OPEN_CURLY, "}": CLOSE_CURLY,
	"[": OPEN_BRACKET, "]": CLOSE_BRACKET,
	",": COMMA_TOKEN, ":": COLON_TOKEN, ";": SEMICOLON_TOKEN, ".": DOT_TOKEN,
	"->": ARROW_TOKEN,
	"+":  PLUS_TOKEN, "-": MINUS_TOKEN, "*": MUL_TOKEN, "/": DIV_TOKEN, "%": MOD_TOKEN,
	"!": NOT_TOKEN, "=": EQUALS_TOKEN,
	"==": DOUBLE_EQUAL_TOKEN, "!=": NOT_EQUAL_TOKEN,
	"<": LESS_TOKEN, "<=": LESS_EQUAL_TOKEN, ">": GREATER_TOKEN, ">=": GREATER_EQUAL_TOKEN,
	"&&": AND_TOKEN, "||": OR_TOKEN,
	"+=": PLUS_EQUALS_TOKEN, "-=": MINUS_EQUALS_TOKEN, "*=": MUL_EQUALS_TOKEN, "/=": DIV_EQUALS_TOKEN,
}

// Token is a lexeme with its span. End is exclusive.
type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func (t Token) Location() source.Location {
	return source.NewLocation(t.Start, t.End)
}

func (t Token) String() string {
	return fmt.Sprintf("%s\t%s\t%q", t.Start, t.Kind, t.Value)
}

// IsKeyword reports whether word is reserved.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}
