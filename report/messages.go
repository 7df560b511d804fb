package report

const (
	EXPECTED_OPEN_BRACE    = "Expected '{'"
	EXPECTED_CLOSE_BRACE   = "Expected '}'"
	EXPECTED_OPEN_PAREN    = "Expected '('"
	EXPECTED_CLOSE_PAREN   = "Expected ')'"
	EXPECTED_CLOSE_BRACKET = "Expected ']'"
	EXPECTED_SEMICOLON     = "Expected ';' after statement"
	EXPECTED_IDENTIFIER    = "Expected identifier"
	EXPECTED_COLON         = "Expected ':'"
	EXPECTED_TYPE          = "Expected a type name"
	INVALID_EXPRESSION     = "Invalid expression"
	INVALID_ASSIGNMENT     = "Invalid assignment target"
	INVALID_NUMBER         = "Invalid number literal"
	UNTERMINATED_STRING    = "Unterminated string literal"
	UNTERMINATED_COMMENT   = "Unterminated block comment"
	UNEXPECTED_CHARACTER   = "Unexpected character"
	UNEXPECTED_TOKEN       = "Unexpected token"
	UNSUPPORTED_EXPRESSION = "Expression is not supported by the C backend yet"
	UNSUPPORTED_STRUCT     = "Struct declarations are not lowered to C yet"
	NESTED_FUNCTION        = "Functions can only be declared at top level"
	TOP_LEVEL_NOT_EMITTED  = "Top-level statement is not emitted; only functions are compiled"
	LOOP_CONTROL_OUTSIDE   = "'%s' used outside of a loop"
	STRING_NEEDS_ESCAPING  = "String literal contains characters that are written to C without escaping"
)
