package cgen

import "butter/internal/frontend/ast"

// TypeToC maps a source type to the C type name used in signatures.
// Custom types are not lowered to named structs yet and become void*.
func TypeToC(t ast.Type) string {
	switch t.Kind {
	case ast.INT:
		return "int64_t"
	case ast.FLOAT:
		return "double"
	case ast.BOOL:
		return "bool"
	case ast.STRING:
		return "char*"
	case ast.NIL:
		return "void"
	default:
		return "void*"
	}
}
