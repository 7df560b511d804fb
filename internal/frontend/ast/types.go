package ast

// TypeKind enumerates the source-level types.
type TypeKind int

const (
	INT TypeKind = iota
	FLOAT
	BOOL
	STRING
	NIL
	CUSTOM
)

var typeKindNames = map[TypeKind]string{
	INT:    "int",
	FLOAT:  "float",
	BOOL:   "bool",
	STRING: "string",
	NIL:    "nil",
	CUSTOM: "custom",
}

func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Type is a declared type. Name is only meaningful for CUSTOM.
type Type struct {
	Kind TypeKind
	Name string
}

var (
	IntType    = Type{Kind: INT}
	FloatType  = Type{Kind: FLOAT}
	BoolType   = Type{Kind: BOOL}
	StringType = Type{Kind: STRING}
	NilType    = Type{Kind: NIL}
)

// CustomType names a user type that is not modelled yet.
func CustomType(name string) Type {
	return Type{Kind: CUSTOM, Name: name}
}

// TypeFromName maps a type keyword to its Type; any other name is CUSTOM.
func TypeFromName(name string) Type {
	for kind, keyword := range typeKindNames {
		if kind != CUSTOM && keyword == name {
			return Type{Kind: kind}
		}
	}
	return CustomType(name)
}

func (t Type) String() string {
	if t.Kind == CUSTOM {
		return t.Name
	}
	return t.Kind.String()
}
