package source

import "fmt"

// Position is a 1-based line/column pair plus the byte offset into the file.
type Position struct {
	Line   int
	Column int
	Index  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was filled in by the lexer.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Location represents a span of source code with start and end positions
type Location struct {
	Start Position
	End   Position
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(start, end Position) Location {
	return Location{
		Start: start,
		End:   end,
	}
}

// Loc returns the location itself so that embedding types satisfy ast.Node.
func (l *Location) Loc() *Location {
	return l
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos Position) bool {
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

func (l *Location) String() string {
	if !l.Start.IsValid() || !l.End.IsValid() {
		return "Location(unknown)"
	}

	return fmt.Sprintf("Location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}
