package lexer

import "fmt"

// Position locates a token in the source by byte offset and byte length.
type Position struct {
	Offset int
	Length int
}

// Returns a string representation of the Position
func (p Position) String() string {
	return fmt.Sprintf("%d+%d", p.Offset, p.Length)
}

// End returns the offset just past the token
func (p Position) End() int {
	return p.Offset + p.Length
}

// Creates a new Position instance
func NewPosition(offset, length int) Position {
	return Position{
		Offset: offset,
		Length: length,
	}
}
