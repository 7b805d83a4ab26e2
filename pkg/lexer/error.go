package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrNumberOverflow = errors.New("number out of range")
	ErrNotNumber      = errors.New("not a number token")
)

// Error is a failure tied to a location in the source text.
type Error struct {
	Pos    Position
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Pos.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Pos.Offset, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}
