package lexer

import (
	"fmt"
	"strings"
)

// Sequence is a front-consumable list of tokens.
// Tokens are only ever removed from the front.
type Sequence struct {
	tokens []Token
	cursor int
	end    Position // position just past the source, used for end-of-input errors
}

// NewSequence creates a sequence over the given tokens
func NewSequence(tokens ...Token) *Sequence {
	end := NewPosition(0, 0)
	if n := len(tokens); n > 0 {
		end = NewPosition(tokens[n-1].Pos.End(), 0)
	}

	return newSequence(append([]Token(nil), tokens...), end)
}

func newSequence(tokens []Token, end Position) *Sequence {
	return &Sequence{
		tokens: tokens,
		cursor: 0,
		end:    end,
	}
}

// Len returns the number of tokens not yet consumed
func (s *Sequence) Len() int {
	return len(s.tokens) - s.cursor
}

// Empty reports whether every token has been consumed
func (s *Sequence) Empty() bool {
	return s.Len() == 0
}

// Peek returns the front token without removing it
func (s *Sequence) Peek() (Token, bool) {
	if s.Empty() {
		return Token{}, false
	}

	return s.tokens[s.cursor], true
}

// Next removes and returns the front token
func (s *Sequence) Next() (Token, bool) {
	tok, ok := s.Peek()
	if ok {
		s.cursor++
	}

	return tok, ok
}

// ConsumeNumber removes the front token, which must be a NUM.
// It fails with ErrNotNumber if the sequence is exhausted or the token is not a NUM.
func (s *Sequence) ConsumeNumber() (Token, error) {
	tok, ok := s.Next()
	if !ok {
		return Token{}, &Error{Pos: s.end, Err: ErrNotNumber, Detail: "end of input"}
	}

	if _, ok := tok.Number(); !ok {
		return Token{}, &Error{Pos: tok.Pos, Err: ErrNotNumber, Detail: fmt.Sprintf("got %s %q", tok.Type, tok.Lexeme)}
	}

	return tok, nil
}

// End returns the position just past the last byte of the source
func (s *Sequence) End() Position {
	return s.end
}

// Tokens returns a copy of the tokens not yet consumed
func (s *Sequence) Tokens() []Token {
	return append([]Token(nil), s.tokens[s.cursor:]...)
}

// Text rebuilds source text from the remaining tokens, separated by single spaces
func (s *Sequence) Text() string {
	lexemes := make([]string, 0, s.Len())
	for _, tok := range s.tokens[s.cursor:] {
		lexemes = append(lexemes, tok.Lexeme)
	}

	return strings.Join(lexemes, " ")
}
