package lexer

import (
	"fmt"
)

type TokenType int

type Token struct {
	Type   TokenType // Type of the token
	Lexeme string    // Actual string from source code
	Value  int32     // Numeric value, only meaningful for NUM
	Symbol byte      // Operator symbol, only meaningful for PUNCT
	Pos    Position  // Position in source code
}

const (
	EOF   TokenType = iota // End of input (never produced by Tokenize, exhaustion ends the stream)
	NUM                    // num (number)
	PUNCT                  // + or -

	ILLEGAL // illegal token
)

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, pos Position) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

// NewNumber creates a NUM token holding val
func NewNumber(val int32, lexeme string, pos Position) Token {
	tok := NewToken(NUM, lexeme, pos)
	tok.Value = val
	return tok
}

// NewPunct creates a single character PUNCT token
func NewPunct(symbol byte, pos Position) Token {
	tok := NewToken(PUNCT, string(symbol), pos)
	tok.Symbol = symbol
	return tok
}

// Number returns the numeric value of a NUM token.
// ok is false for every other token type.
func (t Token) Number() (val int32, ok bool) {
	if t.Type != NUM {
		return 0, false
	}
	return t.Value, true
}

// Punct returns the operator symbol of a PUNCT token.
func (t Token) Punct() (symbol byte, ok bool) {
	if t.Type != PUNCT {
		return 0, false
	}
	return t.Symbol, true
}

// String returns a string representation of the Token
func (t Token) String() string {
	switch t.Type {
	case NUM:
		return fmt.Sprintf("T_{%s, %d, %s}", t.Type, t.Value, t.Pos)
	case PUNCT:
		return fmt.Sprintf("T_{%s, %q, %s}", t.Type, t.Symbol, t.Pos)
	default:
		return fmt.Sprintf("T_{%s, %q, %s}", t.Type, t.Lexeme, t.Pos)
	}
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "$"
	case NUM:
		return "num"
	case PUNCT:
		return "punct"
	case ILLEGAL:
		return "illegal"
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}
