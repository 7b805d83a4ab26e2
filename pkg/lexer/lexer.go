package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input    string // input string to be tokenized
	length   int    // length of the input string
	position int    // current byte offset in the input string
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
	}
}

// Tokenize scans the whole input and returns its tokens in source order.
// No EOF token is appended.
func Tokenize(input string) (*Sequence, error) {
	l := NewLexer(input)
	tokens := make([]Token, 0)

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		if tok.Type == EOF {
			break
		}

		tokens = append(tokens, tok)
	}

	return newSequence(tokens, NewPosition(len(input), 0)), nil
}

// Get the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		return NewToken(EOF, "", NewPosition(l.position, 0)), nil
	}

	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		r, size := utf8.DecodeRuneInString(remaining)
		return Token{}, &Error{
			Pos:    NewPosition(l.position, size),
			Err:    ErrInvalidToken,
			Detail: fmt.Sprintf("%q (remaining %q)", r, remaining),
		}
	}

	pos := NewPosition(l.position, len(lexeme))

	var tok Token
	switch tokenType {
	case NUM:
		// The regex guarantees only digits, so the sole failure is range.
		val, err := strconv.ParseInt(lexeme, 10, 32)
		if err != nil {
			return Token{}, &Error{
				Pos:    pos,
				Err:    ErrNumberOverflow,
				Detail: lexeme,
			}
		}
		tok = NewNumber(int32(val), lexeme, pos)
	case PUNCT:
		tok = NewPunct(lexeme[0], pos)
	default:
		tok = NewToken(tokenType, lexeme, pos)
	}

	l.advance(len(lexeme))

	return tok, nil
}

// View next token without advancing the position
func (l *Lexer) Peek() (Token, error) {
	cpos := l.position

	token, err := l.NextToken()

	l.position = cpos

	return token, err
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Skip any unicode whitespace
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsSpace(r) {
			break
		}
		l.position += size
	}
}

// Advance the lexer position by n bytes
func (l *Lexer) advance(n int) {
	l.position = min(l.position+n, l.length)
}
