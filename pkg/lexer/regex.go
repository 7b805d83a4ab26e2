package lexer

import (
	"regexp"
)

// Token regex patterns. Only ASCII digits form numbers.
var tokenRegexes = map[TokenType]*regexp.Regexp{
	NUM:   regexp.MustCompile(`^[0-9]+`),
	PUNCT: regexp.MustCompile(`^[+-]`),
}

// Token precedence order for matching
var tokenPrecedenceOrder = []TokenType{NUM, PUNCT}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	return tokenRegexes[t]
}

// Match the token at the start of the string.
// Digit runs are matched greedily, so "123" is always one NUM.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex := tokenType.Regex(); regex != nil {
			if match := regex.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}
