package lexer_test

import (
	"rvcc/pkg/lexer"
	"testing"
)

func TestTokens(t *testing.T) {
	input := "  12 + 34 - 5 "
	seq, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}

	expected := []struct {
		typ    lexer.TokenType
		value  int32
		symbol byte
		pos    lexer.Position
	}{
		{lexer.NUM, 12, 0, lexer.NewPosition(2, 2)},
		{lexer.PUNCT, 0, '+', lexer.NewPosition(5, 1)},
		{lexer.NUM, 34, 0, lexer.NewPosition(7, 2)},
		{lexer.PUNCT, 0, '-', lexer.NewPosition(10, 1)},
		{lexer.NUM, 5, 0, lexer.NewPosition(12, 1)},
	}

	if seq.Len() != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), seq.Len())
	}

	for i, exp := range expected {
		tok, ok := seq.Next()
		if !ok {
			t.Fatalf("Token %d: sequence exhausted early", i)
		}
		if tok.Type != exp.typ {
			t.Errorf("Token %d: expected %s, got %s", i, exp.typ, tok.Type)
		}
		if tok.Value != exp.value {
			t.Errorf("Token %d: expected value %d, got %d", i, exp.value, tok.Value)
		}
		if tok.Symbol != exp.symbol {
			t.Errorf("Token %d: expected symbol %q, got %q", i, exp.symbol, tok.Symbol)
		}
		if tok.Pos != exp.pos {
			t.Errorf("Token %d: expected position %s, got %s", i, exp.pos, tok.Pos)
		}
	}

	if !seq.Empty() {
		t.Errorf("expected sequence to be drained, %d tokens left", seq.Len())
	}
}

func TestAlternation(t *testing.T) {
	tests := []struct {
		input     string
		operators int
	}{
		{"5", 0},
		{"1+2", 1},
		{"1 - 2 + 3", 2},
		{"10-20-30-40", 3},
		{"\t7 +\n8 -\r9 + 0 ", 3},
	}

	for _, test := range tests {
		seq, err := lexer.Tokenize(test.input)
		if err != nil {
			t.Errorf("Tokenize(%q) failed: %v", test.input, err)
			continue
		}

		tokens := seq.Tokens()
		if len(tokens) != 2*test.operators+1 {
			t.Errorf("Input %q: expected %d tokens, got %d", test.input, 2*test.operators+1, len(tokens))
			continue
		}

		for i, tok := range tokens {
			want := lexer.NUM
			if i%2 == 1 {
				want = lexer.PUNCT
			}
			if tok.Type != want {
				t.Errorf("Input %q token %d: expected %s, got %s", test.input, i, want, tok.Type)
			}
		}
	}
}

func TestWhitespace(t *testing.T) {
	tests := []struct {
		input       string
		description string
	}{
		{"", "empty"},
		{"   ", "spaces"},
		{"\t\n\r\v\f", "ascii control whitespace"},
		{"  　", "unicode whitespace"},
	}

	for _, test := range tests {
		seq, err := lexer.Tokenize(test.input)
		if err != nil {
			t.Errorf("Input %q (%s): unexpected error %v", test.input, test.description, err)
			continue
		}
		if !seq.Empty() {
			t.Errorf("Input %q (%s): expected no tokens, got %d", test.input, test.description, seq.Len())
		}
	}
}

func TestWhitespaceInvariance(t *testing.T) {
	compact := "12+34-5"
	spaced := []string{
		"12 + 34 - 5",
		"  12+  34 -5\t",
		"\n12\n+\n34\n-\n5\n",
		"12 + 34-　5",
	}

	want, err := lexer.Tokenize(compact)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", compact, err)
	}
	wantTokens := want.Tokens()

	for _, input := range spaced {
		got, err := lexer.Tokenize(input)
		if err != nil {
			t.Errorf("Tokenize(%q) failed: %v", input, err)
			continue
		}

		gotTokens := got.Tokens()
		if len(gotTokens) != len(wantTokens) {
			t.Errorf("Input %q: expected %d tokens, got %d", input, len(wantTokens), len(gotTokens))
			continue
		}
		for i := range wantTokens {
			if !sameKind(gotTokens[i], wantTokens[i]) {
				t.Errorf("Input %q token %d: expected %s, got %s", input, i, wantTokens[i], gotTokens[i])
			}
		}
	}
}

func TestRetokenize(t *testing.T) {
	inputs := []string{"5", "12 + 34 - 5", "  1+2+3  ", "007 - 0"}

	for _, input := range inputs {
		first, err := lexer.Tokenize(input)
		if err != nil {
			t.Errorf("Tokenize(%q) failed: %v", input, err)
			continue
		}

		text := first.Text()
		second, err := lexer.Tokenize(text)
		if err != nil {
			t.Errorf("Tokenize(%q) of rebuilt text failed: %v", text, err)
			continue
		}

		a, b := first.Tokens(), second.Tokens()
		if len(a) != len(b) {
			t.Errorf("Input %q: rebuilt %q has %d tokens, want %d", input, text, len(b), len(a))
			continue
		}
		for i := range a {
			if !sameKind(a[i], b[i]) || a[i].Lexeme != b[i].Lexeme {
				t.Errorf("Input %q token %d: expected %s, got %s", input, i, a[i], b[i])
			}
		}
	}
}

// sameKind compares tokens ignoring where they were found
func sameKind(a, b lexer.Token) bool {
	return a.Type == b.Type && a.Value == b.Value && a.Symbol == b.Symbol
}

func TestNextToken(t *testing.T) {
	mylexer := lexer.NewLexer(" 7 - 8 ")

	peeked, err := mylexer.Peek()
	if err != nil || peeked.Type != lexer.NUM {
		t.Fatalf("Peek: expected NUM, got %s (%v)", peeked, err)
	}

	expectedTokens := []lexer.TokenType{lexer.NUM, lexer.PUNCT, lexer.NUM, lexer.EOF, lexer.EOF}
	for i, expected := range expectedTokens {
		token, err := mylexer.NextToken()
		if err != nil {
			t.Fatalf("Token %d: unexpected error %v", i, err)
		}
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}

	if mylexer.HasMore() {
		t.Errorf("expected input to be exhausted")
	}
}
