package color_test

import (
	"rvcc/pkg/color"
	"testing"
)

func TestErrorAtPlain(t *testing.T) {
	enabled := color.IsColorEnabled()
	color.EnableColor(false)
	defer color.EnableColor(enabled)

	tests := []struct {
		source   string
		offset   int
		expected string
	}{
		{"1 * 2", 2, "Error at 2: invalid token\n1 * 2\n  ^"},
		{"1 +", 3, "Error at 3: invalid token\n1 +\n   ^"},
		{"", 0, "Error at 0: invalid token\n\n^"},
		{"12", 99, "Error at 2: invalid token\n12\n  ^"},
		{"　1 x", 5, "Error at 5: invalid token\n　1 x\n    ^"},
	}

	for _, test := range tests {
		got := color.ErrorAt(test.source, test.offset, "invalid token")
		if got != test.expected {
			t.Errorf("ErrorAt(%q, %d): expected %q, got %q", test.source, test.offset, test.expected, got)
		}
	}
}

func TestColorizeDisabled(t *testing.T) {
	color.EnableColor(false)

	if got := color.RedText("x"); got != "x" {
		t.Errorf("expected plain text, got %q", got)
	}
	if got := color.BoldText("x"); got != "x" {
		t.Errorf("expected plain text, got %q", got)
	}
	if color.IsColorEnabled() {
		t.Errorf("expected color to be disabled")
	}
}
