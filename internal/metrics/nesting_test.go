package metrics

import "testing"

func TestBraceDepth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"no braces", "x = 1\n", 0},
		{"single level", "func f() {\n}\n", 1},
		{"nested", "{ { { } } }", 3},
		{"reopened", "{ } { { } }", 2},
		{"unmatched closers floor at zero", "} } } { }", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BraceDepth(tt.text); got != tt.want {
				t.Errorf("BraceDepth(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestIndentDepth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"flat", "a\nb\n", 0},
		{"four spaces", "    a\n", 1},
		{"eight spaces", "        a\n", 2},
		{"three spaces rounds down", "   a\n", 0},
		{"tabs count as one each", "\t\t\t\ta\n", 1},
		{"deepest line wins", "    a\n            b\n    c\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndentDepth(tt.text); got != tt.want {
				t.Errorf("IndentDepth(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestMaxNestingTakesStrategyMax(t *testing.T) {
	// Brace-heavy text with no indentation: brace strategy wins.
	braces := "{ { { { } } } }"
	if got := MaxNesting(braces); got != 4 {
		t.Errorf("MaxNesting(braces) = %d, want 4", got)
	}

	// Indentation-only text (python style): indent strategy wins.
	indented := "def f():\n    if x:\n        if y:\n            return\n"
	if got := MaxNesting(indented); got != 3 {
		t.Errorf("MaxNesting(indented) = %d, want 3", got)
	}
}
