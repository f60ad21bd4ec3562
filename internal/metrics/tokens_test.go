package metrics

import "testing"

func TestComplexityTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"no branching", "x = 1\ny = 2\n", 0},
		{"plain if", "if x > 1 {\n}\n", 1},
		// "else if" counts its embedded "if" plus the "else if" pattern.
		{"else if", "if a {\n} else if b {\n}\n", 3},
		{"loops", "for i := 0; i < 3; i++ {\nwhile (true) {\n", 2},
		{"boolean operators", "a && b || c\n", 2},
		{"ternary", "v = x ? y : z\n", 1},
		{"switch case", "switch x {\ncase 1:\ncase 2:\n}\n", 2},
		// Cross-language uniformity: elif counts even in brace languages.
		{"elif in any language", "elif x:\n", 1},
		{"guard and when", "guard let x else\nwhen x ->\n", 2},
		{"catch", "try {\n} catch (e) {\n}\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComplexityTokens(tt.text); got != tt.want {
				t.Errorf("ComplexityTokens(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestErrorHandlingTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"none", "x = compute()\n", 0},
		{"try catch throw", "try {\n} catch (e) {\n  throw e\n}\n", 3},
		{"python except", "try:\nexcept ValueError:\n", 2},
		// "throws" must not double-count as "throw".
		{"java throws", "void f() throws IOException {\n", 1},
		{"throws and throw", "throws\nthrow\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorHandlingTokens(tt.text); got != tt.want {
				t.Errorf("ErrorHandlingTokens(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
