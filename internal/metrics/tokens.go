package metrics

import "regexp"

// The token sets are scanned over the whole text for every language. Per-file
// precision was traded away for one uniform rule: a Python file is scanned for
// && and a Go file for elif, both simply counting zero.

var complexityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bif\b`),
	regexp.MustCompile(`\belse\s+if\b`),
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bwhile\b`),
	regexp.MustCompile(`\bcase\b`),
	regexp.MustCompile(`\bwhen\b`),
	regexp.MustCompile(`\bcatch\b`),
	regexp.MustCompile(`\?[^\n:?]*:`), // ternary
	regexp.MustCompile(`&&`),
	regexp.MustCompile(`\|\|`),
	regexp.MustCompile(`\bguard\b`),
	regexp.MustCompile(`\belif\b`),
}

var errorHandlingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btry\b`),
	regexp.MustCompile(`\bcatch\b`),
	regexp.MustCompile(`\bexcept\b`),
	regexp.MustCompile(`\bthrows\b`),
	regexp.MustCompile(`\bthrow\b`),
}

// ComplexityTokens counts branching tokens across the raw text.
func ComplexityTokens(text string) int {
	return countMatches(text, complexityPatterns)
}

// ErrorHandlingTokens counts error-handling keywords across the raw text.
func ErrorHandlingTokens(text string) int {
	return countMatches(text, errorHandlingPatterns)
}

func countMatches(text string, patterns []*regexp.Regexp) int {
	total := 0
	for _, re := range patterns {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}
