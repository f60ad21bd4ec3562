package metrics

import "strings"

// Nesting depth is estimated by independent strategies combined with max, so
// brace languages and indentation languages share one metric without
// per-language branching. New strategies (say, block/end counting) only need
// an entry in depthStrategies.

const indentUnit = 4

type depthStrategy func(text string) int

var depthStrategies = []depthStrategy{BraceDepth, IndentDepth}

// MaxNesting returns the maximum estimate across all depth strategies.
func MaxNesting(text string) int {
	deepest := 0
	for _, strategy := range depthStrategies {
		if d := strategy(text); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// BraceDepth tracks the deepest {...} nesting seen in a character scan,
// floored at zero on unmatched closers. String and comment context is
// ignored; that imprecision is accepted.
func BraceDepth(text string) int {
	depth, deepest := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
			if depth > deepest {
				deepest = depth
			}
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return deepest
}

// IndentDepth returns the deepest leading-whitespace depth over all lines,
// at one level per four whitespace characters.
func IndentDepth(text string) int {
	deepest := 0
	for _, line := range strings.Split(text, "\n") {
		leading := 0
		for _, r := range line {
			if r != ' ' && r != '\t' {
				break
			}
			leading++
		}
		if d := leading / indentUnit; d > deepest {
			deepest = d
		}
	}
	return deepest
}
