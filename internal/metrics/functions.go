package metrics

import (
	"regexp"
	"strings"
)

// FunctionSpans returns the line count of each detected function span. Spans
// are the half-open intervals between consecutive matches of the language's
// function-start pattern, the last one running to end of text. This is a span
// heuristic, not a parser: nested or single-line definitions can distort the
// boundaries.
func FunctionSpans(text string, funcRe *regexp.Regexp) []int {
	if funcRe == nil || text == "" {
		return nil
	}

	matches := funcRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	// Translate byte offsets into 0-based line numbers with one forward scan.
	startLines := make([]int, 0, len(matches))
	line, prev := 0, 0
	for _, m := range matches {
		line += strings.Count(text[prev:m[0]], "\n")
		prev = m[0]
		startLines = append(startLines, line)
	}

	totalLines := strings.Count(text, "\n") + 1
	spans := make([]int, 0, len(startLines))
	for i, start := range startLines {
		end := totalLines
		if i+1 < len(startLines) {
			end = startLines[i+1]
		}
		spans = append(spans, end-start)
	}
	return spans
}

// AvgFunctionLines returns the mean span length, or 0 when the language has no
// pattern or the text has no matches.
func AvgFunctionLines(text string, funcRe *regexp.Regexp) float64 {
	spans := FunctionSpans(text, funcRe)
	if len(spans) == 0 {
		return 0
	}
	total := 0
	for _, n := range spans {
		total += n
	}
	return float64(total) / float64(len(spans))
}
