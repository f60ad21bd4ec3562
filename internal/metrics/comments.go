package metrics

import "strings"

// CommentCoverage returns comment lines / non-blank lines, or 0 for a file
// with no non-blank lines.
//
// A line counts as comment when it opens or continues a block comment, or
// starts (after leading whitespace) with the line marker. A line containing
// the block-open marker always sets the in-block flag, even when the block
// closes on the same line; that over-count is a tolerated approximation, as is
// the blindness to markers inside string literals.
func CommentCoverage(text, lineMarker, blockOpen, blockClose string) float64 {
	nonBlank := 0
	comments := 0
	inBlock := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonBlank++

		switch {
		case inBlock:
			comments++
			if blockClose != "" && strings.Contains(line, blockClose) {
				inBlock = false
			}
		case blockOpen != "" && strings.Contains(line, blockOpen):
			comments++
			inBlock = true
		case lineMarker != "" && strings.HasPrefix(trimmed, lineMarker):
			comments++
		}
	}

	if nonBlank == 0 {
		return 0
	}
	return float64(comments) / float64(nonBlank)
}
