// Package metrics implements the seven lexical text metrics behind the mess
// score. Every extractor is a pure function of (text, language hints): no
// parsing, no ASTs, just line iteration and regex counting. Token counts are
// deliberately language-agnostic (a Go file is scanned for elif too); only the
// comment markers and the function-start pattern vary per language.
package metrics

import (
	"regexp"

	"github.com/dotcommander/codemess/internal/language"
	"github.com/dotcommander/codemess/internal/types"
)

// Extract computes the full MetricSet for one source text. The registry
// supplies comment markers and the function-start pattern for tag; unknown
// tags degrade to the default line comment and no function pattern. A nil
// registry is tolerated and behaves like an unknown tag.
func Extract(text string, reg *language.Registry, tag string) types.MetricSet {
	lineMarker := language.DefaultLineComment
	var blockOpen, blockClose string
	var funcRe *regexp.Regexp

	if reg != nil {
		lineMarker, blockOpen, blockClose = reg.Markers(tag)
		if def, ok := reg.Lookup(tag); ok {
			funcRe = def.FunctionRegexp()
		}
	}

	return types.MetricSet{
		CommentCoverage:    CommentCoverage(text, lineMarker, blockOpen, blockClose),
		ComplexityTokens:   ComplexityTokens(text),
		MaxNesting:         MaxNesting(text),
		AvgFunctionLines:   AvgFunctionLines(text, funcRe),
		NamingSmells:       NamingSmells(text),
		ErrorHandlingCount: ErrorHandlingTokens(text),
		DuplicationRatio:   DuplicationRatio(text),
	}
}
