package metrics

import (
	"regexp"
	"strings"

	"github.com/dotcommander/codemess/internal/types"
)

var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

const (
	longNameLen      = 30
	screamingNameLen = 8
)

// NamingSmells tallies identifier-shaped tokens anywhere in the text,
// including comments and string literals, without deduplication. A token can
// count as both long and screaming.
func NamingSmells(text string) types.NamingCounts {
	var counts types.NamingCounts
	for _, tok := range identPattern.FindAllString(text, -1) {
		if len(tok) == 1 {
			counts.Short++
			continue
		}
		if len(tok) >= longNameLen {
			counts.Long++
		}
		if len(tok) >= screamingNameLen && isScreaming(tok) {
			counts.Screaming++
		}
	}
	return counts
}

// isScreaming reports a fully upper-case token (containing at least one
// letter; digits and underscores are allowed).
func isScreaming(tok string) bool {
	return tok == strings.ToUpper(tok) && tok != strings.ToLower(tok)
}
