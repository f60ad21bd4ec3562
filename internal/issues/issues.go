// Package issues generates human-readable findings from a file's text and its
// MetricSet. Rules run in a fixed order and are independent; findings never
// feed back into the score. Callers may truncate the list for display.
package issues

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dotcommander/codemess/internal/types"
)

// Thresholds configures the rule triggers. Zero values are not special-cased;
// construct via DefaultThresholds and override fields as needed.
type Thresholds struct {
	MaxFileLines       int     `json:"maxFileLines"`       // non-blank lines
	MaxLineLength      int     `json:"maxLineLength"`      // characters
	MaxReportedLines   int     `json:"maxReportedLines"`   // long-line numbers shown
	NestingAlert       int     `json:"nestingAlert"`       // max_nesting >= alert
	MinCommentCoverage float64 `json:"minCommentCoverage"` // coverage < min
	MaxDuplication     float64 `json:"maxDuplication"`     // ratio > max
	MaxComplexity      int     `json:"maxComplexity"`      // tokens > max
}

// DefaultThresholds returns the calibrated rule triggers.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxFileLines:       800,
		MaxLineLength:      160,
		MaxReportedLines:   5,
		NestingAlert:       6,
		MinCommentCoverage: 0.05,
		MaxDuplication:     0.20,
		MaxComplexity:      80,
	}
}

// dangerousCallPattern is carried over from the first generation of the tool.
var dangerousCallPattern = regexp.MustCompile(`eval|exec|system\(|popen|md5|sha1|password`)

// Diagnoser evaluates the ordered rule list. Stateless, safe for concurrent
// use.
type Diagnoser struct {
	t Thresholds
}

// NewDiagnoser creates a Diagnoser with the given thresholds.
func NewDiagnoser(t Thresholds) *Diagnoser {
	return &Diagnoser{t: t}
}

// Diagnose returns the findings for one file, in rule order.
func (d *Diagnoser) Diagnose(text string, m types.MetricSet) []string {
	var findings []string

	nonBlank, longLines := scanLines(text, d.t.MaxLineLength)

	if nonBlank > d.t.MaxFileLines {
		findings = append(findings, fmt.Sprintf(
			"file has %d non-blank lines (limit %d); consider splitting it", nonBlank, d.t.MaxFileLines))
	}

	if len(longLines) > 0 {
		shown := longLines
		if len(shown) > d.t.MaxReportedLines {
			shown = shown[:d.t.MaxReportedLines]
		}
		findings = append(findings, fmt.Sprintf(
			"%d line(s) exceed %d characters (e.g. line %s)",
			len(longLines), d.t.MaxLineLength, joinLineNumbers(shown)))
	}

	if m.MaxNesting >= d.t.NestingAlert {
		findings = append(findings, fmt.Sprintf(
			"nesting depth reaches %d (alert at %d); flatten the control flow", m.MaxNesting, d.t.NestingAlert))
	}

	if m.CommentCoverage < d.t.MinCommentCoverage {
		findings = append(findings, fmt.Sprintf(
			"comment coverage is %.1f%% (below %.0f%%)", 100*m.CommentCoverage, 100*d.t.MinCommentCoverage))
	}

	if m.DuplicationRatio > d.t.MaxDuplication {
		findings = append(findings, fmt.Sprintf(
			"duplicated 3-line blocks cover %.1f%% of the file (limit %.0f%%)",
			100*m.DuplicationRatio, 100*d.t.MaxDuplication))
	}

	if m.ComplexityTokens > d.t.MaxComplexity {
		findings = append(findings, fmt.Sprintf(
			"%d branching tokens (limit %d); break up the decision logic", m.ComplexityTokens, d.t.MaxComplexity))
	}

	if n := len(dangerousCallPattern.FindAllStringIndex(text, -1)); n > 0 {
		findings = append(findings, fmt.Sprintf(
			"%d dangerous call(s) detected (eval/exec/system/popen/md5/sha1/password)", n))
	}

	return findings
}

// scanLines counts non-blank lines and collects 1-based numbers of lines
// longer than maxLen characters.
func scanLines(text string, maxLen int) (nonBlank int, longLines []int) {
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			nonBlank++
		}
		if utf8.RuneCountInString(line) > maxLen {
			longLines = append(longLines, i+1)
		}
	}
	return nonBlank, longLines
}

func joinLineNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
