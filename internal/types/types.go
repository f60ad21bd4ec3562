// Package types provides shared types used across the codemess codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// SourceUnit is one discovered file ready for scoring: relative path, resolved
// language tag, and decoded text. Discovery creates it; the engine discards it
// after the ScoreResult is built.
type SourceUnit struct {
	Path     string
	Language string
	Text     string
}

// NamingCounts holds the three identifier-smell tallies.
type NamingCounts struct {
	Short     int `json:"short"`
	Long      int `json:"long"`
	Screaming int `json:"screaming"`
}

// Total returns the combined smell count used for normalization.
func (n NamingCounts) Total() int {
	return n.Short + n.Long + n.Screaming
}

// MetricSet holds the raw values of the seven text metrics. It is derived
// deterministically from (text, language); two computations of the same input
// never differ.
type MetricSet struct {
	CommentCoverage    float64      `json:"comment_coverage"`
	ComplexityTokens   int          `json:"complexity_tokens"`
	MaxNesting         int          `json:"max_nesting"`
	AvgFunctionLines   float64      `json:"avg_function_lines"`
	NamingSmells       NamingCounts `json:"naming_smells"`
	ErrorHandlingCount int          `json:"error_handling_tokens"`
	DuplicationRatio   float64      `json:"duplication_ratio"`
}

// Grade constants, best to worst. Scores here are mess scores: higher is
// worse, so A is the lowest bucket.
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeE = "E"
)

// ScoreResult is the per-file outcome: the composite mess score (0-100,
// higher = messier), its grade, the raw metrics, and the diagnoser findings.
type ScoreResult struct {
	Path     string    `json:"file"`
	Language string    `json:"language"`
	Score    int       `json:"score"`
	Grade    string    `json:"grade"`
	Metrics  MetricSet `json:"metrics"`
	Issues   []string  `json:"issues,omitempty"`
}

// AnalysisReport aggregates one run. Results are ordered by score descending,
// ties in discovery order. Overall is the rounded mean score, 0 for no files.
type AnalysisReport struct {
	Overall   int           `json:"overall"`
	Grade     string        `json:"grade"`
	FileCount int           `json:"file_count"`
	Results   []ScoreResult `json:"results"`
}
