// Package score turns a MetricSet into the composite 0-100 mess score.
//
// Polarity: higher score = messier code. This is the single documented
// direction for every score, grade, and JSON field this tool emits; the
// historical higher-is-better variant is not exposed anywhere.
package score

import (
	"math"

	"github.com/dotcommander/codemess/internal/types"
)

// Weights is the fixed weighting of the normalized sub-metrics. The fields
// must sum to 1.0 (validated at config load, not here).
type Weights struct {
	Complexity     float64 `json:"complexity"`
	Structure      float64 `json:"structure"`
	FunctionLength float64 `json:"functionLength"`
	Naming         float64 `json:"naming"`
	Duplication    float64 `json:"duplication"`
	Comments       float64 `json:"comments"`
	ErrorHandling  float64 `json:"errorHandling"`
}

// DefaultWeights returns the calibrated weight table (sum 1.00).
func DefaultWeights() Weights {
	return Weights{
		Complexity:     0.22,
		Structure:      0.18,
		FunctionLength: 0.15,
		Naming:         0.12,
		Duplication:    0.13,
		Comments:       0.12,
		ErrorHandling:  0.08,
	}
}

// Range is a linear normalization interval; raw values outside it clamp.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Ranges holds the calibration intervals for the raw metrics that need one.
// CommentCoverage and DuplicationRatio are already in [0,1].
type Ranges struct {
	ComplexityTokens    Range `json:"complexityTokens"`
	MaxNesting          Range `json:"maxNesting"`
	AvgFunctionLines    Range `json:"avgFunctionLines"`
	NamingSmells        Range `json:"namingSmells"`
	ErrorHandlingTokens Range `json:"errorHandlingTokens"`
}

// DefaultRanges returns the calibration table.
func DefaultRanges() Ranges {
	return Ranges{
		ComplexityTokens:    Range{0, 50},
		MaxNesting:          Range{0, 8},
		AvgFunctionLines:    Range{0, 120},
		NamingSmells:        Range{0, 200},
		ErrorHandlingTokens: Range{0, 10},
	}
}

// Normalize maps v linearly onto [0,1] against r, clamping outside it.
// A degenerate range (hi <= lo) yields 0 rather than dividing by zero.
func Normalize(v float64, r Range) float64 {
	if r.Hi <= r.Lo {
		return 0
	}
	n := (v - r.Lo) / (r.Hi - r.Lo)
	return clamp01(n)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Composer computes composite scores from a weight and calibration table.
// It is stateless and safe for concurrent use.
type Composer struct {
	weights Weights
	ranges  Ranges
}

// NewComposer creates a Composer. Callers are responsible for supplying a
// weight table that sums to 1.
func NewComposer(w Weights, r Ranges) *Composer {
	return &Composer{weights: w, ranges: r}
}

// NewDefaultComposer creates a Composer with the calibrated tables.
func NewDefaultComposer() *Composer {
	return NewComposer(DefaultWeights(), DefaultRanges())
}

// normalized holds each sub-metric mapped onto [0,1], worse = higher.
type normalized struct {
	complexity     float64
	structure      float64
	functionLength float64
	naming         float64
	duplication    float64
	comments       float64
	errorHandling  float64
}

func (c *Composer) normalize(m types.MetricSet) normalized {
	return normalized{
		complexity:     Normalize(float64(m.ComplexityTokens), c.ranges.ComplexityTokens),
		structure:      Normalize(float64(m.MaxNesting), c.ranges.MaxNesting),
		functionLength: Normalize(m.AvgFunctionLines, c.ranges.AvgFunctionLines),
		naming:         Normalize(float64(m.NamingSmells.Total()), c.ranges.NamingSmells),
		duplication:    clamp01(m.DuplicationRatio),
		// Inverted metrics: more comments and more error handling are better,
		// so their absence is what raises the mess score.
		comments:      1 - clamp01(m.CommentCoverage),
		errorHandling: 1 - Normalize(float64(m.ErrorHandlingCount), c.ranges.ErrorHandlingTokens),
	}
}

// Composite returns the weighted sum in [0,1] before scaling.
func (c *Composer) Composite(m types.MetricSet) float64 {
	n := c.normalize(m)
	return c.weights.Complexity*n.complexity +
		c.weights.Structure*n.structure +
		c.weights.FunctionLength*n.functionLength +
		c.weights.Naming*n.naming +
		c.weights.Duplication*n.duplication +
		c.weights.Comments*n.comments +
		c.weights.ErrorHandling*n.errorHandling
}

// Score returns round(100 × composite), always in [0,100] for weights that
// sum to 1 since every normalized term is clamped to [0,1].
func (c *Composer) Score(m types.MetricSet) int {
	return int(math.Round(100 * c.Composite(m)))
}

// GradeFromScore buckets a mess score into A (cleanest) through E (messiest).
func GradeFromScore(score int) string {
	switch {
	case score < 20:
		return types.GradeA
	case score < 40:
		return types.GradeB
	case score < 60:
		return types.GradeC
	case score < 80:
		return types.GradeD
	default:
		return types.GradeE
	}
}
