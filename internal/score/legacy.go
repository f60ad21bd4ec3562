package score

import (
	"math"

	"github.com/dotcommander/codemess/internal/types"
)

// Details is the legacy five-bucket breakdown kept for report compatibility
// with earlier generations of the tool. Each bucket is the rounded weighted
// contribution of its metrics in score points, so the buckets sum to the
// composite score within rounding:
//
//	readability = function length + naming
//	complexity  = branching tokens
//	comments    = comment coverage
//	structure   = nesting + duplication
//	standards   = error handling
//
// Same polarity as the score: higher = messier.
type Details struct {
	Readability int `json:"readability"`
	Complexity  int `json:"complexity"`
	Comments    int `json:"comments"`
	Structure   int `json:"structure"`
	Standards   int `json:"standards"`
}

// Details projects a MetricSet onto the legacy buckets.
func (c *Composer) Details(m types.MetricSet) Details {
	n := c.normalize(m)
	points := func(v float64) int { return int(math.Round(100 * v)) }
	return Details{
		Readability: points(c.weights.FunctionLength*n.functionLength + c.weights.Naming*n.naming),
		Complexity:  points(c.weights.Complexity * n.complexity),
		Comments:    points(c.weights.Comments * n.comments),
		Structure:   points(c.weights.Structure*n.structure + c.weights.Duplication*n.duplication),
		Standards:   points(c.weights.ErrorHandling * n.errorHandling),
	}
}
