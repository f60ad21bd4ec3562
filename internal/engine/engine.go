// Package engine runs the per-file scoring pipeline over a discovered file
// set and assembles the AnalysisReport. Extractors, composer, and diagnoser
// are all pure, so files are scored one worker per core with no locking;
// results land in pre-indexed slots and ordering is resolved after the
// barrier.
package engine

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/codemess/internal/issues"
	"github.com/dotcommander/codemess/internal/language"
	"github.com/dotcommander/codemess/internal/metrics"
	"github.com/dotcommander/codemess/internal/score"
	"github.com/dotcommander/codemess/internal/types"
)

// Engine scores SourceUnits into ScoreResults.
type Engine struct {
	registry  *language.Registry
	composer  *score.Composer
	diagnoser *issues.Diagnoser
	workers   int
}

// New creates an Engine. workers below 1 is treated as 1.
func New(registry *language.Registry, composer *score.Composer, diagnoser *issues.Diagnoser, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		registry:  registry,
		composer:  composer,
		diagnoser: diagnoser,
		workers:   workers,
	}
}

// ScoreUnit scores a single file.
func (e *Engine) ScoreUnit(unit types.SourceUnit) types.ScoreResult {
	m := metrics.Extract(unit.Text, e.registry, unit.Language)
	s := e.composer.Score(m)
	return types.ScoreResult{
		Path:     unit.Path,
		Language: unit.Language,
		Score:    s,
		Grade:    score.GradeFromScore(s),
		Metrics:  m,
		Issues:   e.diagnoser.Diagnose(unit.Text, m),
	}
}

// Run scores all units in parallel and builds the report: results sorted by
// score descending, ties kept in discovery order; overall is the rounded mean
// score or 0 for an empty set.
func (e *Engine) Run(ctx context.Context, units []types.SourceUnit) (types.AnalysisReport, error) {
	results := make([]types.ScoreResult, len(units))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range units {
		g.Go(func() error {
			results[i] = e.ScoreUnit(units[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.AnalysisReport{}, err
	}

	// Discovery order is the slice order; a stable sort preserves it for ties.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	overall := 0
	if len(results) > 0 {
		sum := 0
		for _, r := range results {
			sum += r.Score
		}
		overall = int(math.Round(float64(sum) / float64(len(results))))
	}

	return types.AnalysisReport{
		Overall:   overall,
		Grade:     score.GradeFromScore(overall),
		FileCount: len(results),
		Results:   results,
	}, nil
}
