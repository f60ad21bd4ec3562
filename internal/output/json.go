package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/codemess/internal/score"
	"github.com/dotcommander/codemess/internal/types"
)

// JSONFormatter renders the report as JSON. The per-file layout keeps the
// legacy projection `{file, language, score, details:{readability,
// complexity, comments, structure, standards}}` so output stays diffable
// against reports from earlier tool generations. Scores keep the one
// documented polarity: higher = messier.
type JSONFormatter struct {
	indent     bool
	outputFile string
	composer   *score.Composer
}

// NewJSONFormatter creates a JSONFormatter. The composer computes the legacy
// detail buckets from each result's metrics.
func NewJSONFormatter(indent bool, outputFile string, composer *score.Composer) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
		composer:   composer,
	}
}

// Format marshals the report and writes it to the output file or stdout.
func (f *JSONFormatter) Format(report *types.AnalysisReport) error {
	jsonReport := JSONReport{
		Header: JSONHeader{
			Tool:      "codemess",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			Overall:   report.Overall,
			Grade:     report.Grade,
			FileCount: report.FileCount,
		},
		Results: make([]JSONResult, len(report.Results)),
	}

	for i, result := range report.Results {
		jsonReport.Results[i] = JSONResult{
			File:     result.Path,
			Language: result.Language,
			Score:    result.Score,
			Grade:    result.Grade,
			Details:  f.composer.Details(result.Metrics),
			Metrics:  result.Metrics,
			Issues:   result.Issues,
		}
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(jsonReport, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(jsonReport)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}

// JSONReport is the complete JSON document.
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains the run aggregate.
type JSONSummary struct {
	Overall   int    `json:"overall"`
	Grade     string `json:"grade"`
	FileCount int    `json:"file_count"`
}

// JSONResult is one file in the legacy layout.
type JSONResult struct {
	File     string          `json:"file"`
	Language string          `json:"language"`
	Score    int             `json:"score"`
	Grade    string          `json:"grade"`
	Details  score.Details   `json:"details"`
	Metrics  types.MetricSet `json:"metrics"`
	Issues   []string        `json:"issues,omitempty"`
}
