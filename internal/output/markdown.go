package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/codemess/internal/i18n"
	"github.com/dotcommander/codemess/internal/types"
)

// MarkdownFormatter renders the report as Markdown.
type MarkdownFormatter struct {
	summary    bool
	topIssues  int
	labels     i18n.Labels
	outputFile string
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(summary bool, topIssues int, labels i18n.Labels, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		summary:    summary,
		topIssues:  topIssues,
		labels:     labels,
		outputFile: outputFile,
	}
}

// Format writes the Markdown report to the output file or stdout.
func (f *MarkdownFormatter) Format(report *types.AnalysisReport) error {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# %s\n\n", f.labels.ReportHeader))
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("- %s: %d (%s)\n", f.labels.MessScore, report.Overall, report.Grade))
	builder.WriteString(fmt.Sprintf("- %s: %d\n\n", f.labels.Files, report.FileCount))

	if f.summary {
		return f.write(builder.String())
	}

	if report.FileCount == 0 {
		builder.WriteString("*No files found to score.*\n")
		return f.write(builder.String())
	}

	builder.WriteString(fmt.Sprintf("| %s | %s | %s | File |\n", f.labels.MessScore, f.labels.Grade, f.labels.Language))
	builder.WriteString("|---|---|---|---|\n")
	for _, result := range report.Results {
		builder.WriteString(fmt.Sprintf("| %d | %s | %s | `%s` |\n",
			result.Score, result.Grade, result.Language, result.Path))
	}
	builder.WriteString("\n")

	for _, result := range report.Results {
		if len(result.Issues) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("## %s\n\n", result.Path))
		builder.WriteString(fmt.Sprintf("%s:\n\n", f.labels.Findings))
		shown := result.Issues
		more := 0
		if f.topIssues > 0 && len(shown) > f.topIssues {
			more = len(shown) - f.topIssues
			shown = shown[:f.topIssues]
		}
		for _, issue := range shown {
			builder.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		if more > 0 {
			builder.WriteString(fmt.Sprintf("- *… and %d more*\n", more))
		}
		builder.WriteString("\n")
	}

	return f.write(builder.String())
}

func (f *MarkdownFormatter) write(content string) error {
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(content)
	return nil
}
