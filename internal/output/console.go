package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/codemess/internal/i18n"
	"github.com/dotcommander/codemess/internal/types"
)

// ConsoleFormatter renders the report for terminal display.
type ConsoleFormatter struct {
	quiet     bool
	verbose   bool
	summary   bool
	topIssues int
	labels    i18n.Labels
	colorize  bool
	startTime time.Time
}

// NewConsoleFormatter creates a ConsoleFormatter. topIssues bounds how many
// findings print per file; 0 hides them entirely.
func NewConsoleFormatter(quiet, verbose, summary bool, topIssues int, labels i18n.Labels) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:     quiet,
		verbose:   verbose,
		summary:   summary,
		topIssues: topIssues,
		labels:    labels,
		colorize:  true,
		startTime: time.Now(),
	}
}

// Format writes the report to stdout. Results arrive already ranked messiest
// first by the engine.
func (f *ConsoleFormatter) Format(report *types.AnalysisReport) error {
	if f.quiet {
		return nil
	}

	fmt.Printf("%s\n\n", f.headerStyle().Render(f.labels.ReportHeader))

	if !f.summary {
		for _, result := range report.Results {
			f.printResult(result)
		}
		if len(report.Results) > 0 {
			fmt.Println()
		}
	}

	duration := time.Since(f.startTime).Round(time.Millisecond)
	fmt.Printf("%s: %d (%s)  %s: %d  (%v)\n",
		f.labels.MessScore, report.Overall,
		f.gradeStyle(report.Grade).Render(report.Grade),
		f.labels.Files, report.FileCount, duration)

	return nil
}

func (f *ConsoleFormatter) printResult(result types.ScoreResult) {
	grade := f.gradeStyle(result.Grade).Render(result.Grade)
	fmt.Printf("%s %3d  %s (%s)\n", grade, result.Score, result.Path, result.Language)

	if f.verbose {
		m := result.Metrics
		fmt.Printf("      comments %.0f%%  branch %d  nesting %d  fn-lines %.1f  naming %d  dup %.0f%%\n",
			100*m.CommentCoverage, m.ComplexityTokens, m.MaxNesting,
			m.AvgFunctionLines, m.NamingSmells.Total(), 100*m.DuplicationRatio)
	}

	if f.topIssues == 0 {
		return
	}
	shown := result.Issues
	more := 0
	if len(shown) > f.topIssues {
		more = len(shown) - f.topIssues
		shown = shown[:f.topIssues]
	}
	for _, issue := range shown {
		fmt.Printf("      %s %s\n", f.dimStyle().Render("•"), issue)
	}
	if more > 0 {
		fmt.Printf("      %s\n", f.dimStyle().Render(fmt.Sprintf("… and %d more", more)))
	}
	if len(result.Issues) == 0 && f.verbose {
		fmt.Printf("      %s\n", f.dimStyle().Render(f.labels.Clean))
	}
}

func (f *ConsoleFormatter) headerStyle() lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true)
}

func (f *ConsoleFormatter) dimStyle() lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
}

// gradeStyle colors a grade by how bad it is: green for clean, red for mess.
func (f *ConsoleFormatter) gradeStyle(grade string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	switch grade {
	case types.GradeA:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	case types.GradeB:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	case types.GradeC:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	case types.GradeD:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	}
}
