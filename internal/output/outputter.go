package output

import (
	"fmt"

	"github.com/dotcommander/codemess/internal/config"
	"github.com/dotcommander/codemess/internal/i18n"
	"github.com/dotcommander/codemess/internal/score"
	"github.com/dotcommander/codemess/internal/types"
)

// Outputter picks and drives the formatter matching the configured format.
type Outputter struct {
	config   *config.Config
	composer *score.Composer
}

// NewOutputter creates an Outputter. The composer is needed by the JSON
// formatter for the legacy detail buckets.
func NewOutputter(cfg *config.Config, composer *score.Composer) *Outputter {
	return &Outputter{config: cfg, composer: composer}
}

// Format renders the report using the configured format.
func (o *Outputter) Format(report *types.AnalysisReport) error {
	labels := i18n.For(o.config.Locale)

	switch o.config.Format {
	case "console":
		formatter := NewConsoleFormatter(o.config.Quiet, o.config.Verbose, o.config.Summary, o.config.TopIssues, labels)
		return formatter.Format(report)
	case "json":
		formatter := NewJSONFormatter(true, o.config.Output, o.composer)
		return formatter.Format(report)
	case "markdown":
		formatter := NewMarkdownFormatter(o.config.Summary, o.config.TopIssues, labels, o.config.Output)
		return formatter.Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
