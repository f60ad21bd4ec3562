package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotcommander/codemess/internal/i18n"
	"github.com/dotcommander/codemess/internal/types"
)

func renderMarkdown(t *testing.T, f *MarkdownFormatter, report *types.AnalysisReport) string {
	t.Helper()
	if err := f.Format(report); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	raw, err := os.ReadFile(f.outputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(raw)
}

func TestMarkdownFormatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	f := NewMarkdownFormatter(false, 5, i18n.For("en-US"), path)
	got := renderMarkdown(t, f, sampleReport())

	for _, want := range []string{
		"# Code Mess Report",
		"| 33 | B | go | `pkg/messy.go` |",
		"| 20 | B | go | `pkg/clean.go` |",
		"## pkg/messy.go",
		"- duplicated 3-line blocks",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q\n%s", want, got)
		}
	}

	// The messier file is ranked above the cleaner one.
	if strings.Index(got, "pkg/messy.go") > strings.Index(got, "pkg/clean.go") {
		t.Error("ranked table lists the cleaner file first")
	}
	// The clean file has no findings section.
	if strings.Contains(got, "## pkg/clean.go") {
		t.Error("findings section emitted for a file without issues")
	}
}

func TestMarkdownSummaryOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	f := NewMarkdownFormatter(true, 5, i18n.For("en-US"), path)
	got := renderMarkdown(t, f, sampleReport())

	if !strings.Contains(got, "Mess score: 27 (B)") {
		t.Errorf("summary line missing:\n%s", got)
	}
	if strings.Contains(got, "pkg/messy.go") {
		t.Error("summary-only output should not list files")
	}
}

func TestMarkdownTopIssuesTruncation(t *testing.T) {
	report := &types.AnalysisReport{
		Overall:   50,
		Grade:     types.GradeC,
		FileCount: 1,
		Results: []types.ScoreResult{{
			Path: "big.go", Language: "go", Score: 50, Grade: types.GradeC,
			Issues: []string{"one", "two", "three", "four"},
		}},
	}

	path := filepath.Join(t.TempDir(), "report.md")
	f := NewMarkdownFormatter(false, 2, i18n.For("en-US"), path)
	got := renderMarkdown(t, f, report)

	if !strings.Contains(got, "- one\n- two\n") {
		t.Errorf("first issues missing:\n%s", got)
	}
	if strings.Contains(got, "- three") {
		t.Error("issues beyond the cap should be truncated")
	}
	if !strings.Contains(got, "and 2 more") {
		t.Errorf("truncation note missing:\n%s", got)
	}
}

func TestMarkdownEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	f := NewMarkdownFormatter(false, 5, i18n.For("en-US"), path)
	got := renderMarkdown(t, f, &types.AnalysisReport{Grade: types.GradeA})

	if !strings.Contains(got, "No files found to score") {
		t.Errorf("empty-report note missing:\n%s", got)
	}
}

func TestMarkdownChineseLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	f := NewMarkdownFormatter(true, 5, i18n.For("zh-CN"), path)
	got := renderMarkdown(t, f, sampleReport())

	if !strings.Contains(got, "代码质量报告") || !strings.Contains(got, "屎山指数") {
		t.Errorf("Chinese labels missing:\n%s", got)
	}
}
