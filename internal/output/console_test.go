package output

import (
	"testing"

	"github.com/dotcommander/codemess/internal/i18n"
)

func TestConsoleQuiet(t *testing.T) {
	f := NewConsoleFormatter(true, false, false, 5, i18n.For("en-US"))
	if err := f.Format(sampleReport()); err != nil {
		t.Errorf("Format(quiet) = %v, want nil", err)
	}
}
