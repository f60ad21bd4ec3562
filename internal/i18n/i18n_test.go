package i18n

import "testing"

func TestFor(t *testing.T) {
	if got := For("zh-CN").ReportHeader; got != "代码质量报告" {
		t.Errorf("zh-CN header = %q", got)
	}
	if got := For("en-US").ReportHeader; got != "Code Mess Report" {
		t.Errorf("en-US header = %q", got)
	}
	// Unknown locales fall back to English.
	if got := For("de-DE"); got != For("en-US") {
		t.Errorf("fallback labels = %+v, want en-US set", got)
	}
}

func TestLocalesCovered(t *testing.T) {
	for _, locale := range Locales() {
		labels := labelsByLocale[locale]
		if labels.ReportHeader == "" || labels.MessScore == "" || labels.Findings == "" {
			t.Errorf("locale %s has empty labels: %+v", locale, labels)
		}
	}
}
