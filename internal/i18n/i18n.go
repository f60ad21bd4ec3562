// Package i18n holds the report label tables. The maps are immutable lookup
// data injected into the renderers; nothing in the scoring core depends on
// them, and the findings themselves stay canonical English.
package i18n

// Labels are the localized strings a renderer needs.
type Labels struct {
	ReportHeader string
	MessScore    string
	Grade        string
	Files        string
	Overall      string
	Findings     string
	Clean        string
	Language     string
}

var labelsByLocale = map[string]Labels{
	"en-US": {
		ReportHeader: "Code Mess Report",
		MessScore:    "💩 Mess score",
		Grade:        "Grade",
		Files:        "Files",
		Overall:      "✨ Overall",
		Findings:     "🛠 Findings",
		Clean:        "Nothing to pick on, keep it up!",
		Language:     "Language",
	},
	"zh-CN": {
		ReportHeader: "代码质量报告",
		MessScore:    "💩 屎山指数",
		Grade:        "等级",
		Files:        "文件数",
		Overall:      "✨ 综合指数",
		Findings:     "🛠 改进建议",
		Clean:        "没啥要挑剔的，继续保持！",
		Language:     "语言",
	},
}

// For returns the labels for a locale, falling back to en-US.
func For(locale string) Labels {
	if labels, ok := labelsByLocale[locale]; ok {
		return labels
	}
	return labelsByLocale["en-US"]
}

// Locales lists the supported locales.
func Locales() []string {
	return []string{"en-US", "zh-CN"}
}
