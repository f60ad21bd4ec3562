package config

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/spf13/viper"

	"github.com/dotcommander/codemess/internal/issues"
	"github.com/dotcommander/codemess/internal/schema"
	"github.com/dotcommander/codemess/internal/score"
)

// Config represents the codemess configuration.
type Config struct {
	Root           string   `mapstructure:"root"`
	Exclude        []string `mapstructure:"exclude"`
	Format         string   `mapstructure:"format"`
	Output         string   `mapstructure:"output"`
	Locale         string   `mapstructure:"locale"`
	Language       string   `mapstructure:"language"` // forces one tag for all files
	Summary        bool     `mapstructure:"summary"`
	Quiet          bool     `mapstructure:"quiet"`
	Verbose        bool     `mapstructure:"verbose"`
	Workers        int      `mapstructure:"workers"`
	TopIssues      int      `mapstructure:"topIssues"`
	MaxFileBytes   int64    `mapstructure:"maxFileBytes"`
	SkipIndexFiles bool     `mapstructure:"skipIndexFiles"`
	Scoring        Scoring  `mapstructure:"scoring"`
}

// Scoring carries the overridable calibration tables as plain maps so user
// overrides can be schema-validated before they reach the core.
type Scoring struct {
	Weights    map[string]float64   `mapstructure:"weights"`
	Ranges     map[string][]float64 `mapstructure:"ranges"`
	Thresholds map[string]float64   `mapstructure:"thresholds"`
}

// weightSumTolerance bounds the accepted drift of the weight sum from 1.0.
const weightSumTolerance = 0.001

// LoadConfig loads configuration from defaults, an optional rc file, the
// CODEMESS_* environment, and bound flags, then validates the result. The
// scoring tables are validated here, on the caller side, so the core never
// has to re-check them.
func LoadConfig(rootPath string) (*Config, error) {
	setDefaults()

	configPaths := []string{".codemessrc.json", ".codemessrc.yaml", ".codemessrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("CODEMESS")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("locale", "en-US")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("summary", false)
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("topIssues", 5)
	viper.SetDefault("maxFileBytes", int64(1<<20))
	viper.SetDefault("skipIndexFiles", true)
	viper.SetDefault("exclude", []string{
		"**/.git/**", "**/vendor/**", "**/node_modules/**", "**/build/**", "**/dist/**",
	})

	w := score.DefaultWeights()
	viper.SetDefault("scoring.weights.complexity", w.Complexity)
	viper.SetDefault("scoring.weights.structure", w.Structure)
	viper.SetDefault("scoring.weights.functionLength", w.FunctionLength)
	viper.SetDefault("scoring.weights.naming", w.Naming)
	viper.SetDefault("scoring.weights.duplication", w.Duplication)
	viper.SetDefault("scoring.weights.comments", w.Comments)
	viper.SetDefault("scoring.weights.errorHandling", w.ErrorHandling)

	r := score.DefaultRanges()
	viper.SetDefault("scoring.ranges.complexityTokens", []float64{r.ComplexityTokens.Lo, r.ComplexityTokens.Hi})
	viper.SetDefault("scoring.ranges.maxNesting", []float64{r.MaxNesting.Lo, r.MaxNesting.Hi})
	viper.SetDefault("scoring.ranges.avgFunctionLines", []float64{r.AvgFunctionLines.Lo, r.AvgFunctionLines.Hi})
	viper.SetDefault("scoring.ranges.namingSmells", []float64{r.NamingSmells.Lo, r.NamingSmells.Hi})
	viper.SetDefault("scoring.ranges.errorHandlingTokens", []float64{r.ErrorHandlingTokens.Lo, r.ErrorHandlingTokens.Hi})

	t := issues.DefaultThresholds()
	viper.SetDefault("scoring.thresholds.maxFileLines", float64(t.MaxFileLines))
	viper.SetDefault("scoring.thresholds.maxLineLength", float64(t.MaxLineLength))
	viper.SetDefault("scoring.thresholds.maxReportedLines", float64(t.MaxReportedLines))
	viper.SetDefault("scoring.thresholds.nestingAlert", float64(t.NestingAlert))
	viper.SetDefault("scoring.thresholds.minCommentCoverage", t.MinCommentCoverage)
	viper.SetDefault("scoring.thresholds.maxDuplication", t.MaxDuplication)
	viper.SetDefault("scoring.thresholds.maxComplexity", float64(t.MaxComplexity))
}

// validateConfig validates the configuration, including the scoring tables.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Locale != "en-US" && config.Locale != "zh-CN" {
		return fmt.Errorf("invalid locale: %s. Must be 'en-US' or 'zh-CN'", config.Locale)
	}

	if config.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	if config.TopIssues < 0 {
		return fmt.Errorf("topIssues must not be negative")
	}

	if config.MaxFileBytes < 1 {
		return fmt.Errorf("maxFileBytes must be at least 1")
	}

	return ValidateScoring(config.Scoring)
}

// ValidateScoring checks the scoring tables: CUE for shape, Go for the
// numeric relations CUE does not express well (weight sum, range ordering).
func ValidateScoring(s Scoring) error {
	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("error loading scoring schema: %w", err)
	}
	if err := validator.ValidateScoring(map[string]any{
		"weights":    s.Weights,
		"ranges":     s.Ranges,
		"thresholds": s.Thresholds,
	}); err != nil {
		return err
	}

	sum := 0.0
	for _, w := range s.Weights {
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("scoring weights sum to %.3f, must sum to 1.0", sum)
	}

	for name, r := range s.Ranges {
		if len(r) != 2 {
			return fmt.Errorf("range %s must have exactly [lo, hi]", name)
		}
		if r[0] >= r[1] {
			return fmt.Errorf("range %s is inverted: lo %.2f >= hi %.2f", name, r[0], r[1])
		}
	}

	return nil
}

// Weights converts the override map into the composer's weight table.
func (c *Config) Weights() score.Weights {
	w := score.DefaultWeights()
	if len(c.Scoring.Weights) == 0 {
		return w
	}
	get := func(key string, fallback float64) float64 {
		if v, ok := c.Scoring.Weights[key]; ok {
			return v
		}
		return fallback
	}
	return score.Weights{
		Complexity:     get("complexity", w.Complexity),
		Structure:      get("structure", w.Structure),
		FunctionLength: get("functionLength", w.FunctionLength),
		Naming:         get("naming", w.Naming),
		Duplication:    get("duplication", w.Duplication),
		Comments:       get("comments", w.Comments),
		ErrorHandling:  get("errorHandling", w.ErrorHandling),
	}
}

// Ranges converts the override map into the composer's calibration table.
func (c *Config) Ranges() score.Ranges {
	r := score.DefaultRanges()
	get := func(key string, fallback score.Range) score.Range {
		if v, ok := c.Scoring.Ranges[key]; ok && len(v) == 2 {
			return score.Range{Lo: v[0], Hi: v[1]}
		}
		return fallback
	}
	return score.Ranges{
		ComplexityTokens:    get("complexityTokens", r.ComplexityTokens),
		MaxNesting:          get("maxNesting", r.MaxNesting),
		AvgFunctionLines:    get("avgFunctionLines", r.AvgFunctionLines),
		NamingSmells:        get("namingSmells", r.NamingSmells),
		ErrorHandlingTokens: get("errorHandlingTokens", r.ErrorHandlingTokens),
	}
}

// Thresholds converts the override map into the diagnoser's trigger table.
func (c *Config) Thresholds() issues.Thresholds {
	t := issues.DefaultThresholds()
	get := func(key string, fallback float64) float64 {
		if v, ok := c.Scoring.Thresholds[key]; ok {
			return v
		}
		return fallback
	}
	return issues.Thresholds{
		MaxFileLines:       int(get("maxFileLines", float64(t.MaxFileLines))),
		MaxLineLength:      int(get("maxLineLength", float64(t.MaxLineLength))),
		MaxReportedLines:   int(get("maxReportedLines", float64(t.MaxReportedLines))),
		NestingAlert:       int(get("nestingAlert", float64(t.NestingAlert))),
		MinCommentCoverage: get("minCommentCoverage", t.MinCommentCoverage),
		MaxDuplication:     get("maxDuplication", t.MaxDuplication),
		MaxComplexity:      int(get("maxComplexity", float64(t.MaxComplexity))),
	}
}
