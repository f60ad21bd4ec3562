package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/codemess/internal/config"
	"github.com/dotcommander/codemess/internal/discovery"
	"github.com/dotcommander/codemess/internal/engine"
	"github.com/dotcommander/codemess/internal/issues"
	"github.com/dotcommander/codemess/internal/language"
	"github.com/dotcommander/codemess/internal/output"
	"github.com/dotcommander/codemess/internal/score"
)

var (
	rootPath     string
	excludeGlobs []string
	quiet        bool
	verbose      bool
	summaryOnly  bool
	outputFormat string
	outputFile   string
	locale       string
	forcedLang   string
	workers      int
	topIssues    int
)

var rootCmd = &cobra.Command{
	Use:   "codemess [path]",
	Short: "Codemess - a lexical mess score for source files",
	Long: `Codemess scans a directory (or a single file) and computes a heuristic
mess score per source file: 0 is pristine, 100 is a landfill. The score is
built from seven lexical text metrics - comment coverage, branching tokens,
nesting depth, function length, naming smells, error-handling tokens, and
duplicated 3-line blocks - with no parsing and no ASTs.

Grades run A (cleanest) through E (messiest). Higher score = messier code.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := rootPath
		if len(args) > 0 {
			path = args[0]
		}
		if err := runScan(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Root directory or file to scan (default current directory)")
	rootCmd.PersistentFlags().StringSliceVarP(&excludeGlobs, "exclude", "e", nil, "Glob patterns to exclude (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-file metric details")
	rootCmd.PersistentFlags().BoolVar(&summaryOnly, "summary", false, "Only print the overall summary")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (stdout if empty)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "en-US", "Report label locale (en-US|zh-CN)")
	rootCmd.PersistentFlags().StringVar(&forcedLang, "lang", "", "Force one language tag for all files (skips extension lookup)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Scoring workers (default one per core)")
	rootCmd.PersistentFlags().IntVar(&topIssues, "top", 5, "Findings shown per file (0 hides them)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("summary", rootCmd.PersistentFlags().Lookup("summary"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("topIssues", rootCmd.PersistentFlags().Lookup("top"))
}

func initConfig() {
	configPaths := []string{".codemessrc.json", ".codemessrc.yaml", ".codemessrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

func runScan(path string) error {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	registry, err := language.Default()
	if err != nil {
		return fmt.Errorf("error loading language table: %w", err)
	}
	if cfg.Language != "" && !registry.IsSupported(cfg.Language) {
		return fmt.Errorf("unsupported language tag %q (see 'codemess languages')", cfg.Language)
	}

	disc := discovery.NewDiscoverer(cfg.Root, registry, discovery.Options{
		Exclude:        cfg.Exclude,
		ForceLanguage:  cfg.Language,
		MaxFileBytes:   cfg.MaxFileBytes,
		SkipIndexFiles: cfg.SkipIndexFiles,
	})
	units, err := disc.Discover()
	if err != nil {
		return fmt.Errorf("error discovering files: %w", err)
	}
	if len(units) == 0 && !cfg.Quiet {
		fmt.Fprintln(os.Stderr, "Warning: no scoreable files found")
	}

	composer := score.NewComposer(cfg.Weights(), cfg.Ranges())
	diagnoser := issues.NewDiagnoser(cfg.Thresholds())
	eng := engine.New(registry, composer, diagnoser, cfg.Workers)

	report, err := eng.Run(context.Background(), units)
	if err != nil {
		return fmt.Errorf("error scoring files: %w", err)
	}

	outputter := output.NewOutputter(cfg, composer)
	if err := outputter.Format(&report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	return nil
}
