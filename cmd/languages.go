package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/codemess/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language tags",
	Long: `Lists every language tag codemess resolves, with its file extensions and
comment markers. Files with any other extension are skipped, never scored.`,
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := language.Default()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%-12s %-28s %-6s %s\n", "TAG", "EXTENSIONS", "LINE", "BLOCK")
		for _, def := range registry.Definitions() {
			block := "-"
			if def.BlockOpen != "" {
				block = def.BlockOpen + " " + def.BlockClose
			}
			fmt.Printf("%-12s %-28s %-6s %s\n",
				def.Tag, strings.Join(def.Extensions, " "), def.LineComment, block)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
