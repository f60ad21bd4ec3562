package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridable at build time via -ldflags.
var Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the codemess version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("codemess %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
