package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "v0vet",
	Short: "Anti-pattern checker and scaffolder for v0 composables",
	Long: `v0vet scans Vue/TypeScript projects for hand-rolled logic that v0
composables replace, and scaffolds recommended composable patterns.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
