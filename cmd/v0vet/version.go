package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vuetools/v0vet/internal/issue"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("v0vet scan model:", issue.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
