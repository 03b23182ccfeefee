package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vuetools/v0vet/internal/report"
	"github.com/vuetools/v0vet/internal/shared"
	"github.com/vuetools/v0vet/internal/storage"
)

var (
	diffBase   string
	diffHead   string
	diffDB     string
	diffOut    string
	diffConfig string
)

// diffCmd compares two persisted runs.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two saved scan runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig(diffConfig)
		if err != nil {
			return err
		}
		shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

		if diffDB == "" {
			diffDB = cfg.Database.DSN
		}
		if diffOut == "" {
			diffOut = cfg.Reporting.OutDir
		}
		if diffBase == "" || diffHead == "" {
			return fmt.Errorf("--base and --head are required")
		}

		db, err := storage.OpenSQLite(diffDB)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer db.Close()

		br, err := db.LoadRun(diffBase)
		if err != nil {
			return fmt.Errorf("load base run: %w", err)
		}
		hr, err := db.LoadRun(diffHead)
		if err != nil {
			return fmt.Errorf("load head run: %w", err)
		}
		if err := os.MkdirAll(diffOut, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
		path, err := report.WriteDiffJSON(diffBase, diffHead, diffOut, &br, &hr)
		if err != nil {
			return err
		}
		fmt.Printf("Diff OK\n  %s\n", path)
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffBase, "base", "", "Base run ID")
	diffCmd.Flags().StringVar(&diffHead, "head", "", "Head run ID")
	diffCmd.Flags().StringVar(&diffDB, "db", "", "SQLite database path (default from config)")
	diffCmd.Flags().StringVar(&diffOut, "out", "", "Output directory (default from config)")
	diffCmd.Flags().StringVar(&diffConfig, "config", "", "Path to YAML config (optional)")
	rootCmd.AddCommand(diffCmd)
}
