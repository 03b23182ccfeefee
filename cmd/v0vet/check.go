package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vuetools/v0vet/internal/issue"
	"github.com/vuetools/v0vet/internal/report"
	"github.com/vuetools/v0vet/internal/rulepack"
	"github.com/vuetools/v0vet/internal/rules"
	"github.com/vuetools/v0vet/internal/scan"
	"github.com/vuetools/v0vet/internal/shared"
	"github.com/vuetools/v0vet/internal/storage"
	"github.com/vuetools/v0vet/internal/summary"
)

var (
	checkFormat    string
	checkSeverity  string
	checkConfig    string
	checkDB        string
	checkOut       string
	checkSave      bool
	checkJobs      int
	checkWatch     bool
	checkRulePacks []string
)

// checkCmd represents the project scan.
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Scan a project for v0 anti-patterns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]

		// Selector validation happens before any scanning.
		switch strings.ToLower(checkFormat) {
		case "text", "json":
		default:
			return fmt.Errorf("unknown format %q (use text or json)", checkFormat)
		}
		sev := strings.ToLower(strings.TrimSpace(checkSeverity))
		if sev != "" && !issue.KnownSeverity(sev) {
			return fmt.Errorf("unknown severity %q (use info, warning or error)", checkSeverity)
		}

		cfg, err := shared.LoadConfig(checkConfig)
		if err != nil {
			return err
		}
		shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

		// precedence: flags > config > defaults
		if sev == "" {
			sev = strings.ToLower(cfg.Scan.SeverityThreshold)
			if sev != "" && !issue.KnownSeverity(sev) {
				return fmt.Errorf("config: unknown severity_threshold %q", cfg.Scan.SeverityThreshold)
			}
		}
		if checkDB == "" {
			checkDB = cfg.Database.DSN
		}
		if checkOut == "" {
			checkOut = cfg.Reporting.OutDir
		}

		disabled := map[string]bool{}
		for _, id := range cfg.Scan.DisabledRules {
			disabled[strings.ToUpper(id)] = true
		}
		rules.SetSettings(rules.Settings{SeverityThreshold: sev, Disabled: disabled})

		for _, p := range append(append([]string{}, cfg.Scan.RulePacks...), checkRulePacks...) {
			n, err := rulepack.LoadAndRegister(p)
			if err != nil {
				return fmt.Errorf("rule pack %s: %w", p, err)
			}
			slog.Info("rule pack loaded", "path", p, "rules", n)
		}

		if checkWatch {
			return watchAndScan(root, sev, cfg.Scan.DisabledRules)
		}
		return scanOnce(root, sev, cfg.Scan.DisabledRules)
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "Output format: text|json")
	checkCmd.Flags().StringVarP(&checkSeverity, "severity", "s", "", "Minimum severity: info|warning|error")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to YAML config (optional)")
	checkCmd.Flags().StringVar(&checkDB, "db", "", "SQLite database path (default from config)")
	checkCmd.Flags().StringVar(&checkOut, "out", "", "Report artifact directory (default from config)")
	checkCmd.Flags().BoolVar(&checkSave, "save", false, "Persist the run and write JSON/HTML artifacts")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 1, "Concurrent file matchers")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "Re-scan on file changes")
	checkCmd.Flags().StringArrayVar(&checkRulePacks, "rules", nil, "Extra YAML rule pack (repeatable)")
	rootCmd.AddCommand(checkCmd)
}

// scanOnce runs one scan and writes the selected report to stdout. Finding
// issues is a successful outcome; only environment failures return errors.
func scanOnce(root, sev string, disabledRules []string) error {
	run, err := scan.ProjectWith(root, scan.Options{Jobs: checkJobs})
	if err != nil {
		return err
	}
	run.ID = fmt.Sprintf("run-%d", time.Now().Unix())
	run.StartedAt = time.Now().UTC()
	run.Context.SeverityThreshold = sev
	run.Context.DisabledRules = disabledRules

	run.Issues = issue.FilterMin(run.Issues, sev)

	// Waivers come from the database whenever one is reachable, persisted
	// run or not. Without --save the database is never created here; an
	// existing one is only read.
	var db *storage.DB
	if checkSave {
		d, err := storage.OpenSQLite(checkDB)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer d.Close()
		if err := d.CreateSchema(); err != nil {
			return fmt.Errorf("db schema: %w", err)
		}
		db = d
	} else if _, serr := os.Stat(checkDB); serr == nil {
		if d, derr := storage.OpenSQLite(checkDB); derr == nil {
			defer d.Close()
			db = d
		}
	}
	if db != nil {
		if ws, werr := db.ListWaivers(true); werr == nil && len(ws) > 0 {
			kept, waived := rules.ApplyWaivers(run.Issues, ws)
			run.Issues = kept
			if waived > 0 {
				slog.Info("waivers applied", "waived", waived)
			}
		}
	}
	run.Summary = summary.Compute(run.Issues)

	if checkSave {
		if err := db.SaveRun(&run); err != nil {
			return fmt.Errorf("db save run: %w", err)
		}
		if err := os.MkdirAll(checkOut, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
		jsonPath, _ := report.WriteJSON(run.ID, checkOut, &run)
		htmlPath, _ := report.WriteHTML(run.ID, checkOut, &run)
		slog.Info("scan saved",
			"run", run.ID,
			"issues", len(run.Issues),
			"json", jsonPath,
			"html", htmlPath,
			"db", checkDB,
		)
	}

	if strings.ToLower(checkFormat) == "json" {
		return report.RenderJSON(os.Stdout, run.Issues)
	}
	report.RenderText(os.Stdout, run.Issues)
	return nil
}
