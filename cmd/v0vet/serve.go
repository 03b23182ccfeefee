package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vuetools/v0vet/internal/api"
	"github.com/vuetools/v0vet/internal/shared"
	"github.com/vuetools/v0vet/internal/storage"
)

var (
	serveAddr   string
	serveDB     string
	serveConfig string
)

// serveCmd exposes scan history, the rule catalog and waiver management
// over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scan history API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

		if serveAddr == "" {
			serveAddr = cfg.API.Addr
		}
		if serveDB == "" {
			serveDB = cfg.Database.DSN
		}

		db, err := storage.OpenSQLite(serveDB)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer db.Close()
		if err := db.CreateSchema(); err != nil {
			return fmt.Errorf("db schema: %w", err)
		}

		srv := &api.Server{
			DB:              db,
			UserStore:       db,
			Logger:          logger,
			SessionDuration: time.Duration(cfg.API.SessionMinutes) * time.Minute,
		}
		logger.Info("api listening", "addr", serveAddr, "db", serveDB)
		return http.ListenAndServe(serveAddr, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "SQLite database path (default from config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to YAML config (optional)")
	rootCmd.AddCommand(serveCmd)
}
