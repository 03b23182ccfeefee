package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vuetools/v0vet/internal/security"
	"github.com/vuetools/v0vet/internal/shared"
	"github.com/vuetools/v0vet/internal/storage"
)

var (
	userDB       string
	userConfig   string
	userName     string
	userPassword string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage API users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an API user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if userRole != "viewer" && userRole != "admin" {
			return fmt.Errorf("unknown role %q (use viewer or admin)", userRole)
		}
		cfg, err := shared.LoadConfig(userConfig)
		if err != nil {
			return err
		}
		if userDB == "" {
			userDB = cfg.Database.DSN
		}

		db, err := storage.OpenSQLite(userDB)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer db.Close()
		if err := db.CreateSchema(); err != nil {
			return fmt.Errorf("db schema: %w", err)
		}

		hash, err := security.HashPassword(userPassword)
		if err != nil {
			return err
		}
		id, err := db.CreateUser(userName, hash, userRole)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		fmt.Printf("User OK\n  ID: %d\n  Username: %s\n  Role: %s\n", id, userName, userRole)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userName, "username", "", "Username")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "Password")
	userAddCmd.Flags().StringVar(&userRole, "role", "viewer", "Role: viewer|admin")
	userAddCmd.Flags().StringVar(&userDB, "db", "", "SQLite database path (default from config)")
	userAddCmd.Flags().StringVar(&userConfig, "config", "", "Path to YAML config (optional)")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}
