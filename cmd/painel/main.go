// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Painel.
//
// Running the binary with no subcommand starts the HTTP server; the
// remaining subcommands are operational tools (backup, restore, database
// maintenance, secret rotation) that run against the same configuration.
package main

import (
	"fmt"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/estrelasdocampo/painel/internal/api"
	"github.com/estrelasdocampo/painel/internal/config"
	"github.com/estrelasdocampo/painel/internal/db"
	"github.com/estrelasdocampo/painel/internal/i18n"
	"github.com/estrelasdocampo/painel/internal/logging"
	"github.com/estrelasdocampo/painel/internal/security"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

var (
	cfgFile   string
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:     "painel",
	Short:   "Content service for the Estrelas do Campo site",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load(cmd, cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		logging.SetDebug(appConfig.Debug)
		db.SetDebug(appConfig.Debug)
		i18n.Init(appConfig.Language)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Run database maintenance (vacuum, optimize, integrity checks)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return db.RunDBMaintenance(appConfig.Database.Type, appConfig.Database.DSN)
	},
}

func runServe() error {
	store, err := db.NewStoreFromDSN(appConfig.Database.Type, appConfig.Database.DSN)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	if appConfig.Admin.Password == config.DefaultPassword {
		log.Warn("running with the default admin password; set one with 'painel secret'")
	}

	auth := security.NewSharedSecretAuthorizer(security.FromString(appConfig.Admin.Password))
	srv := api.New(store, auth)

	log.Infof("painel %s listening on %s (db=%s)", version, appConfig.Server.Addr, appConfig.Database.Type)
	return srv.Start(appConfig.Server.Addr)
}

// openStore is the shared store constructor for the operational subcommands.
func openStore() (db.Store, error) {
	return db.NewStoreFromDSN(appConfig.Database.Type, appConfig.Database.DSN)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a painel.yaml config file")
	rootCmd.PersistentFlags().String("addr", config.DefaultAddr, "address for the HTTP server to listen on")
	rootCmd.PersistentFlags().String("db-type", config.DefaultDBType, "database backend (sqlite, postgres, mysql)")
	rootCmd.PersistentFlags().String("db-dsn", config.DefaultDSN, "database connection string")
	rootCmd.PersistentFlags().String("lang", config.DefaultLanguage, "message language (pt, en)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(maintenanceCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(secretCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
