// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/estrelasdocampo/painel/internal/backup"
)

const defaultBackupFile = "painel-backup.yaml.zst"

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all events and news to a compressed backup file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultBackupFile
		if len(args) == 1 {
			path = args[0]
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		data, err := store.ExportData()
		if err != nil {
			return fmt.Errorf("error exporting data: %w", err)
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := backup.Write(f, data); err != nil {
			return err
		}
		log.Infof("exported %d eventos and %d noticias to %s", len(data.Eventos), len(data.Noticias), path)
		return nil
	},
}

var importForce bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all events and news with the contents of a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		data, err := backup.Read(f)
		if err != nil {
			return err
		}

		if !importForce {
			fmt.Printf("This will replace ALL current content with %d eventos and %d noticias. Continue? [y/N] ",
				len(data.Eventos), len(data.Noticias))
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				log.Info("import aborted")
				return nil
			}
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ImportData(data); err != nil {
			return fmt.Errorf("error importing data: %w", err)
		}
		log.Infof("imported %d eventos and %d noticias", len(data.Eventos), len(data.Noticias))
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "import without asking for confirmation")
}
