// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/estrelasdocampo/painel/internal/config"
)

var secretSystemConfig bool

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Set the admin password and persist it to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		first, err := promptPassword("New admin password: ")
		if err != nil {
			return err
		}
		if len(first) == 0 {
			return errors.New("password must not be empty")
		}
		second, err := promptPassword("Repeat admin password: ")
		if err != nil {
			return err
		}
		if first != second {
			return errors.New("passwords do not match")
		}

		appConfig.Admin.Password = first
		path, err := config.WriteConfigFile(&appConfig, secretSystemConfig)
		if err != nil {
			return err
		}
		log.Infof("admin password updated in %s", path)
		return nil
	},
}

// promptPassword reads a line from the terminal with echo disabled.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return string(raw), nil
}

func init() {
	secretCmd.Flags().BoolVar(&secretSystemConfig, "system", false, "write to the system config path instead of the user one")
}
