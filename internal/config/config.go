// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the service configuration from defaults, an optional
// painel.yaml file, environment variables, and command-line flags, in
// ascending order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the explicit configuration object handed to the rest of the
// application at startup. Nothing reads viper after Load returns.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Admin    AdminConfig    `mapstructure:"admin" yaml:"admin"`
	Language string         `mapstructure:"language" yaml:"language"`
	Debug    bool           `mapstructure:"debug" yaml:"debug"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	DSN  string `mapstructure:"dsn" yaml:"dsn"`
}

type AdminConfig struct {
	Password string `mapstructure:"password" yaml:"password"`
}

// Defaults. The admin password default matches what the site shipped with;
// deployments are expected to override it via ADMIN_PASSWORD or the config
// file (see the `secret` command).
const (
	DefaultAddr     = ":3001"
	DefaultDBType   = "sqlite"
	DefaultDSN      = "./painel.db"
	DefaultPassword = "estrelas123"
	DefaultLanguage = "pt"
)

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Painel")
		default: // Linux, macOS, etc.
			configDir = "/etc/painel"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "painel")
	}

	return filepath.Join(configDir, "painel.yaml"), nil
}

// Load builds the Config for the given command. A .env file in the working
// directory is honored first (the deployment platform injects env vars the
// same way), then painel.yaml, then PAINEL_* environment variables, then
// flags.
func Load(cmd *cobra.Command, additionalConfigFile string) (Config, error) {
	var c Config

	// Optional .env; absence is the normal case.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("database.type", DefaultDBType)
	v.SetDefault("database.dsn", DefaultDSN)
	v.SetDefault("admin.password", DefaultPassword)
	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("debug", false)

	v.SetConfigName("painel")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest precedence for file-based
	// configuration.
	if additionalConfigFile != "" {
		v.SetConfigFile(additionalConfigFile)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("painel")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The hosting setup predates this service and exports these names
	// without a prefix; keep honoring them.
	_ = v.BindEnv("admin.password", "PAINEL_ADMIN_PASSWORD", "ADMIN_PASSWORD")
	_ = v.BindEnv("database.dsn", "PAINEL_DATABASE_DSN", "DATABASE_URL")

	if err := bindFlags(v, cmd); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	// PORT is how the platform tells us where to listen.
	if port := os.Getenv("PORT"); port != "" && c.Server.Addr == DefaultAddr {
		c.Server.Addr = ":" + port
	}
	// A postgres URL via DATABASE_URL implies the postgres backend.
	if c.Database.Type == DefaultDBType &&
		(strings.HasPrefix(c.Database.DSN, "postgres://") || strings.HasPrefix(c.Database.DSN, "postgresql://")) {
		c.Database.Type = "postgres"
	}

	return c, nil
}

// bindFlags maps the CLI flag names onto their config keys.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := map[string]string{
		"server.addr":   "addr",
		"database.type": "db-type",
		"database.dsn":  "db-dsn",
		"language":      "lang",
		"debug":         "debug",
	}
	pf := cmd.Root().PersistentFlags()
	for key, name := range flags {
		if f := pf.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteConfigFile persists the configuration as painel.yaml in the user or
// system config directory.
func WriteConfigFile(c *Config, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file may contain the admin secret.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}

	return path, nil
}
