// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func testCmd() *cobra.Command {
	return &cobra.Command{Use: "painel-test"}
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(testCmd(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q", c.Server.Addr)
	}
	if c.Database.Type != DefaultDBType || c.Database.DSN != DefaultDSN {
		t.Errorf("Database = %+v", c.Database)
	}
	if c.Admin.Password != DefaultPassword {
		t.Errorf("Password = %q", c.Admin.Password)
	}
	if c.Language != DefaultLanguage {
		t.Errorf("Language = %q", c.Language)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "painel.yaml")
	content := "server:\n  addr: \":4000\"\nadmin:\n  password: \"from-file\"\nlanguage: en\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(testCmd(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":4000" {
		t.Errorf("Addr = %q", c.Server.Addr)
	}
	if c.Admin.Password != "from-file" {
		t.Errorf("Password = %q", c.Admin.Password)
	}
	if c.Language != "en" {
		t.Errorf("Language = %q", c.Language)
	}
	// Untouched keys keep their defaults.
	if c.Database.Type != DefaultDBType {
		t.Errorf("Type = %q", c.Database.Type)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "painel.yaml")
	if err := os.WriteFile(path, []byte("admin:\n  password: \"from-file\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_PASSWORD", "from-env")

	c, err := Load(testCmd(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Admin.Password != "from-env" {
		t.Errorf("Password = %q, want env value", c.Admin.Password)
	}
}

func TestPortEnvSetsAddr(t *testing.T) {
	t.Setenv("PORT", "8080")

	c, err := Load(testCmd(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", c.Server.Addr)
	}
}

func TestDatabaseURLImpliesPostgres(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pw@db.example.com/painel")

	c, err := Load(testCmd(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Database.Type != "postgres" {
		t.Errorf("Type = %q, want postgres", c.Database.Type)
	}
	if c.Database.DSN != "postgres://user:pw@db.example.com/painel" {
		t.Errorf("DSN = %q", c.Database.DSN)
	}
}
