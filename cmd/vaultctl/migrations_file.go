//go:build !embed_migrations

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrations are read from disk relative to the working directory.
// Override with CONFIG_VAULT_MIGRATIONS_DIR, or build with the
// embed_migrations tag to bake them into the binary.
const defaultMigrationsDir = "db/migrations"

func migrationsDir() string {
	if dir := os.Getenv("CONFIG_VAULT_MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return defaultMigrationsDir
}

func createMigrateInstance(dbURL string) (*migrate.Migrate, error) {
	dir := migrationsDir()
	fmt.Printf("Applying migrations from %s\n", dir)
	return migrate.New("file://"+dir, dbURL)
}

func listMigrationFiles() ([]string, error) {
	entries, err := os.ReadDir(migrationsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
