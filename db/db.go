// Package db carries the SQL schema migrations for the vault database.
//
// The migrations directory is embedded so that production builds (built
// with the embed_migrations tag) can run migrations without shipping the
// .sql files alongside the binary.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
