// Package config manages vault configuration.
//
// Configuration is layered: built-in defaults, then the YAML config file
// (config-vault.yml under CONFIG_VAULT_CONFIG_PATH, default
// /etc/config-vault/config), then CONFIG_VAULT_* environment variables.
// Each attribute remembers which layer supplied its value, which the
// "vaultctl configuration show" command surfaces.
//
// The database connection string is deliberately not part of this file:
// DATABASE_URL stays a plain environment variable handled by pkg/db.
package config
