// Package model defines the database models for the vault.
//
// This package contains GORM models mapping to the three vault tables:
//
//   - Tenant: top-level organizational owner (tenants)
//   - Site: domain-scoped sub-resource of a tenant (sites)
//   - RSAKeyPair: issued RSA credential record (rsa_key_pairs)
//
// # Database Schema
//
// Foreign keys run sites.tenant_id -> tenants.id and
// rsa_key_pairs.{tenant_id -> tenants.id, site_id -> sites.id (nullable)}.
// Unique indexes cover tenants.domain, sites.domain and
// rsa_key_pairs.kid; the application pre-checks these before writing and
// relies on the indexes to catch concurrent-create races.
//
// Primary keys are UUIDv4 strings assigned in BeforeCreate hooks when not
// supplied by the caller.
package model
