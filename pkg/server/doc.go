// Package server provides the HTTP server for the vault API.
//
// This package implements the core HTTP server that handles all REST API
// requests. It uses gorilla/mux for routing and gorilla/handlers for
// request logging.
//
// # Server Setup
//
//	srv := server.NewServer(db, "0.0.0.0", "8000")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Tenants, Sites, Keys, Health: storage interfaces backed by GORM
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all API endpoints including:
//
//   - /tenants - Tenant management
//   - /sites - Site management
//   - /keys - RSA key pair issuance and lifecycle
//   - /health - Database connectivity check
package server
