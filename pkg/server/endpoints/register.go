package endpoints

import (
	"github.com/configvault/config-vault/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterTenantsEndpoints(srv)
	RegisterSitesEndpoints(srv)
	RegisterKeysEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
