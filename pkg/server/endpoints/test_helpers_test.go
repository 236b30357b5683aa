package endpoints

import (
	"github.com/gorilla/mux"

	"github.com/configvault/config-vault/pkg/server"
	"github.com/configvault/config-vault/pkg/server/store"
)

// newTestServer builds a server around mock stores with all endpoints
// registered. The HTTP listener is never started; tests drive the
// router directly.
func newTestServer(
	tenants store.TenantsStore,
	sites store.SitesStore,
	keys store.KeysStore,
	health store.HealthStore,
) *server.Server {
	srv := &server.Server{
		Router:  mux.NewRouter().UseEncodedPath(),
		Tenants: tenants,
		Sites:   sites,
		Keys:    keys,
		Health:  health,
	}
	RegisterAll(srv)
	return srv
}
