package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/configvault/config-vault/pkg/server/store"
	gormstore "github.com/configvault/config-vault/pkg/server/store/gorm"
)

type Server struct {
	Router  *mux.Router
	DB      *gorm.DB
	Tenants store.TenantsStore
	Sites   store.SitesStore
	Keys    store.KeysStore
	Health  store.HealthStore
	srv     *http.Server
}

func NewServer(
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:  router,
		DB:      db,
		Tenants: gormstore.NewTenantsStore(db),
		Sites:   gormstore.NewSitesStore(db),
		Keys:    gormstore.NewKeysStore(db),
		Health:  gormstore.NewHealthStore(db),
		srv:     srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
