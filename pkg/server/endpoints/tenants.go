package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server"
	"github.com/configvault/config-vault/pkg/server/store"
)

// CreateTenantRequest is the body for POST /tenants
type CreateTenantRequest struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// UpdateTenantRequest is the body for PUT /tenants/{id}.
// Omitted fields are left unchanged.
type UpdateTenantRequest struct {
	Name     *string `json:"name"`
	Domain   *string `json:"domain"`
	IsActive *bool   `json:"is_active"`
}

// TenantResponse is the wire representation of a tenant
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTenantResponse(tenant *model.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Domain:    tenant.Domain,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

// RegisterTenantsEndpoints registers the tenant management endpoints
func RegisterTenantsEndpoints(s *server.Server) {
	router := s.Router
	tenants := s.Tenants

	router.HandleFunc("/tenants", handleCreateTenant(tenants)).Methods("POST")
	router.HandleFunc("/tenants", handleListTenants(tenants)).Methods("GET")
	router.HandleFunc("/tenants/{id}", handleGetTenant(tenants)).Methods("GET")
	router.HandleFunc("/tenants/{id}", handleUpdateTenant(tenants)).Methods("PUT")
	router.HandleFunc("/tenants/{id}", handleDeleteTenant(tenants)).Methods("DELETE")
}

func handleCreateTenant(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" || req.Domain == "" {
			respondWithError(w, http.StatusBadRequest, "name and domain are required")
			return
		}

		tenant := &model.Tenant{
			Name:     req.Name,
			Domain:   req.Domain,
			IsActive: true,
		}
		if err := tenants.CreateTenant(tenant); err != nil {
			if errors.Is(err, store.ErrTenantDomainTaken) {
				respondWithError(w, http.StatusConflict, "domain already registered")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to create tenant")
			return
		}

		respondWithJSON(w, http.StatusCreated, newTenantResponse(tenant))
	}
}

func handleListTenants(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := parsePagination(r)

		result, err := tenants.ListTenants(offset, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list tenants")
			return
		}

		responses := make([]TenantResponse, 0, len(result))
		for i := range result {
			responses = append(responses, newTenantResponse(&result[i]))
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleGetTenant(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		tenant, err := tenants.GetTenant(id)
		if err != nil {
			if errors.Is(err, store.ErrTenantNotFound) {
				respondWithError(w, http.StatusNotFound, "tenant not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to fetch tenant")
			return
		}

		respondWithJSON(w, http.StatusOK, newTenantResponse(tenant))
	}
}

func handleUpdateTenant(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req UpdateTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		tenant, err := tenants.UpdateTenant(id, store.TenantUpdate{
			Name:     req.Name,
			Domain:   req.Domain,
			IsActive: req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrTenantNotFound):
				respondWithError(w, http.StatusNotFound, "tenant not found")
			case errors.Is(err, store.ErrTenantDomainTaken):
				respondWithError(w, http.StatusConflict, "domain already registered")
			default:
				respondWithError(w, http.StatusInternalServerError, "failed to update tenant")
			}
			return
		}

		respondWithJSON(w, http.StatusOK, newTenantResponse(tenant))
	}
}

func handleDeleteTenant(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		tenant, err := tenants.DeleteTenant(id)
		if err != nil {
			if errors.Is(err, store.ErrTenantNotFound) {
				respondWithError(w, http.StatusNotFound, "tenant not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to delete tenant")
			return
		}

		respondWithJSON(w, http.StatusOK, newTenantResponse(tenant))
	}
}
