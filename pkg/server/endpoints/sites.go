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

// CreateSiteRequest is the body for POST /sites
type CreateSiteRequest struct {
	Name     string `json:"name"`
	Domain   string `json:"domain"`
	TenantID string `json:"tenant_id"`
}

// UpdateSiteRequest is the body for PUT /sites/{id}.
// Omitted fields are left unchanged.
type UpdateSiteRequest struct {
	Name     *string `json:"name"`
	Domain   *string `json:"domain"`
	IsActive *bool   `json:"is_active"`
}

// SiteResponse is the wire representation of a site
type SiteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	TenantID  string    `json:"tenant_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newSiteResponse(site *model.Site) SiteResponse {
	return SiteResponse{
		ID:        site.ID,
		Name:      site.Name,
		Domain:    site.Domain,
		TenantID:  site.TenantID,
		IsActive:  site.IsActive,
		CreatedAt: site.CreatedAt,
		UpdatedAt: site.UpdatedAt,
	}
}

// RegisterSitesEndpoints registers the site management endpoints
func RegisterSitesEndpoints(s *server.Server) {
	router := s.Router
	sites := s.Sites

	router.HandleFunc("/sites", handleCreateSite(sites)).Methods("POST")
	router.HandleFunc("/sites", handleListSites(sites)).Methods("GET")
	router.HandleFunc("/sites/{id}", handleGetSite(sites)).Methods("GET")
	router.HandleFunc("/sites/{id}", handleUpdateSite(sites)).Methods("PUT")
	router.HandleFunc("/sites/{id}", handleDeleteSite(sites)).Methods("DELETE")
}

func handleCreateSite(sites store.SitesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSiteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" || req.Domain == "" || req.TenantID == "" {
			respondWithError(w, http.StatusBadRequest, "name, domain and tenant_id are required")
			return
		}

		site := &model.Site{
			Name:     req.Name,
			Domain:   req.Domain,
			TenantID: req.TenantID,
			IsActive: true,
		}
		if err := sites.CreateSite(site); err != nil {
			switch {
			case errors.Is(err, store.ErrTenantNotFound):
				respondWithError(w, http.StatusUnprocessableEntity, "tenant not found")
			case errors.Is(err, store.ErrSiteDomainTaken):
				respondWithError(w, http.StatusConflict, "domain already registered")
			default:
				respondWithError(w, http.StatusInternalServerError, "failed to create site")
			}
			return
		}

		respondWithJSON(w, http.StatusCreated, newSiteResponse(site))
	}
}

func handleListSites(sites store.SitesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := parsePagination(r)

		var (
			result []model.Site
			err    error
		)
		if tenantID := r.URL.Query().Get("tenant_id"); tenantID != "" {
			result, err = sites.ListSitesByTenant(tenantID, offset, limit)
		} else {
			result, err = sites.ListSites(offset, limit)
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list sites")
			return
		}

		responses := make([]SiteResponse, 0, len(result))
		for i := range result {
			responses = append(responses, newSiteResponse(&result[i]))
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleGetSite(sites store.SitesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		site, err := sites.GetSite(id)
		if err != nil {
			if errors.Is(err, store.ErrSiteNotFound) {
				respondWithError(w, http.StatusNotFound, "site not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to fetch site")
			return
		}

		respondWithJSON(w, http.StatusOK, newSiteResponse(site))
	}
}

func handleUpdateSite(sites store.SitesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req UpdateSiteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		site, err := sites.UpdateSite(id, store.SiteUpdate{
			Name:     req.Name,
			Domain:   req.Domain,
			IsActive: req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrSiteNotFound):
				respondWithError(w, http.StatusNotFound, "site not found")
			case errors.Is(err, store.ErrSiteDomainTaken):
				respondWithError(w, http.StatusConflict, "domain already registered")
			default:
				respondWithError(w, http.StatusInternalServerError, "failed to update site")
			}
			return
		}

		respondWithJSON(w, http.StatusOK, newSiteResponse(site))
	}
}

func handleDeleteSite(sites store.SitesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		site, err := sites.DeleteSite(id)
		if err != nil {
			if errors.Is(err, store.ErrSiteNotFound) {
				respondWithError(w, http.StatusNotFound, "site not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to delete site")
			return
		}

		respondWithJSON(w, http.StatusOK, newSiteResponse(site))
	}
}
