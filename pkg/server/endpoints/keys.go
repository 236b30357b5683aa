package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/configvault/config-vault/pkg/config"
	"github.com/configvault/config-vault/pkg/keygen"
	"github.com/configvault/config-vault/pkg/model"
	"github.com/configvault/config-vault/pkg/server"
	"github.com/configvault/config-vault/pkg/server/store"
)

// IssueKeyRequest is the body for POST /keys
type IssueKeyRequest struct {
	TenantID      string  `json:"tenant_id"`
	SiteID        *string `json:"site_id"`
	ExpiresInDays *int    `json:"expires_in_days"`
}

// KeyPairResponse is the public view of a key pair. It never carries
// the private key.
type KeyPairResponse struct {
	ID        string     `json:"id"`
	Kid       string     `json:"kid"`
	PublicKey string     `json:"public_key"`
	TenantID  string     `json:"tenant_id"`
	SiteID    *string    `json:"site_id,omitempty"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IssuedKeyPairResponse is returned once, at issuance. It is the only
// read that includes the private key.
type IssuedKeyPairResponse struct {
	KeyPairResponse
	PrivateKey string `json:"private_key"`
}

func newKeyPairResponse(keyPair *model.RSAKeyPair) KeyPairResponse {
	return KeyPairResponse{
		ID:        keyPair.ID,
		Kid:       keyPair.Kid,
		PublicKey: keyPair.PublicKey,
		TenantID:  keyPair.TenantID,
		SiteID:    keyPair.SiteID,
		Status:    string(keyPair.Status),
		ExpiresAt: keyPair.ExpiresAt,
		CreatedAt: keyPair.CreatedAt,
		UpdatedAt: keyPair.UpdatedAt,
	}
}

// RegisterKeysEndpoints registers the key issuance and lifecycle endpoints
func RegisterKeysEndpoints(s *server.Server) {
	router := s.Router
	keys := s.Keys
	tenants := s.Tenants
	sites := s.Sites

	router.HandleFunc("/keys", handleIssueKey(keys, tenants, sites)).Methods("POST")
	router.HandleFunc("/keys/tenant/{tenant_id}", handleListKeysByTenant(keys, false)).Methods("GET")
	router.HandleFunc("/keys/tenant/{tenant_id}/active", handleListKeysByTenant(keys, true)).Methods("GET")
	router.HandleFunc("/keys/site/{site_id}", handleListKeysBySite(keys, false)).Methods("GET")
	router.HandleFunc("/keys/site/{site_id}/active", handleListKeysBySite(keys, true)).Methods("GET")
	router.HandleFunc("/keys/{id}/revoke", handleSetKeyStatus(keys, model.KeyStatusRevoked)).Methods("POST")
	router.HandleFunc("/keys/{id}/activate", handleSetKeyStatus(keys, model.KeyStatusActive)).Methods("POST")
	router.HandleFunc("/keys/{kid}", handleGetKeyByKid(keys)).Methods("GET")
	router.HandleFunc("/keys/{id}", handleDeleteKey(keys)).Methods("DELETE")
}

func handleIssueKey(keys store.KeysStore, tenants store.TenantsStore, sites store.SitesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IssueKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.TenantID == "" {
			respondWithError(w, http.StatusBadRequest, "tenant_id is required")
			return
		}

		cfg := config.Get()
		expiresInDays := cfg.DefaultKeyTTLDays
		if req.ExpiresInDays != nil {
			if *req.ExpiresInDays <= 0 {
				respondWithError(w, http.StatusBadRequest, "expires_in_days must be positive")
				return
			}
			expiresInDays = *req.ExpiresInDays
		}

		if _, err := tenants.GetTenant(req.TenantID); err != nil {
			if errors.Is(err, store.ErrTenantNotFound) {
				respondWithError(w, http.StatusUnprocessableEntity, "tenant not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to resolve tenant")
			return
		}
		if req.SiteID != nil {
			if _, err := sites.GetSite(*req.SiteID); err != nil {
				if errors.Is(err, store.ErrSiteNotFound) {
					respondWithError(w, http.StatusUnprocessableEntity, "site not found")
					return
				}
				respondWithError(w, http.StatusInternalServerError, "failed to resolve site")
				return
			}
		}

		privatePEM, publicPEM, err := keygen.GenerateKeyPair(cfg.RSAKeySize)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "key generation failed")
			return
		}
		kid, err := keygen.GenerateKid()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "key generation failed")
			return
		}
		expiresAt := keygen.ComputeExpiry(time.Now(), expiresInDays)

		keyPair := &model.RSAKeyPair{
			Kid:        kid,
			PrivateKey: privatePEM,
			PublicKey:  publicPEM,
			TenantID:   req.TenantID,
			SiteID:     req.SiteID,
			Status:     model.KeyStatusActive,
			ExpiresAt:  &expiresAt,
		}
		if err := keys.CreateKeyPair(keyPair); err != nil {
			switch {
			case errors.Is(err, store.ErrKidTaken):
				respondWithError(w, http.StatusConflict, "key identifier collision, retry issuance")
			case errors.Is(err, store.ErrTenantNotFound):
				respondWithError(w, http.StatusUnprocessableEntity, "tenant not found")
			case errors.Is(err, store.ErrSiteNotFound):
				respondWithError(w, http.StatusUnprocessableEntity, "site not found")
			default:
				respondWithError(w, http.StatusInternalServerError, "failed to persist key pair")
			}
			return
		}

		respondWithJSON(w, http.StatusCreated, IssuedKeyPairResponse{
			KeyPairResponse: newKeyPairResponse(keyPair),
			PrivateKey:      privatePEM,
		})
	}
}

func handleGetKeyByKid(keys store.KeysStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kid := mux.Vars(r)["kid"]

		keyPair, err := keys.GetKeyPairByKid(kid)
		if err != nil {
			if errors.Is(err, store.ErrKeyPairNotFound) {
				respondWithError(w, http.StatusNotFound, "key pair not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to fetch key pair")
			return
		}

		respondWithJSON(w, http.StatusOK, newKeyPairResponse(keyPair))
	}
}

func handleListKeysByTenant(keys store.KeysStore, activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := mux.Vars(r)["tenant_id"]

		result, err := keys.ListKeyPairsByTenant(tenantID, activeOnly)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list key pairs")
			return
		}

		responses := make([]KeyPairResponse, 0, len(result))
		for i := range result {
			responses = append(responses, newKeyPairResponse(&result[i]))
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleListKeysBySite(keys store.KeysStore, activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		siteID := mux.Vars(r)["site_id"]

		result, err := keys.ListKeyPairsBySite(siteID, activeOnly)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list key pairs")
			return
		}

		responses := make([]KeyPairResponse, 0, len(result))
		for i := range result {
			responses = append(responses, newKeyPairResponse(&result[i]))
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleSetKeyStatus(keys store.KeysStore, status model.KeyStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if _, err := keys.UpdateKeyPairStatus(id, status); err != nil {
			if errors.Is(err, store.ErrKeyPairNotFound) {
				respondWithError(w, http.StatusNotFound, "key pair not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to update key pair status")
			return
		}

		message := "Key revoked successfully"
		if status == model.KeyStatusActive {
			message = "Key activated successfully"
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": message})
	}
}

func handleDeleteKey(keys store.KeysStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		keyPair, err := keys.DeleteKeyPair(id)
		if err != nil {
			if errors.Is(err, store.ErrKeyPairNotFound) {
				respondWithError(w, http.StatusNotFound, "key pair not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "failed to delete key pair")
			return
		}

		respondWithJSON(w, http.StatusOK, newKeyPairResponse(keyPair))
	}
}
