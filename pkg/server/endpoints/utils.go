package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/configvault/config-vault/pkg/config"
)

const defaultListLimit = 100

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// parsePagination extracts offset/limit query parameters. The limit
// defaults to 100 and is clamped to the configured maximum.
func parsePagination(r *http.Request) (offset, limit int) {
	offset = 0
	limit = defaultListLimit

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	if max := config.Get().APIListLimitMax; limit > max {
		limit = max
	}
	return offset, limit
}
