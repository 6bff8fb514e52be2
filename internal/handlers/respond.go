// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/freshsaver/freshsaver-be/internal/handlers/middleware"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// principalID pulls the owner id that the Principal middleware stored in
// the request context. Handlers behind that middleware can rely on it
// being present; a missing id means a wiring mistake, not a user error.
func principalID(r *http.Request) (int64, bool) {
	return middleware.PrincipalFromContext(r.Context())
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return id, nil
}
