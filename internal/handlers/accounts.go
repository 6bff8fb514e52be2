// internal/handlers/accounts.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// AccountHandler exposes the principal directory to the gateway in
// front of this service. Raw passwords pass through here exactly once,
// on their way to the hasher; they are never logged or stored.
type AccountHandler struct {
	service ports.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service ports.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "accounts")),
	}
}

// SetPasswordRequest is the upsert payload: an existing email has its
// hash replaced, a new email creates the principal with the profile.
type SetPasswordRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	BusinessName  string `json:"business_name"`
	Forename      string `json:"forename"`
	Surname       string `json:"surname"`
	ContactNumber string `json:"contact_number"`
}

// VerifyRequest asks whether a password matches a principal's hash.
type VerifyRequest struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// ResolveID handles GET /api/v1/accounts/id?email=...
func (h *AccountHandler) ResolveID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	id, err := h.service.ResolveID(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			respondError(w, http.StatusNotFound, "account not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to resolve account", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to resolve account")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// SetPassword handles POST /api/v1/accounts/password
func (h *AccountHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	profile := domain.User{
		Email:         req.Email,
		BusinessName:  req.BusinessName,
		Forename:      req.Forename,
		Surname:       req.Surname,
		ContactNumber: req.ContactNumber,
	}

	id, err := h.service.SetPassword(ctx, req.Email, req.Password, profile)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to set password", slog.Any("error", err))
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Verify handles POST /api/v1/accounts/verify. A wrong password and an
// unknown id both come back as ok=false, not as an error.
func (h *AccountHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	ok, err := h.service.Verify(ctx, req.ID, req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to verify credentials", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to verify credentials")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": ok})
}
