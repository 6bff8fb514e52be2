// internal/handlers/contact.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// ContactHandler accepts contact-form submissions from the public site.
type ContactHandler struct {
	service ports.ContactService
	logger  *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service ports.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "contact")),
	}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.service.Submit(ctx, &msg); err != nil {
		h.logger.ErrorContext(ctx, "failed to store contact message", slog.Any("error", err))
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "thanks for getting in touch"})
}
