// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// CatalogHandler serves the public deals listing. No principal is
// required; these endpoints only ever expose publicly visible items.
type CatalogHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service ports.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

// Browse handles GET /api/v1/deals
func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.service.Browse(ctx, criteriaFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load catalog", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to load deals")
		return
	}

	respondJSON(w, http.StatusOK, data)
}

// Detail handles GET /api/v1/deals/{id}. Hidden, expired and unknown
// ids are all reported the same way.
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid deal id")
		return
	}

	detail, err := h.service.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			respondError(w, http.StatusNotFound, "deal not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to load deal", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to load deal")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}
