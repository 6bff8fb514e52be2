// internal/handlers/inventory.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// InventoryHandler handles owner-scoped inventory CRUD.
type InventoryHandler struct {
	service ports.InventoryService
	logger  *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "inventory")),
	}
}

// ItemRequest is the JSON payload for create and update. The owner is
// never part of the payload; it always comes from the request principal.
type ItemRequest struct {
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category"`
	Location        string          `json:"location"`
	ExpiryDate      string          `json:"expiry_date"`
	Quantity        int             `json:"quantity"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Status          string          `json:"status"`
}

// ToDomain converts the request into a domain item. Date-only and
// RFC3339 expiry formats are both accepted.
func (req *ItemRequest) ToDomain() (*domain.InventoryItem, error) {
	var expiry time.Time
	if req.ExpiryDate != "" {
		var err error
		expiry, err = time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			expiry, err = time.Parse(time.RFC3339, req.ExpiryDate)
			if err != nil {
				return nil, errors.New("expiry_date must be YYYY-MM-DD or RFC3339")
			}
		}
	}

	return &domain.InventoryItem{
		ProductName:     req.ProductName,
		Category:        req.Category,
		Location:        req.Location,
		ExpiryDate:      expiry,
		Quantity:        req.Quantity,
		OriginalPrice:   req.OriginalPrice,
		DiscountPercent: req.DiscountPercent,
		Status:          domain.ItemStatus(req.Status),
	}, nil
}

// Create handles POST /api/v1/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := req.ToDomain()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.Create(ctx, ownerID, item)
	if err != nil {
		if errors.Is(err, ports.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to create item", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      id,
		"message": "item created",
	})
}

// Get handles GET /api/v1/inventory/{id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	view, err := h.service.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) || errors.Is(err, ports.ErrForbidden) {
			respondError(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get item", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Update handles PUT /api/v1/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := req.ToDomain()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Update(ctx, ownerID, id, item); err != nil {
		if errors.Is(err, ports.ErrNotFound) || errors.Is(err, ports.ErrForbidden) {
			respondError(w, http.StatusNotFound, "item not found")
			return
		}
		if errors.Is(err, ports.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to update item", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	// Return the stored item with fresh derived fields.
	view, err := h.service.Get(ctx, ownerID, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to reload item after update", slog.Any("error", err))
		respondJSON(w, http.StatusOK, map[string]string{"message": "item updated"})
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/v1/inventory/{id}. Deleting an absent id
// succeeds without effect; someone else's id answers 404.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.service.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ports.ErrForbidden) {
			respondError(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete item", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
