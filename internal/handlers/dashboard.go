// internal/handlers/dashboard.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// DashboardHandler serves the owner dashboard and its export.
type DashboardHandler struct {
	service ports.DashboardService
	logger  *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service ports.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "dashboard")),
	}
}

// Overview handles GET /api/v1/dashboard. Search, status and category
// query parameters narrow the item list; the summary always covers the
// owner's whole inventory.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	criteria := criteriaFromQuery(r)

	data, err := h.service.Overview(ctx, ownerID, criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	respondJSON(w, http.StatusOK, data)
}

// Export handles GET /api/v1/dashboard/export. The format query
// parameter selects xlsx (default) or json.
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	items, err := h.service.Export(ctx, ownerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to export inventory", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to export inventory")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	switch format {
	case "json":
		h.exportJSON(w, items)
	case "xlsx":
		h.exportExcel(w, items)
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unsupported export format: %s", format))
		return
	}

	h.logger.InfoContext(ctx, "inventory export completed",
		slog.Int64("owner_id", ownerID),
		slog.String("format", format),
		slog.Int("total_rows", len(items)))
}

// ExportMetadata describes one export response.
type ExportMetadata struct {
	ExportDate time.Time `json:"export_date"`
	TotalItems int       `json:"total_items"`
}

// JSONExport is the JSON download body.
type JSONExport struct {
	Inventory []domain.ItemView `json:"inventory"`
	Metadata  ExportMetadata    `json:"metadata"`
}

func (h *DashboardHandler) exportJSON(w http.ResponseWriter, items []domain.ItemView) {
	filename := fmt.Sprintf("inventory_export_%s.json", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	respondJSON(w, http.StatusOK, JSONExport{
		Inventory: items,
		Metadata: ExportMetadata{
			ExportDate: time.Now(),
			TotalItems: len(items),
		},
	})
}

func (h *DashboardHandler) exportExcel(w http.ResponseWriter, items []domain.ItemView) {
	data, err := buildExcelExport(items)
	if err != nil {
		h.logger.Error("failed to generate excel file", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "failed to generate excel file")
		return
	}

	filename := fmt.Sprintf("inventory_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Write(data)
}

var excelHeaders = []string{
	"ID", "Product Name", "Category", "Location", "Expiry Date",
	"Quantity", "Original Price", "Discount %", "Discounted Price",
	"Days to Expiry", "Expiring Soon", "Status", "Created At", "Updated At",
}

// buildExcelExport renders the owner's inventory, derived fields
// included, as an xlsx workbook in memory.
func buildExcelExport(items []domain.ItemView) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range excelHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, item := range items {
		row := sheet.AddRow()
		for _, value := range excelRowValues(item) {
			row.AddCell().Value = value
		}
	}

	for i := range excelHeaders {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func excelRowValues(item domain.ItemView) []string {
	expiringSoon := "No"
	if item.ExpiringSoon {
		expiringSoon = "Yes"
	}

	return []string{
		strconv.FormatInt(item.ID, 10),
		item.ProductName,
		item.Category,
		item.Location,
		item.ExpiryDate.Format("2006-01-02"),
		strconv.Itoa(item.Quantity),
		item.OriginalPrice.StringFixed(2),
		item.DiscountPercent.StringFixed(2),
		item.DiscountedPrice.StringFixed(2),
		strconv.Itoa(item.DaysToExpiry),
		expiringSoon,
		string(item.Status),
		item.CreatedAt.Format("2006-01-02 15:04:05"),
		item.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// criteriaFromQuery reads the shared filter parameters.
func criteriaFromQuery(r *http.Request) ports.ItemCriteria {
	q := r.URL.Query()
	return ports.ItemCriteria{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Category: q.Get("category"),
	}
}
