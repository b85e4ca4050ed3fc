package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
	"github.com/sweetlab/sweetshop-backend/internal/service/inventory"
)

// inventoryService defines the minimal interface needed by InventoryHandler.
type inventoryService interface {
	Purchase(ctx context.Context, sweetID uuid.UUID, input inventory.PurchaseInput) (*inventory.PurchaseResult, error)
	Restock(ctx context.Context, sweetID uuid.UUID, input inventory.RestockInput) (*inventory.RestockResult, error)
	Stock(ctx context.Context, input inventory.StockReportInput) (*inventory.StockReport, error)
	Analytics(ctx context.Context) (*inventory.Analytics, error)
}

// InventoryHandler serves inventory REST endpoints.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// stockChange is the sweet subset echoed back by purchase and restock.
type stockChange struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func toStockChange(s domain.Sweet) stockChange {
	return stockChange{
		ID:       s.ID.String(),
		Name:     s.Name,
		Quantity: s.Quantity,
	}
}

// Purchase handles POST /api/inventory/sweets/{id}/purchase.
func (h *InventoryHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(w, r)
	if !ok {
		return
	}

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Purchase(r.Context(), id, inventory.PurchaseInput{Quantity: req.Quantity})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Purchase successful", map[string]any{
		"sweet":             toStockChange(result.Sweet),
		"purchasedQuantity": result.PurchasedQuantity,
		"remainingStock":    result.RemainingStock,
	})
}

// Restock handles POST /api/inventory/sweets/{id}/restock.
func (h *InventoryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(w, r)
	if !ok {
		return
	}

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Restock(r.Context(), id, inventory.RestockInput{Quantity: req.Quantity})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Restock successful", map[string]any{
		"sweet":             toStockChange(result.Sweet),
		"restockedQuantity": result.RestockedQuantity,
		"newStock":          result.NewStock,
	})
}

// Stock handles GET /api/inventory/stock.
func (h *InventoryHandler) Stock(w http.ResponseWriter, r *http.Request) {
	var input inventory.StockReportInput
	if v := r.URL.Query().Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeValidationError(w, domain.NewValidationError("threshold", "must be a non-negative integer"))
			return
		}
		input.Threshold = &n
	}

	report, err := h.svc.Stock(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{
		"lowStockItems": toSweetResponses(report.LowStockItems),
		"summary": map[string]any{
			"totalItems":    report.Summary.TotalItems,
			"lowStockCount": report.Summary.LowStockCount,
			"threshold":     report.Summary.Threshold,
		},
	})
}

// Analytics handles GET /api/inventory/analytics.
func (h *InventoryHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.svc.Analytics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	stats := make([]map[string]any, 0, len(analytics.CategoryStats))
	for _, cs := range analytics.CategoryStats {
		stats = append(stats, map[string]any{
			"category":      cs.Category.String(),
			"count":         cs.Count,
			"totalQuantity": cs.TotalQuantity,
			"averagePrice":  cs.AveragePrice,
		})
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{
		"overview": map[string]any{
			"totalSweets": analytics.Overview.TotalSweets,
			"totalValue":  analytics.Overview.TotalValue,
			"outOfStock":  analytics.Overview.OutOfStock,
			"lowStock":    analytics.Overview.LowStock,
		},
		"categoryStats": stats,
	})
}

func (h *InventoryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	var ise *domain.InsufficientStockError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.As(err, &ise):
		writeError(w, http.StatusBadRequest, ise.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Sweet not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
