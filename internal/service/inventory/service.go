// Package inventory implements stock mutations (purchase, restock) and
// inventory reporting (low stock, analytics).
package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/adapter/postgres/sweet"
	"github.com/sweetlab/sweetshop-backend/internal/config"
	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// sweetRepo defines the sweet repository interface needed by the inventory service.
type sweetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Sweet, error)
	DecrementStock(ctx context.Context, id uuid.UUID, n int) (domain.Sweet, error)
	IncrementStock(ctx context.Context, id uuid.UUID, n int) (domain.Sweet, error)
	LowStock(ctx context.Context, threshold int) ([]domain.Sweet, error)
	Count(ctx context.Context) (int, error)
	Overview(ctx context.Context, lowStockMax int) (sweet.Overview, error)
	CategoryStats(ctx context.Context) ([]sweet.CategoryStat, error)
}

// Service implements inventory operations.
type Service struct {
	log    *slog.Logger
	sweets sweetRepo
	cfg    config.InventoryConfig
}

// NewService creates a new inventory service instance.
func NewService(logger *slog.Logger, sweets sweetRepo, cfg config.InventoryConfig) *Service {
	return &Service{
		log:    logger.With("service", "inventory"),
		sweets: sweets,
		cfg:    cfg,
	}
}
