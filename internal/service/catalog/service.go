// Package catalog implements sweet catalog operations: create, read, update,
// delete, filtered listing, and full-text search.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// sweetRepo defines the sweet repository interface needed by the catalog service.
type sweetRepo interface {
	Create(ctx context.Context, s domain.Sweet) (domain.Sweet, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Sweet, error)
	GetByName(ctx context.Context, name string) (domain.Sweet, error)
	Update(ctx context.Context, s domain.Sweet) (domain.Sweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.SweetFilter, p domain.Pagination) ([]domain.Sweet, int, error)
	Search(ctx context.Context, query string, p domain.Pagination) ([]domain.Sweet, int, error)
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	log    *slog.Logger
	sweets sweetRepo
	txm    txManager
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, sweets sweetRepo, txm txManager) *Service {
	return &Service{
		log:    logger.With("service", "catalog"),
		sweets: sweets,
		txm:    txm,
	}
}
