package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Purchase decrements a sweet's stock by the requested quantity. The
// decrement is a single conditional update, so concurrent purchases can
// never drive stock negative or oversell the last items.
func (s *Service) Purchase(ctx context.Context, sweetID uuid.UUID, input PurchaseInput) (*PurchaseResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.sweets.DecrementStock(ctx, sweetID, input.Quantity)
	if err == nil {
		s.log.InfoContext(ctx, "purchase completed",
			slog.String("sweet_id", sweetID.String()),
			slog.Int("quantity", input.Quantity),
			slog.Int("remaining", updated.Quantity))

		return &PurchaseResult{
			Sweet:             updated,
			PurchasedQuantity: input.Quantity,
			RemainingStock:    updated.Quantity,
		}, nil
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("inventory.Purchase: %w", err)
	}

	// The conditional update matched nothing: either the sweet is missing or
	// there is not enough stock. A second read tells the two apart.
	current, getErr := s.sweets.GetByID(ctx, sweetID)
	if getErr != nil {
		if errors.Is(getErr, domain.ErrNotFound) {
			return nil, fmt.Errorf("inventory.Purchase: %w", getErr)
		}
		return nil, fmt.Errorf("inventory.Purchase get sweet: %w", getErr)
	}

	return nil, &domain.InsufficientStockError{
		Available: current.Quantity,
		Requested: input.Quantity,
	}
}
