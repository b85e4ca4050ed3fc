package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Restock increments a sweet's stock by the given quantity.
func (s *Service) Restock(ctx context.Context, sweetID uuid.UUID, input RestockInput) (*RestockResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.sweets.IncrementStock(ctx, sweetID, input.Quantity)
	if err != nil {
		return nil, fmt.Errorf("inventory.Restock: %w", err)
	}

	s.log.InfoContext(ctx, "restock completed",
		slog.String("sweet_id", sweetID.String()),
		slog.Int("quantity", input.Quantity),
		slog.Int("new_stock", updated.Quantity))

	return &RestockResult{
		Sweet:             updated,
		RestockedQuantity: input.Quantity,
		NewStock:          updated.Quantity,
	}, nil
}
