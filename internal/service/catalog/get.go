package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Get returns a single sweet by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Sweet, error) {
	sweet, err := s.sweets.GetByID(ctx, id)
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("catalog.Get: %w", err)
	}
	return sweet, nil
}
