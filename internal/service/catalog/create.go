package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Create adds a new sweet to the catalog. Returns ErrConflict if a sweet
// with the same name already exists.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Sweet, error) {
	sweet := input.toSweet()
	sweet.ID = uuid.New()

	if err := sweet.Validate(); err != nil {
		return domain.Sweet{}, err
	}

	var created domain.Sweet
	err := s.txm.RunInTx(ctx, func(ctx context.Context) error {
		// Name check for a friendly conflict message. The unique constraint
		// still backs this up under concurrent creates.
		if _, err := s.sweets.GetByName(ctx, sweet.Name); err == nil {
			return fmt.Errorf("sweet with name %q already exists: %w", sweet.Name, domain.ErrConflict)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check name: %w", err)
		}

		var err error
		created, err = s.sweets.Create(ctx, sweet)
		return err
	})
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("catalog.Create: %w", err)
	}

	s.log.InfoContext(ctx, "sweet created",
		slog.String("sweet_id", created.ID.String()),
		slog.String("name", created.Name))

	return created, nil
}
