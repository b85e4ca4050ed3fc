package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Update applies a partial update to an existing sweet. Unset fields keep
// their current values. Returns ErrConflict when renaming to a taken name.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (domain.Sweet, error) {
	upd := input.toUpdate()
	if upd.IsEmpty() {
		return domain.Sweet{}, domain.NewValidationError("body", "no fields to update")
	}

	var updated domain.Sweet
	err := s.txm.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.sweets.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get sweet: %w", err)
		}

		merged := upd.Apply(current)
		if err := merged.Validate(); err != nil {
			return err
		}

		if merged.Name != current.Name {
			if _, err := s.sweets.GetByName(ctx, merged.Name); err == nil {
				return fmt.Errorf("sweet with name %q already exists: %w", merged.Name, domain.ErrConflict)
			} else if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("check name: %w", err)
			}
		}

		updated, err = s.sweets.Update(ctx, merged)
		return err
	})
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("catalog.Update: %w", err)
	}

	s.log.InfoContext(ctx, "sweet updated",
		slog.String("sweet_id", updated.ID.String()))

	return updated, nil
}
