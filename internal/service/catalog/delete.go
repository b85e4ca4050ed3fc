package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a sweet from the catalog permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.sweets.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "sweet deleted",
		slog.String("sweet_id", id.String()))

	return nil
}
