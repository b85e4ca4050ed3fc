package catalog

import (
	"context"
	"fmt"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// List returns a page of sweets matching the filter, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := input.Pagination
	p.Normalize()

	sweets, total, err := s.sweets.List(ctx, input.filter(), p)
	if err != nil {
		return nil, fmt.Errorf("catalog.List: %w", err)
	}

	return &ListResult{
		Sweets:   sweets,
		PageInfo: domain.NewPageInfo(p, total),
	}, nil
}
