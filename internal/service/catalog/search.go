package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Search performs a full-text search over sweet names, categories, and
// descriptions, ranked by relevance.
func (s *Service) Search(ctx context.Context, input SearchInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := input.Pagination
	p.Normalize()
	query := strings.TrimSpace(input.Query)

	sweets, total, err := s.sweets.Search(ctx, query, p)
	if err != nil {
		return nil, fmt.Errorf("catalog.Search: %w", err)
	}

	return &ListResult{
		Sweets:   sweets,
		PageInfo: domain.NewPageInfo(p, total),
	}, nil
}
