package inventory

import (
	"context"
	"fmt"
	"math"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Analytics returns catalog-wide aggregates plus per-category statistics
// sorted by descending sweet count. Monetary values are rounded to cents.
func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	overview, err := s.sweets.Overview(ctx, domain.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("inventory.Analytics overview: %w", err)
	}

	stats, err := s.sweets.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Analytics category stats: %w", err)
	}

	result := &Analytics{
		Overview: Overview{
			TotalSweets: overview.TotalSweets,
			TotalValue:  roundCents(overview.TotalValue),
			OutOfStock:  overview.OutOfStock,
			LowStock:    overview.LowStock,
		},
		CategoryStats: make([]CategoryStat, 0, len(stats)),
	}

	for _, st := range stats {
		result.CategoryStats = append(result.CategoryStats, CategoryStat{
			Category:      st.Category,
			Count:         st.Count,
			TotalQuantity: st.TotalQuantity,
			AveragePrice:  roundCents(st.AveragePrice),
		})
	}

	return result, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
