package inventory

import (
	"context"
	"fmt"
)

// Stock returns the low stock report: all sweets at or below the threshold,
// ordered by quantity ascending, plus summary totals.
func (s *Service) Stock(ctx context.Context, input StockReportInput) (*StockReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	threshold := s.cfg.LowStockThreshold
	if input.Threshold != nil {
		threshold = *input.Threshold
	}

	items, err := s.sweets.LowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("inventory.Stock: %w", err)
	}

	total, err := s.sweets.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Stock count: %w", err)
	}

	return &StockReport{
		LowStockItems: items,
		Summary: StockSummary{
			TotalItems:    total,
			LowStockCount: len(items),
			Threshold:     threshold,
		},
	}, nil
}
