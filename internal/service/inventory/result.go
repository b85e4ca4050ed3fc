package inventory

import "github.com/sweetlab/sweetshop-backend/internal/domain"

// PurchaseResult is returned by the Purchase operation.
type PurchaseResult struct {
	Sweet             domain.Sweet
	PurchasedQuantity int
	RemainingStock    int
}

// RestockResult is returned by the Restock operation.
type RestockResult struct {
	Sweet             domain.Sweet
	RestockedQuantity int
	NewStock          int
}

// StockReport is returned by the Stock operation.
type StockReport struct {
	LowStockItems []domain.Sweet
	Summary       StockSummary
}

// StockSummary holds the totals attached to a stock report.
type StockSummary struct {
	TotalItems    int
	LowStockCount int
	Threshold     int
}

// Analytics is returned by the Analytics operation.
type Analytics struct {
	Overview      Overview
	CategoryStats []CategoryStat
}

// Overview holds catalog-wide inventory aggregates.
type Overview struct {
	TotalSweets int
	TotalValue  float64
	OutOfStock  int
	LowStock    int
}

// CategoryStat holds per-category aggregates.
type CategoryStat struct {
	Category      domain.Category
	Count         int
	TotalQuantity int
	AveragePrice  float64
}
