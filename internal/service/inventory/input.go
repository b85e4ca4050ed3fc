package inventory

import "github.com/sweetlab/sweetshop-backend/internal/domain"

// PurchaseInput holds parameters for a purchase operation.
type PurchaseInput struct {
	Quantity int
}

// Validate validates the purchase input.
func (i PurchaseInput) Validate() error {
	var errs []domain.FieldError

	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	} else if i.Quantity > domain.PurchaseQuantityMax {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "cannot exceed 1000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RestockInput holds parameters for a restock operation.
type RestockInput struct {
	Quantity int
}

// Validate validates the restock input.
func (i RestockInput) Validate() error {
	var errs []domain.FieldError

	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	} else if i.Quantity > domain.RestockQuantityMax {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "cannot exceed 10000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StockReportInput holds parameters for the low stock report. A nil
// Threshold falls back to the configured default.
type StockReportInput struct {
	Threshold *int
}

// Validate validates the stock report input.
func (i StockReportInput) Validate() error {
	if i.Threshold != nil && *i.Threshold < 0 {
		return domain.NewValidationError("threshold", "cannot be negative")
	}
	return nil
}
