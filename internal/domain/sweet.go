package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field constraints for Sweet. These mirror the database check constraints;
// validation rejects bad input before any store access.
const (
	SweetNameMinLen        = 2
	SweetNameMaxLen        = 100
	SweetDescriptionMaxLen = 500
	SweetPriceMax          = 10000.0

	PurchaseQuantityMax = 1000
	RestockQuantityMax  = 10000

	// LowStockThreshold is the fixed threshold used by analytics. The
	// low-stock report accepts its own configurable threshold.
	LowStockThreshold = 10
)

// Sweet is a catalog entry representing one sellable product.
// Quantity is the sole mutable stock counter and is never negative.
type Sweet struct {
	ID          uuid.UUID
	Name        string
	Category    Category
	Price       float64
	Quantity    int
	Description *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks all field constraints on a fully populated sweet.
func (s *Sweet) Validate() error {
	var errs []FieldError

	// Character counts, not bytes, to match the database char_length checks.
	name := strings.TrimSpace(s.Name)
	switch {
	case utf8.RuneCountInString(name) < SweetNameMinLen:
		errs = append(errs, FieldError{Field: "name", Message: "must be at least 2 characters long"})
	case utf8.RuneCountInString(name) > SweetNameMaxLen:
		errs = append(errs, FieldError{Field: "name", Message: "cannot exceed 100 characters"})
	}

	if !s.Category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "must be one of: chocolate, candy, cake, cookie, ice-cream, pastry, other"})
	}

	if s.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "cannot be negative"})
	} else if s.Price > SweetPriceMax {
		errs = append(errs, FieldError{Field: "price", Message: "cannot exceed 10000"})
	}

	if s.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Message: "must be a non-negative integer"})
	}

	if s.Description != nil && utf8.RuneCountInString(*s.Description) > SweetDescriptionMaxLen {
		errs = append(errs, FieldError{Field: "description", Message: "cannot exceed 500 characters"})
	}

	if s.ImageURL != nil && !isHTTPURL(*s.ImageURL) {
		errs = append(errs, FieldError{Field: "imageUrl", Message: "must be a valid HTTP/HTTPS URL"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// SweetUpdate carries a partial update: nil fields retain prior values.
type SweetUpdate struct {
	Name        *string
	Category    *Category
	Price       *float64
	Quantity    *int
	Description *string
	ImageURL    *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u SweetUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Price == nil &&
		u.Quantity == nil && u.Description == nil && u.ImageURL == nil
}

// Apply overlays the update on top of a sweet and returns the result.
// The caller re-validates the merged record.
func (u SweetUpdate) Apply(s Sweet) Sweet {
	if u.Name != nil {
		s.Name = strings.TrimSpace(*u.Name)
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.Quantity != nil {
		s.Quantity = *u.Quantity
	}
	if u.Description != nil {
		s.Description = u.Description
	}
	if u.ImageURL != nil {
		s.ImageURL = u.ImageURL
	}
	return s
}

func isHTTPURL(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(s, "https://"), "http://")
	return rest != ""
}
