package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// SearchQueryMinLen is the minimum length of a full-text search query.
const SearchQueryMinLen = 2

// SearchQueryMaxLen bounds search queries to keep tsquery parsing cheap.
const SearchQueryMaxLen = 100

// CreateInput holds parameters for creating a sweet.
type CreateInput struct {
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Description *string
	ImageURL    *string
}

// toSweet builds an unvalidated domain.Sweet from the input.
func (i CreateInput) toSweet() domain.Sweet {
	return domain.Sweet{
		Name:        strings.TrimSpace(i.Name),
		Category:    domain.Category(i.Category),
		Price:       i.Price,
		Quantity:    i.Quantity,
		Description: i.Description,
		ImageURL:    i.ImageURL,
	}
}

// UpdateInput holds parameters for a partial sweet update. Nil fields are
// left unchanged.
type UpdateInput struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int
	Description *string
	ImageURL    *string
}

// toUpdate builds a domain.SweetUpdate from the input.
func (i UpdateInput) toUpdate() domain.SweetUpdate {
	u := domain.SweetUpdate{
		Name:        i.Name,
		Price:       i.Price,
		Quantity:    i.Quantity,
		Description: i.Description,
		ImageURL:    i.ImageURL,
	}
	if i.Category != nil {
		c := domain.Category(*i.Category)
		u.Category = &c
	}
	return u
}

// ListInput holds filter and pagination parameters for listing sweets.
type ListInput struct {
	Category   string
	MinPrice   *float64
	MaxPrice   *float64
	Pagination domain.Pagination
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != "" && !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.MinPrice != nil && *i.MinPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "minPrice", Message: "cannot be negative"})
	}
	if i.MaxPrice != nil && *i.MaxPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "maxPrice", Message: "cannot be negative"})
	}
	if i.MinPrice != nil && i.MaxPrice != nil && *i.MinPrice > *i.MaxPrice {
		errs = append(errs, domain.FieldError{Field: "minPrice", Message: "cannot exceed maxPrice"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter builds a domain.SweetFilter from the validated input.
func (i ListInput) filter() domain.SweetFilter {
	f := domain.SweetFilter{
		MinPrice: i.MinPrice,
		MaxPrice: i.MaxPrice,
	}
	if i.Category != "" {
		c := domain.Category(i.Category)
		f.Category = &c
	}
	return f
}

// SearchInput holds parameters for full-text catalog search.
type SearchInput struct {
	Query      string
	Pagination domain.Pagination
}

// Validate validates the search input.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Query)
	if utf8.RuneCountInString(q) < SearchQueryMinLen {
		errs = append(errs, domain.FieldError{Field: "q", Message: "must be at least 2 characters long"})
	} else if utf8.RuneCountInString(q) > SearchQueryMaxLen {
		errs = append(errs, domain.FieldError{Field: "q", Message: "cannot exceed 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
