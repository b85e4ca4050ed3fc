package domain

// SweetFilter contains filtering parameters for catalog listings.
type SweetFilter struct {
	// Category restricts results to an exact category match.
	Category *Category

	// MinPrice / MaxPrice bound price inclusively.
	MinPrice *float64
	MaxPrice *float64
}

// Pagination holds page-based pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Normalize applies defaults and clamps values.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo describes the page of results actually returned.
type PageInfo struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// NewPageInfo computes PageInfo from the total matching count.
func NewPageInfo(p Pagination, totalItems int) PageInfo {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + p.Limit - 1) / p.Limit
	}
	return PageInfo{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: p.Limit,
	}
}
