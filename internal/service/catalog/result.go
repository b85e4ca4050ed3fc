package catalog

import "github.com/sweetlab/sweetshop-backend/internal/domain"

// ListResult is returned by List and Search operations.
type ListResult struct {
	Sweets   []domain.Sweet
	PageInfo domain.PageInfo
}
