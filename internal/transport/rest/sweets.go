package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
	"github.com/sweetlab/sweetshop-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by SweetHandler.
type catalogService interface {
	Create(ctx context.Context, input catalog.CreateInput) (domain.Sweet, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Sweet, error)
	Update(ctx context.Context, id uuid.UUID, input catalog.UpdateInput) (domain.Sweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, input catalog.ListInput) (*catalog.ListResult, error)
	Search(ctx context.Context, input catalog.SearchInput) (*catalog.ListResult, error)
}

// SweetHandler serves catalog REST endpoints.
type SweetHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewSweetHandler creates a SweetHandler.
func NewSweetHandler(svc catalogService, logger *slog.Logger) *SweetHandler {
	return &SweetHandler{svc: svc, log: logger.With("handler", "sweets")}
}

type sweetRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type sweetUpdateRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
}

// Create handles POST /api/sweets.
func (h *SweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sweet, err := h.svc.Create(r.Context(), catalog.CreateInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Sweet created successfully",
		map[string]any{"sweet": toSweetResponse(sweet)})
}

// Get handles GET /api/sweets/{id}.
func (h *SweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(w, r)
	if !ok {
		return
	}

	sweet, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{"sweet": toSweetResponse(sweet)})
}

// List handles GET /api/sweets.
func (h *SweetHandler) List(w http.ResponseWriter, r *http.Request) {
	input := catalog.ListInput{Category: r.URL.Query().Get("category")}

	var errs []domain.FieldError
	input.Pagination, errs = parsePagination(r, errs)
	input.MinPrice, errs = parseFloatParam(r, "minPrice", errs)
	input.MaxPrice, errs = parseFloatParam(r, "maxPrice", errs)
	if len(errs) > 0 {
		writeValidationError(w, &domain.ValidationError{Errors: errs})
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{
		"sweets":     toSweetResponses(result.Sweets),
		"pagination": toPaginationResponse(result.PageInfo),
	})
}

// Search handles GET /api/sweets/search.
func (h *SweetHandler) Search(w http.ResponseWriter, r *http.Request) {
	input := catalog.SearchInput{Query: r.URL.Query().Get("q")}

	var errs []domain.FieldError
	input.Pagination, errs = parsePagination(r, errs)
	if len(errs) > 0 {
		writeValidationError(w, &domain.ValidationError{Errors: errs})
		return
	}

	result, err := h.svc.Search(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{
		"sweets":      toSweetResponses(result.Sweets),
		"searchQuery": input.Query,
		"pagination":  toPaginationResponse(result.PageInfo),
	})
}

// Update handles PUT /api/sweets/{id}.
func (h *SweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(w, r)
	if !ok {
		return
	}

	var req sweetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sweet, err := h.svc.Update(r.Context(), id, catalog.UpdateInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Sweet updated successfully",
		map[string]any{"sweet": toSweetResponse(sweet)})
}

// Delete handles DELETE /api/sweets/{id}.
func (h *SweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Sweet deleted successfully", nil)
}

func (h *SweetHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, domain.ErrValidation):
		// Database check violation that slipped past input validation.
		writeError(w, http.StatusBadRequest, "Validation failed")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, "A sweet with this name already exists")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Sweet not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// sweetID extracts the {id} path value. A malformed id is reported the
// same way as a missing sweet.
func sweetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Sweet not found")
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(r *http.Request, errs []domain.FieldError) (domain.Pagination, []domain.FieldError) {
	var p domain.Pagination

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be a positive integer"})
		} else {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
		} else {
			p.Limit = n
		}
	}

	return p, errs
}

func parseFloatParam(r *http.Request, name string, errs []domain.FieldError) (*float64, []domain.FieldError) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, errs
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, append(errs, domain.FieldError{Field: name, Message: "must be a number"})
	}
	return &f, errs
}
