package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// envelope is the uniform JSON response body. Status is always "success"
// or "error"; the remaining fields are present only when they carry data.
type envelope struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []fieldError `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeSuccess writes a success envelope. Message and data may be empty.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{
		Status:  "error",
		Message: message,
	})
}

// writeValidationError writes a 400 with the per-field error list.
func writeValidationError(w http.ResponseWriter, ve *domain.ValidationError) {
	errs := make([]fieldError, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		errs = append(errs, fieldError{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(w, http.StatusBadRequest, envelope{
		Status:  "error",
		Message: "Validation failed",
		Errors:  errs,
	})
}

// sweetResponse is the JSON representation of a catalog entry.
type sweetResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSweetResponse(s domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Category:    s.Category.String(),
		Price:       s.Price,
		Quantity:    s.Quantity,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSweetResponses(sweets []domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, 0, len(sweets))
	for _, s := range sweets {
		out = append(out, toSweetResponse(s))
	}
	return out
}

// paginationResponse describes the returned page of a listing.
type paginationResponse struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

func toPaginationResponse(p domain.PageInfo) paginationResponse {
	return paginationResponse{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}

// userResponse is the JSON representation of a user. The password hash
// never appears here.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role.String(),
	}
}
