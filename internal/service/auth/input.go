package auth

import (
	"net/mail"
	"strings"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Credential length limits. The password ceiling matches bcrypt's 72-byte
// input limit.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
	PasswordMinLen = 6
	PasswordMaxLen = 72
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case len(i.Username) < UsernameMinLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be at least 3 characters long"})
	case len(i.Username) > UsernameMaxLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "cannot exceed 30 characters"})
	case !isUsername(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "may only contain letters, digits, and underscores"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}

	switch {
	case len(i.Password) < PasswordMinLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters long"})
	case len(i.Password) > PasswordMaxLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "cannot exceed 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isUsername(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
